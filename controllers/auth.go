package controllers

import (
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// IssueToken signs the posted claims as a 24h bearer token. Issuance itself
// checks nothing; the identity behind the claims is established outside this
// service.
func (h *Handler) IssueToken(c *gin.Context) {
	var claims jwt.MapClaims
	if err := c.BindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}
	token, err := h.JWT.GenerateJWT(claims)
	if err != nil {
		h.Log.Error("token signing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
