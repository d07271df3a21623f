package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/api/middleware"
	"bistro/api/models"
	"bistro/api/store"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin answers "is this email an admin?" for the UI, but only about
// the caller's own email.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "unauthorize access"})
		return
	}

	admin := false
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeError(c, err)
		return
	}
	if user != nil {
		admin = user.Role == models.RoleAdmin
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// CreateUser inserts an account unless one with the same email exists, which
// makes registration idempotent. The users collection carries a unique index
// on email, so a concurrent creator that slips past the existence check
// still loses at the insert and gets the same sentinel response.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.BindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}

	_, err := h.Users.FindByEmail(c.Request.Context(), user.Email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.storeError(c, err)
		return
	}

	result, err := h.Users.Insert(c.Request.Context(), user)
	if mongo.IsDuplicateKeyError(err) {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) PromoteUser(c *gin.Context) {
	result, err := h.Users.PromoteAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	result, err := h.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
