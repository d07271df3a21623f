package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/api/models"
)

func (h *Handler) ListCarts(c *gin.Context) {
	items, err := h.Carts.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var item models.CartItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}
	result, err := h.Carts.Insert(c.Request.Context(), item)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteCartItem(c *gin.Context) {
	result, err := h.Carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
