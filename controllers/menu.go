package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/api/models"
)

func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.Menu.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.Menu.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}
	result, err := h.Menu.Insert(c.Request.Context(), item)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateMenuItem merge-updates the recognized menu fields only.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var upd models.MenuItemUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}
	result, err := h.Menu.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	result, err := h.Menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
