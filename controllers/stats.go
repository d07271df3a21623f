package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminStats reports document counts and total revenue. Counts are the
// store's estimated cardinality, not a locked snapshot; revenue sums the
// price of every payment record and is 0 when there are none.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.Users.EstimatedCount(ctx)
	if err != nil {
		h.storeError(c, err)
		return
	}
	menuItems, err := h.Menu.EstimatedCount(ctx)
	if err != nil {
		h.storeError(c, err)
		return
	}
	orders, err := h.Payments.EstimatedCount(ctx)
	if err != nil {
		h.storeError(c, err)
		return
	}
	revenue, err := h.Payments.TotalRevenue(ctx)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenue":   revenue,
	})
}
