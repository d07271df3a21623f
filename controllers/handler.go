package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/api/jwtservice"
	"bistro/api/payments"
	"bistro/api/store"
)

// Handler carries every dependency the route handlers need. It is built once
// in main and shared by all requests; none of its fields are mutated after
// startup.
type Handler struct {
	Users    store.UserStore
	Menu     store.MenuStore
	Reviews  store.ReviewStore
	Carts    store.CartStore
	Payments store.PaymentStore
	Intents  payments.IntentCreator
	JWT      *jwtservice.Service
	Log      *slog.Logger
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Ok")
}

// storeError maps a failed store operation to a JSON error response.
func (h *Handler) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		h.Log.Error("store operation failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
