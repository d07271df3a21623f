package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bistro/api/middleware"
	"bistro/api/models"
)

// CreatePaymentIntent asks the payment provider for an intent covering the
// given price. The decimal price is converted to integer cents, truncating.
// Nothing is recorded locally; the client confirms the charge and then posts
// the payment.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}

	amount := int64(body.Price * 100)
	secret, err := h.Intents.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		h.Log.Error("payment intent failed", "amount", amount, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

func (h *Handler) ListPayments(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	payments, err := h.Payments.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment stores a confirmed payment and purges the cart entries it
// covers. The store guarantees idempotency on transactionId, so a client
// retry cannot record the same charge twice.
func (h *Handler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.BindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to parse request body"})
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	inserted, deleted, err := h.Payments.Record(c.Request.Context(), payment)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentResult": inserted, "deleteResult": deleted})
}
