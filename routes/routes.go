package routes

import (
	"github.com/gin-gonic/gin"

	"bistro/api/controllers"
	"bistro/api/middleware"
)

// Setup binds the full HTTP surface. Mutating admin endpoints run the
// verify-token then verify-admin chain; catalog reads and cart operations
// are public.
func Setup(router *gin.Engine, h *controllers.Handler) {
	verify := middleware.VerifyToken(h.JWT)
	admin := middleware.VerifyAdmin(h.Users)

	router.GET("/", h.Health)
	router.POST("/jwt", h.IssueToken)

	router.GET("/users", verify, h.ListUsers)
	router.GET("/user/admin/:email", verify, h.CheckAdmin)
	router.POST("/users", h.CreateUser)
	router.PATCH("/users/admin/:id", verify, admin, h.PromoteUser)
	router.DELETE("/users/:id", verify, admin, h.DeleteUser)

	router.GET("/menu", h.ListMenu)
	router.POST("/menu", h.CreateMenuItem)
	router.GET("/menu/:id", h.GetMenuItem)
	router.PATCH("/menu/:id", h.UpdateMenuItem)
	router.DELETE("/menu/:id", verify, admin, h.DeleteMenuItem)

	router.GET("/reviews", h.ListReviews)

	router.GET("/carts", h.ListCarts)
	router.POST("/carts", h.AddToCart)
	router.DELETE("/carts/:id", h.DeleteCartItem)

	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.GET("/payments/:email", verify, h.ListPayments)
	router.POST("/payments", h.RecordPayment)

	router.GET("/admin-stats", verify, admin, h.AdminStats)
}
