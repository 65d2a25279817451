package routes

import (
	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/handlers"
	"incanto_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.API) {
	api := r.Group("/api")

	// Catalog
	api.GET("/products", h.ListProducts)
	api.GET("/products/:slug", h.GetProduct)

	// Giỏ hàng
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddToCart)
	api.PATCH("/cart/items/:id", h.UpdateCartItem)
	api.DELETE("/cart/items/:id", h.RemoveFromCart)
	api.DELETE("/cart", h.ClearCart)

	// Đơn hàng + checkout
	api.POST("/orders", middleware.CheckoutRateLimit(), h.CreateOrder)
	api.POST("/checkout", middleware.CheckoutRateLimit(), h.SubmitCheckout)

	// SePay
	sepay := api.Group("/sepay")
	sepay.POST("/checkout", middleware.CheckoutRateLimit(), h.CreateCheckoutSession)
	sepay.POST("/webhook", h.SepayWebhook)
	sepay.GET("/webhook", h.SepayWebhookChallenge)
	sepay.GET("/qr", h.SepayQR)
}
