package routes

import (
	"net/http"
	"time"

	"payment-gateway/controllers"
	"payment-gateway/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Products     *controllers.ProductController
	Connect      *controllers.ConnectController
	Subscription *controllers.SubscriptionController
	Webhooks     *controllers.WebhookController
	Environment  *controllers.EnvironmentController
}

// Register wires all routes onto the engine. The webhook endpoint is
// deliberately outside the rate-limited /api group: its authentication is
// the signature check, and throttling it would only trigger provider
// retries.
func Register(r *gin.Engine, ctrl Controllers) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
	})

	r.POST("/webhooks/stripe", ctrl.Webhooks.HandleStripeWebhook)

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	api.Use(middleware.NewRateLimiter(20, 40, 10*time.Minute).Middleware())

	products := api.Group("/products")
	products.POST("/create-checkout", ctrl.Products.CreateCheckout)
	products.GET("/checkout-status", ctrl.Products.CheckoutStatus)
	products.GET("/mock-products", ctrl.Products.MockProducts)

	connect := api.Group("/connect")
	connect.POST("/create-account", ctrl.Connect.CreateAccount)
	connect.GET("/account-status", ctrl.Connect.AccountStatus)
	connect.POST("/create-account-link", ctrl.Connect.CreateAccountLink)
	connect.POST("/create-login-link", ctrl.Connect.CreateLoginLink)

	subscription := api.Group("/subscription")
	subscription.POST("/create-customer", ctrl.Subscription.CreateCustomer)
	subscription.POST("/create-subscription", ctrl.Subscription.CreateSubscription)
	subscription.POST("/create-portal", ctrl.Subscription.CreatePortal)
	subscription.GET("/plans", ctrl.Subscription.Plans)

	api.GET("/environment-check", ctrl.Environment.Check)
}
