package controllers

import (
	"payment-gateway/config"

	"github.com/gin-gonic/gin"
)

type EnvironmentController struct {
	Config *config.Config
}

func NewEnvironmentController(cfg *config.Config) *EnvironmentController {
	return &EnvironmentController{Config: cfg}
}

// Check reports which configuration values are present. Booleans only;
// secret values never leave the process.
func (ec *EnvironmentController) Check(c *gin.Context) {
	respondSuccess(c, gin.H{
		"stripeSecretKey": ec.Config.StripeSecretKey != "",
		"webhookSecret":   ec.Config.StripeWebhookSecret != "",
		"baseUrl":         ec.Config.BaseURL,
	})
}
