package controllers

import (
	"net/http"

	"payment-gateway/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	Commerce services.CommerceService
}

func NewSubscriptionController(commerce services.CommerceService) *SubscriptionController {
	return &SubscriptionController{Commerce: commerce}
}

func (sc *SubscriptionController) CreateCustomer(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		respondError(c, http.StatusBadRequest, "Missing required parameter: email")
		return
	}

	customerID, svcErr := sc.Commerce.CreateCustomer(c.Request.Context(), req.Email, req.Name)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"customerId": customerID})
}

// CreateSubscription starts a subscription-mode checkout for an existing
// recurring price.
func (sc *SubscriptionController) CreateSubscription(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customerId"`
		PriceID    string `json:"priceId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CustomerID == "" || req.PriceID == "" {
		respondError(c, http.StatusBadRequest, "Missing required parameters: customerId, priceId")
		return
	}

	session, svcErr := sc.Commerce.CreateSubscriptionCheckout(c.Request.Context(), req.CustomerID, req.PriceID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"sessionId": session.SessionID, "url": session.URL})
}

func (sc *SubscriptionController) CreatePortal(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CustomerID == "" {
		respondError(c, http.StatusBadRequest, "Missing required parameter: customerId")
		return
	}

	url, svcErr := sc.Commerce.CreatePortalSession(c.Request.Context(), req.CustomerID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"url": url})
}

// Plans lists the provider's active recurring price catalog.
func (sc *SubscriptionController) Plans(c *gin.Context) {
	plans, svcErr := sc.Commerce.ListPlans(c.Request.Context())
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"plans": plans})
}
