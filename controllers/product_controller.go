package controllers

import (
	"net/http"

	"payment-gateway/models"
	"payment-gateway/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Commerce services.CommerceService
	Currency string
}

func NewProductController(commerce services.CommerceService, currency string) *ProductController {
	return &ProductController{Commerce: commerce, Currency: currency}
}

// CreateCheckout creates a payment-mode checkout session. When a seller is
// given, the platform fee split is attached to the session.
func (pc *ProductController) CreateCheckout(c *gin.Context) {
	var req struct {
		ProductID   string `json:"productId"`
		ProductName string `json:"productName"`
		Price       int64  `json:"price"`
		SellerID    string `json:"sellerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductName == "" || req.Price == 0 {
		respondError(c, http.StatusBadRequest, "Missing required parameters: productName, price")
		return
	}

	intent := models.CheckoutIntent{
		Mode: models.ModePayment,
		LineItems: []models.LineItem{
			{
				Currency:    pc.Currency,
				ProductName: req.ProductName,
				UnitAmount:  req.Price,
				Quantity:    1,
			},
		},
		SellerAccountID: req.SellerID,
	}

	session, svcErr := pc.Commerce.CreateCheckoutSession(c.Request.Context(), intent)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"sessionId": session.SessionID, "url": session.URL})
}

// CheckoutStatus reports the provider's view of a session.
func (pc *ProductController) CheckoutStatus(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		respondError(c, http.StatusBadRequest, "Missing sessionId parameter")
		return
	}

	status, svcErr := pc.Commerce.GetCheckoutStatus(c.Request.Context(), sessionID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{
		"status":        status.Status,
		"paymentStatus": status.PaymentStatus,
		"amountTotal":   status.AmountTotal,
		"customer":      status.Customer,
		"lineItems":     status.LineItems,
	})
}

// MockProducts serves the demo catalog.
func (pc *ProductController) MockProducts(c *gin.Context) {
	products := []models.Product{
		{
			ID:          "prod_001",
			Name:        "Deep Space ASMR",
			Description: "Immersive ASMR built from the silence and signals of open space",
			Price:       1500,
			Thumbnail:   "https://placehold.co/600x400?text=Space+ASMR",
		},
		{
			ID:          "prod_002",
			Name:        "Forest Soundscape",
			Description: "Natural forest audio paired with synchronized haptic patterns",
			Price:       1200,
			Thumbnail:   "https://placehold.co/600x400?text=Forest+Sound",
		},
		{
			ID:          "prod_003",
			Name:        "City Nights",
			Description: "The atmosphere of a metropolis after dark, in sound and vibration",
			Price:       1800,
			Thumbnail:   "https://placehold.co/600x400?text=City+Night",
		},
	}
	respondSuccess(c, gin.H{"products": products})
}
