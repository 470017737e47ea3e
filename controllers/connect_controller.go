package controllers

import (
	"net/http"

	"payment-gateway/services"

	"github.com/gin-gonic/gin"
)

type ConnectController struct {
	Commerce services.CommerceService
}

func NewConnectController(commerce services.CommerceService) *ConnectController {
	return &ConnectController{Commerce: commerce}
}

// CreateAccount creates an Express seller account for onboarding.
func (cc *ConnectController) CreateAccount(c *gin.Context) {
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

	account, svcErr := cc.Commerce.CreateConnectAccount(c.Request.Context(), req.Email, req.Name)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{
		"accountId":         account.AccountID,
		"details_submitted": account.DetailsSubmitted,
		"charges_enabled":   account.ChargesEnabled,
		"payouts_enabled":   account.PayoutsEnabled,
	})
}

// AccountStatus refreshes capability flags from the provider.
func (cc *ConnectController) AccountStatus(c *gin.Context) {
	accountID := c.Query("accountId")
	if accountID == "" {
		respondError(c, http.StatusBadRequest, "Missing accountId parameter")
		return
	}

	account, svcErr := cc.Commerce.GetAccountStatus(c.Request.Context(), accountID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{
		"accountId":         account.AccountID,
		"details_submitted": account.DetailsSubmitted,
		"charges_enabled":   account.ChargesEnabled,
		"payouts_enabled":   account.PayoutsEnabled,
	})
}

// CreateAccountLink creates an onboarding link for a seller account.
func (cc *ConnectController) CreateAccountLink(c *gin.Context) {
	accountID, ok := cc.bindAccountID(c)
	if !ok {
		return
	}

	url, svcErr := cc.Commerce.CreateAccountLink(c.Request.Context(), accountID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"url": url})
}

// CreateLoginLink creates an Express dashboard login link.
func (cc *ConnectController) CreateLoginLink(c *gin.Context) {
	accountID, ok := cc.bindAccountID(c)
	if !ok {
		return
	}

	url, svcErr := cc.Commerce.CreateLoginLink(c.Request.Context(), accountID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	respondSuccess(c, gin.H{"url": url})
}

func (cc *ConnectController) bindAccountID(c *gin.Context) (string, bool) {
	var req struct {
		AccountID string `json:"accountId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if req.AccountID == "" {
		respondError(c, http.StatusBadRequest, "Missing accountId parameter")
		return "", false
	}
	return req.AccountID, true
}
