package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-gateway/controllers"
	"payment-gateway/models"
	"payment-gateway/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupConnectRouter(svc services.CommerceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := controllers.NewConnectController(svc)

	r.POST("/api/connect/create-account", cc.CreateAccount)
	r.GET("/api/connect/account-status", cc.AccountStatus)
	r.POST("/api/connect/create-account-link", cc.CreateAccountLink)
	r.POST("/api/connect/create-login-link", cc.CreateLoginLink)
	return r
}

func TestCreateAccount_Success(t *testing.T) {
	svc := &mockCommerce{account: &models.ConnectAccount{
		AccountID:        "acct_1",
		DetailsSubmitted: false,
		ChargesEnabled:   false,
		PayoutsEnabled:   false,
	}}
	r := setupConnectRouter(svc)

	w := postJSON(r, "/api/connect/create-account", gin.H{"email": "seller@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "acct_1", resp["accountId"])
	assert.Equal(t, false, resp["details_submitted"])
	assert.Equal(t, false, resp["charges_enabled"])
	assert.Equal(t, false, resp["payouts_enabled"])
}

func TestCreateAccount_MissingEmail(t *testing.T) {
	r := setupConnectRouter(&mockCommerce{})

	w := postJSON(r, "/api/connect/create-account", gin.H{"name": "Seller"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountStatus_Success(t *testing.T) {
	svc := &mockCommerce{account: &models.ConnectAccount{
		AccountID:        "acct_1",
		DetailsSubmitted: true,
		ChargesEnabled:   true,
		PayoutsEnabled:   true,
	}}
	r := setupConnectRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/connect/account-status?accountId=acct_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["charges_enabled"])
}

func TestAccountStatus_MissingAccountID(t *testing.T) {
	r := setupConnectRouter(&mockCommerce{})

	req := httptest.NewRequest(http.MethodGet, "/api/connect/account-status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAccountLink_Success(t *testing.T) {
	svc := &mockCommerce{link: "https://connect.stripe.com/setup/x"}
	r := setupConnectRouter(svc)

	w := postJSON(r, "/api/connect/create-account-link", gin.H{"accountId": "acct_1"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "https://connect.stripe.com/setup/x", resp["url"])
}

func TestCreateAccountLink_MissingAccountID(t *testing.T) {
	r := setupConnectRouter(&mockCommerce{})

	w := postJSON(r, "/api/connect/create-account-link", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLoginLink_ProviderError(t *testing.T) {
	svc := &mockCommerce{linkErr: &services.ServiceError{StatusCode: 400, Message: "No such account"}}
	r := setupConnectRouter(svc)

	w := postJSON(r, "/api/connect/create-login-link", gin.H{"accountId": "acct_missing"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
}
