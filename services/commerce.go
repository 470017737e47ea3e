package services

import (
	"context"
	"errors"
	"net/http"

	"payment-gateway/models"

	"github.com/stripe/stripe-go/v80"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CommerceService defines the payment provider operations exposed to the
// HTTP layer. Responses use local shapes so the provider's schema never
// becomes this service's public contract.
type CommerceService interface {
	CreateCheckoutSession(ctx context.Context, intent models.CheckoutIntent) (*models.CheckoutSession, *ServiceError)
	GetCheckoutStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, *ServiceError)

	CreateConnectAccount(ctx context.Context, email, name string) (*models.ConnectAccount, *ServiceError)
	GetAccountStatus(ctx context.Context, accountID string) (*models.ConnectAccount, *ServiceError)
	CreateAccountLink(ctx context.Context, accountID string) (string, *ServiceError)
	CreateLoginLink(ctx context.Context, accountID string) (string, *ServiceError)

	CreateCustomer(ctx context.Context, email, name string) (string, *ServiceError)
	CreateSubscriptionCheckout(ctx context.Context, customerID, priceID string) (*models.CheckoutSession, *ServiceError)
	CreatePortalSession(ctx context.Context, customerID string) (string, *ServiceError)
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, *ServiceError)
}

// providerError sanitizes a Stripe API failure. The user-facing message
// carries Stripe's human message only, never request internals; anything
// that is not a clean 4xx rejection surfaces as a 502.
func providerError(err error) *ServiceError {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		status := http.StatusBadGateway
		if stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500 {
			status = http.StatusBadRequest
		}
		msg := stripeErr.Msg
		if msg == "" {
			msg = "Payment provider rejected the request"
		}
		return &ServiceError{StatusCode: status, Message: msg}
	}
	return &ServiceError{StatusCode: http.StatusBadGateway, Message: "Payment provider is unavailable"}
}
