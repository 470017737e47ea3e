package services

import (
	"context"
	"net/http"
	"strings"

	"payment-gateway/models"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
)

// StripeService is the typed façade over the remote Stripe API. The client
// is injected at construction; there is no package-global key or client.
type StripeService struct {
	api     *client.API
	baseURL string
	feeBps  int64

	// currency for inline checkout price data, lowercase ISO 4217.
	currency string

	logger *zap.Logger
}

func NewStripeService(secretKey, baseURL, currency string, feeBps int64, logger *zap.Logger) *StripeService {
	return &StripeService{
		api:      client.New(secretKey, nil),
		baseURL:  strings.TrimRight(baseURL, "/"),
		feeBps:   feeBps,
		currency: currency,
		logger:   logger,
	}
}

// CreateCheckoutSession builds and creates a payment-mode session with the
// platform fee split applied when a seller account is given.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, intent models.CheckoutIntent) (*models.CheckoutSession, *ServiceError) {
	if intent.SuccessURL == "" {
		intent.SuccessURL = s.baseURL + "/products/success?session_id={CHECKOUT_SESSION_ID}"
	}
	if intent.CancelURL == "" {
		intent.CancelURL = s.baseURL + "/products/"
	}

	params, svcErr := BuildCheckoutSessionParams(intent, s.feeBps)
	if svcErr != nil {
		return nil, svcErr
	}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		s.logger.Error("create checkout session failed", zap.Error(err))
		return nil, providerError(err)
	}

	return &models.CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}

// GetCheckoutStatus retrieves a session with its payment intent and line
// items expanded.
func (s *StripeService) GetCheckoutStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, *ServiceError) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")
	params.AddExpand("line_items")

	session, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		s.logger.Error("retrieve checkout session failed", zap.Error(err))
		return nil, providerError(err)
	}

	status := &models.CheckoutStatus{
		Status:        string(session.Status),
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
	}
	if session.Customer != nil {
		status.Customer = session.Customer.ID
	}
	if session.LineItems != nil {
		for _, li := range session.LineItems.Data {
			item := models.LineItem{
				Currency:    string(li.Currency),
				ProductName: li.Description,
				Quantity:    li.Quantity,
			}
			if li.Price != nil {
				item.UnitAmount = li.Price.UnitAmount
			}
			status.LineItems = append(status.LineItems, item)
		}
	}
	return status, nil
}

// CreateConnectAccount creates an Express seller account with card payments
// and transfers requested.
func (s *StripeService) CreateConnectAccount(ctx context.Context, email, name string) (*models.ConnectAccount, *ServiceError) {
	if name == "" {
		name = "Marketplace Seller"
	}

	params := &stripe.AccountParams{
		Type:         stripe.String("express"),
		Country:      stripe.String("JP"),
		Email:        stripe.String(email),
		BusinessType: stripe.String("individual"),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name: stripe.String(name),
			URL:  stripe.String(s.baseURL + "/connect/seller"),
		},
	}
	params.Context = ctx

	account, err := s.api.Accounts.New(params)
	if err != nil {
		s.logger.Error("create connect account failed", zap.Error(err))
		return nil, providerError(err)
	}
	return connectAccountView(account), nil
}

// GetAccountStatus refreshes a seller account's capability flags from the
// provider.
func (s *StripeService) GetAccountStatus(ctx context.Context, accountID string) (*models.ConnectAccount, *ServiceError) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := s.api.Accounts.GetByID(accountID, params)
	if err != nil {
		s.logger.Error("retrieve connect account failed", zap.Error(err), zap.String("account_id", accountID))
		return nil, providerError(err)
	}
	return connectAccountView(account), nil
}

// CreateAccountLink creates an onboarding link for a seller account.
func (s *StripeService) CreateAccountLink(ctx context.Context, accountID string) (string, *ServiceError) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(s.baseURL + "/connect/refresh"),
		ReturnURL:  stripe.String(s.baseURL + "/connect/dashboard"),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := s.api.AccountLinks.New(params)
	if err != nil {
		s.logger.Error("create account link failed", zap.Error(err), zap.String("account_id", accountID))
		return "", providerError(err)
	}
	return link.URL, nil
}

// CreateLoginLink creates an Express dashboard login link.
func (s *StripeService) CreateLoginLink(ctx context.Context, accountID string) (string, *ServiceError) {
	params := &stripe.LoginLinkParams{Account: stripe.String(accountID)}
	params.Context = ctx

	link, err := s.api.LoginLinks.New(params)
	if err != nil {
		s.logger.Error("create login link failed", zap.Error(err), zap.String("account_id", accountID))
		return "", providerError(err)
	}
	return link.URL, nil
}

func (s *StripeService) CreateCustomer(ctx context.Context, email, name string) (string, *ServiceError) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	customer, err := s.api.Customers.New(params)
	if err != nil {
		s.logger.Error("create customer failed", zap.Error(err))
		return "", providerError(err)
	}
	return customer.ID, nil
}

// CreateSubscriptionCheckout creates a subscription-mode session for an
// existing recurring price.
func (s *StripeService) CreateSubscriptionCheckout(ctx context.Context, customerID, priceID string) (*models.CheckoutSession, *ServiceError) {
	intent := models.CheckoutIntent{
		Mode:       models.ModeSubscription,
		PriceID:    priceID,
		CustomerID: customerID,
		SuccessURL: s.baseURL + "/subscription/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/subscription/",
	}

	params, svcErr := BuildCheckoutSessionParams(intent, s.feeBps)
	if svcErr != nil {
		return nil, svcErr
	}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		s.logger.Error("create subscription checkout failed", zap.Error(err))
		return nil, providerError(err)
	}
	return &models.CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}

// CreatePortalSession creates a customer billing portal session.
func (s *StripeService) CreatePortalSession(ctx context.Context, customerID string) (string, *ServiceError) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(s.baseURL + "/subscription/manage"),
	}
	params.Context = ctx

	session, err := s.api.BillingPortalSessions.New(params)
	if err != nil {
		s.logger.Error("create portal session failed", zap.Error(err))
		return "", providerError(err)
	}
	return session.URL, nil
}

// ListPlans reads the active recurring price catalog. Read-through: the
// provider owns the catalog and every request re-fetches it.
func (s *StripeService) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, *ServiceError) {
	params := &stripe.PriceListParams{
		Active: stripe.Bool(true),
		Type:   stripe.String("recurring"),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(100)
	params.AddExpand("data.product")

	var plans []models.SubscriptionPlan
	iter := s.api.Prices.List(params)
	for iter.Next() {
		price := iter.Price()
		plan := models.SubscriptionPlan{
			ID:    price.ID,
			Price: price.UnitAmount,
		}
		if price.Recurring != nil {
			plan.Interval = string(price.Recurring.Interval)
		}
		if price.Product != nil {
			plan.Name = price.Product.Name
			plan.Description = price.Product.Description
			plan.Features = planFeatures(price.Product.Metadata)
		} else {
			plan.Features = planFeatures(nil)
		}
		plans = append(plans, plan)
	}
	if err := iter.Err(); err != nil {
		s.logger.Error("list plans failed", zap.Error(err))
		return nil, providerError(err)
	}
	if len(plans) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "No subscription plans found"}
	}
	return plans, nil
}

// planFeatures reads the feature list from product metadata ("features" as
// a comma-separated list), falling back to a single basic entry.
func planFeatures(metadata map[string]string) []string {
	raw, ok := metadata["features"]
	if !ok || strings.TrimSpace(raw) == "" {
		return []string{"Basic features"}
	}
	var features []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	if len(features) == 0 {
		return []string{"Basic features"}
	}
	return features
}

func connectAccountView(account *stripe.Account) *models.ConnectAccount {
	return &models.ConnectAccount{
		AccountID:        account.ID,
		DetailsSubmitted: account.DetailsSubmitted,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
	}
}
