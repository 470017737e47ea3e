package models

// LineItem is inline price data for a payment-mode checkout, amounts in
// minor currency units.
type LineItem struct {
	Currency    string
	ProductName string
	UnitAmount  int64
	Quantity    int64
}

// CheckoutIntent is everything needed to construct a provider checkout
// session. Payment mode carries inline LineItems; subscription mode
// references an existing recurring PriceID instead.
type CheckoutIntent struct {
	Mode            CheckoutMode
	LineItems       []LineItem
	PriceID         string
	CustomerID      string
	SellerAccountID string
	SuccessURL      string
	CancelURL       string
}

// CheckoutSession is the stable response shape for a created session.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CheckoutStatus mirrors the provider's view of a session for polling.
type CheckoutStatus struct {
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	AmountTotal   int64      `json:"amountTotal"`
	Customer      string     `json:"customer"`
	LineItems     []LineItem `json:"lineItems"`
}

// ConnectAccount mirrors a seller account's capability flags.
type ConnectAccount struct {
	AccountID        string `json:"accountId"`
	DetailsSubmitted bool   `json:"details_submitted"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
}

// SubscriptionPlan is a read-through view of the provider's recurring
// price catalog; the service holds no authoritative copy.
type SubscriptionPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
}

// Product is a demo catalog entry served by the mock products endpoint.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	SellerID    string `json:"sellerId,omitempty"`
	Thumbnail   string `json:"thumbnail"`
}
