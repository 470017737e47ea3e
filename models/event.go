package models

import "encoding/json"

// EventKind is the discriminant string identifying what happened upstream.
type EventKind string

const (
	EventCheckoutSessionCompleted EventKind = "checkout.session.completed"
	EventInvoicePaid              EventKind = "invoice.paid"
	EventInvoicePaymentFailed     EventKind = "invoice.payment_failed"
	EventSubscriptionCreated      EventKind = "customer.subscription.created"
	EventSubscriptionUpdated      EventKind = "customer.subscription.updated"
	EventSubscriptionDeleted      EventKind = "customer.subscription.deleted"
	EventAccountUpdated           EventKind = "account.updated"
)

// PaymentEvent is a verified webhook event envelope. Immutable once verified;
// delivery is at-least-once, so the same ID may arrive more than once.
type PaymentEvent struct {
	ID      string    `json:"id"`
	Type    EventKind `json:"type"`
	Created int64     `json:"created"`
	Data    EventData `json:"data"`
}

type EventData struct {
	Object json.RawMessage `json:"object"`
}

// CheckoutMode distinguishes one-off payments from subscription checkouts.
type CheckoutMode string

const (
	ModePayment      CheckoutMode = "payment"
	ModeSubscription CheckoutMode = "subscription"
)

// CheckoutSessionObject is the payload of checkout.session.completed.
type CheckoutSessionObject struct {
	ID            string       `json:"id"`
	Mode          CheckoutMode `json:"mode"`
	Customer      string       `json:"customer"`
	Subscription  string       `json:"subscription"`
	AmountTotal   int64        `json:"amount_total"`
	PaymentStatus string       `json:"payment_status"`
}

// InvoiceObject is the payload of invoice.paid and invoice.payment_failed.
type InvoiceObject struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	Subscription string `json:"subscription"`
	AmountPaid   int64  `json:"amount_paid"`
	AmountDue    int64  `json:"amount_due"`
}

// SubscriptionObject is the payload of the customer.subscription.* events.
type SubscriptionObject struct {
	ID                string `json:"id"`
	Customer          string `json:"customer"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
	CurrentPeriodEnd  int64  `json:"current_period_end"`
}

// AccountObject is the payload of account.updated for Connect accounts.
// Capability flags are owned by Stripe; they are only ever mirrored here,
// never mutated speculatively.
type AccountObject struct {
	ID               string `json:"id"`
	DetailsSubmitted bool   `json:"details_submitted"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
}
