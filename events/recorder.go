package events

import (
	"context"

	"payment-gateway/models"

	"go.uber.org/zap"
)

// Recorder receives the domain effects of verified webhook events. Delivery
// is at-least-once, so every implementation must be idempotent per event id.
type Recorder interface {
	// RecordPurchase records a completed one-off purchase and grants content access.
	RecordPurchase(ctx context.Context, eventID string, session models.CheckoutSessionObject) error
	// ActivateSubscription marks a subscription active after checkout.
	ActivateSubscription(ctx context.Context, eventID string, session models.CheckoutSessionObject) error
	// ExtendSubscription extends the validity period after a paid invoice.
	ExtendSubscription(ctx context.Context, eventID string, invoice models.InvoiceObject) error
	// MarkSubscriptionAtRisk flags a failed invoice payment and schedules dunning.
	MarkSubscriptionAtRisk(ctx context.Context, eventID string, invoice models.InvoiceObject) error
	// UpsertSubscription mirrors the provider's subscription status.
	UpsertSubscription(ctx context.Context, eventID string, sub models.SubscriptionObject) error
	// UpsertSellerCapabilities mirrors a Connect account's capability flags.
	UpsertSellerCapabilities(ctx context.Context, eventID string, account models.AccountObject) error
}

// LogRecorder writes each effect as a structured log line. It stands in for
// the persistence collaborators a full deployment would wire here.
type LogRecorder struct {
	logger *zap.Logger
}

func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) RecordPurchase(ctx context.Context, eventID string, session models.CheckoutSessionObject) error {
	r.logger.Info("purchase recorded",
		zap.String("event_id", eventID),
		zap.String("session_id", session.ID),
		zap.String("customer", session.Customer),
		zap.Int64("amount_total", session.AmountTotal),
	)
	return nil
}

func (r *LogRecorder) ActivateSubscription(ctx context.Context, eventID string, session models.CheckoutSessionObject) error {
	r.logger.Info("subscription activated",
		zap.String("event_id", eventID),
		zap.String("session_id", session.ID),
		zap.String("customer", session.Customer),
		zap.String("subscription", session.Subscription),
	)
	return nil
}

func (r *LogRecorder) ExtendSubscription(ctx context.Context, eventID string, invoice models.InvoiceObject) error {
	r.logger.Info("subscription period extended",
		zap.String("event_id", eventID),
		zap.String("invoice_id", invoice.ID),
		zap.String("customer", invoice.Customer),
		zap.String("subscription", invoice.Subscription),
		zap.Int64("amount_paid", invoice.AmountPaid),
	)
	return nil
}

func (r *LogRecorder) MarkSubscriptionAtRisk(ctx context.Context, eventID string, invoice models.InvoiceObject) error {
	r.logger.Warn("subscription at risk, dunning scheduled",
		zap.String("event_id", eventID),
		zap.String("invoice_id", invoice.ID),
		zap.String("customer", invoice.Customer),
		zap.Int64("amount_due", invoice.AmountDue),
	)
	return nil
}

func (r *LogRecorder) UpsertSubscription(ctx context.Context, eventID string, sub models.SubscriptionObject) error {
	r.logger.Info("subscription status mirrored",
		zap.String("event_id", eventID),
		zap.String("subscription_id", sub.ID),
		zap.String("customer", sub.Customer),
		zap.String("status", sub.Status),
		zap.Bool("cancel_at_period_end", sub.CancelAtPeriodEnd),
	)
	return nil
}

func (r *LogRecorder) UpsertSellerCapabilities(ctx context.Context, eventID string, account models.AccountObject) error {
	r.logger.Info("seller capabilities mirrored",
		zap.String("event_id", eventID),
		zap.String("account_id", account.ID),
		zap.Bool("details_submitted", account.DetailsSubmitted),
		zap.Bool("charges_enabled", account.ChargesEnabled),
		zap.Bool("payouts_enabled", account.PayoutsEnabled),
	)
	return nil
}
