package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"payment-gateway/models"

	"go.uber.org/zap"
)

// ErrMalformedPayload marks an event whose payload does not decode into the
// schema expected for its kind. Surfaced as a handler failure so the
// provider redelivers once the payload (or schema) is fixed.
var ErrMalformedPayload = errors.New("events: malformed event payload")

type handlerFunc func(ctx context.Context, event *models.PaymentEvent) error

// Dispatcher routes verified events to their domain effect. Unknown kinds
// are acknowledged without effect: the provider adding new event types must
// never turn into a delivery failure and a retry storm.
type Dispatcher struct {
	handlers map[models.EventKind]handlerFunc
	recorder Recorder
	ledger   Ledger
	logger   *zap.Logger
}

// NewDispatcher builds the event kind table. ledger may be nil, in which
// case redeliveries reach the recorder and its idempotency is the only
// duplicate protection.
func NewDispatcher(recorder Recorder, ledger Ledger, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		ledger:   ledger,
		logger:   logger,
	}
	d.handlers = map[models.EventKind]handlerFunc{
		models.EventCheckoutSessionCompleted: d.handleCheckoutCompleted,
		models.EventInvoicePaid:              d.handleInvoicePaid,
		models.EventInvoicePaymentFailed:     d.handleInvoicePaymentFailed,
		models.EventSubscriptionCreated:      d.handleSubscriptionChanged,
		models.EventSubscriptionUpdated:      d.handleSubscriptionChanged,
		models.EventSubscriptionDeleted:      d.handleSubscriptionChanged,
		models.EventAccountUpdated:           d.handleAccountUpdated,
	}
	return d
}

// Dispatch runs the handler registered for the event's kind. A nil return
// means the delivery can be acknowledged; an error means the provider
// should redeliver.
func (d *Dispatcher) Dispatch(ctx context.Context, event *models.PaymentEvent) error {
	handler, ok := d.handlers[event.Type]
	if !ok {
		d.logger.Info("unhandled event type",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
		)
		return nil
	}

	if d.ledger != nil {
		first, err := d.ledger.Reserve(ctx, event.ID)
		if err != nil {
			// Ledger outage must not drop deliveries; handlers are
			// idempotent per event id.
			d.logger.Warn("event ledger unavailable, processing without dedupe",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
		} else if !first {
			d.logger.Info("duplicate event delivery skipped",
				zap.String("event_id", event.ID),
				zap.String("type", string(event.Type)),
			)
			return nil
		}
	}

	if err := handler(ctx, event); err != nil {
		if d.ledger != nil {
			if relErr := d.ledger.Release(ctx, event.ID); relErr != nil {
				d.logger.Warn("failed to release event reservation",
					zap.String("event_id", event.ID),
					zap.Error(relErr),
				)
			}
		}
		return fmt.Errorf("handle %s: %w", event.Type, err)
	}
	return nil
}

func (d *Dispatcher) handleCheckoutCompleted(ctx context.Context, event *models.PaymentEvent) error {
	var session models.CheckoutSessionObject
	if err := decodeObject(event, &session); err != nil {
		return err
	}

	switch session.Mode {
	case models.ModePayment:
		return d.recorder.RecordPurchase(ctx, event.ID, session)
	case models.ModeSubscription:
		return d.recorder.ActivateSubscription(ctx, event.ID, session)
	default:
		d.logger.Info("checkout completed in unrecognized mode",
			zap.String("event_id", event.ID),
			zap.String("mode", string(session.Mode)),
		)
		return nil
	}
}

func (d *Dispatcher) handleInvoicePaid(ctx context.Context, event *models.PaymentEvent) error {
	var invoice models.InvoiceObject
	if err := decodeObject(event, &invoice); err != nil {
		return err
	}
	return d.recorder.ExtendSubscription(ctx, event.ID, invoice)
}

func (d *Dispatcher) handleInvoicePaymentFailed(ctx context.Context, event *models.PaymentEvent) error {
	var invoice models.InvoiceObject
	if err := decodeObject(event, &invoice); err != nil {
		return err
	}
	return d.recorder.MarkSubscriptionAtRisk(ctx, event.ID, invoice)
}

func (d *Dispatcher) handleSubscriptionChanged(ctx context.Context, event *models.PaymentEvent) error {
	var sub models.SubscriptionObject
	if err := decodeObject(event, &sub); err != nil {
		return err
	}
	return d.recorder.UpsertSubscription(ctx, event.ID, sub)
}

func (d *Dispatcher) handleAccountUpdated(ctx context.Context, event *models.PaymentEvent) error {
	var account models.AccountObject
	if err := decodeObject(event, &account); err != nil {
		return err
	}
	return d.recorder.UpsertSellerCapabilities(ctx, event.ID, account)
}

func decodeObject(event *models.PaymentEvent, dst any) error {
	if len(event.Data.Object) == 0 {
		return fmt.Errorf("%w: event %s has no data object", ErrMalformedPayload, event.ID)
	}
	if err := json.Unmarshal(event.Data.Object, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}
