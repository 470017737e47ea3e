package services

import (
	"net/http"

	"payment-gateway/models"

	"github.com/stripe/stripe-go/v80"
)

// PlatformFee computes the platform's cut of amount in minor currency
// units, round-half-up. feeBps is the fee rate in basis points. Integer
// arithmetic only: the same inputs always produce the same fee.
func PlatformFee(amount, feeBps int64) int64 {
	return (amount*feeBps + 5000) / 10000
}

// BuildCheckoutSessionParams validates intent and constructs the provider
// request. Pure construction: validation failures are caught here, before
// any provider call. When a seller account is present the fund split is
// always attached; when absent the session carries no split fields and the
// platform receives the full amount.
func BuildCheckoutSessionParams(intent models.CheckoutIntent, feeBps int64) (*stripe.CheckoutSessionParams, *ServiceError) {
	if intent.SuccessURL == "" || intent.CancelURL == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Missing required parameters: successUrl, cancelUrl"}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(intent.Mode)),
		SuccessURL:         stripe.String(intent.SuccessURL),
		CancelURL:          stripe.String(intent.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	switch intent.Mode {
	case models.ModePayment:
		if len(intent.LineItems) == 0 {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Missing required parameters: productName, price"}
		}
		var total int64
		for _, item := range intent.LineItems {
			if item.ProductName == "" || item.Currency == "" {
				return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Missing required parameters: productName, price"}
			}
			if item.UnitAmount <= 0 || item.Quantity <= 0 {
				return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Price and quantity must be positive"}
			}
			params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(item.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(item.ProductName),
					},
					UnitAmount: stripe.Int64(item.UnitAmount),
				},
				Quantity: stripe.Int64(item.Quantity),
			})
			total += item.UnitAmount * item.Quantity
		}

		if intent.SellerAccountID != "" {
			params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
				ApplicationFeeAmount: stripe.Int64(PlatformFee(total, feeBps)),
				TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
					Destination: stripe.String(intent.SellerAccountID),
				},
			}
		}

	case models.ModeSubscription:
		if intent.PriceID == "" {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Missing required parameters: customerId, priceId"}
		}
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(intent.PriceID),
				Quantity: stripe.Int64(1),
			},
		}
		if intent.CustomerID != "" {
			params.Customer = stripe.String(intent.CustomerID)
		}

	default:
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Unsupported checkout mode"}
	}

	return params, nil
}
