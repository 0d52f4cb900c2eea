package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// LedgerClient posts one kind of one-time balance entry (charge, credit,
// refund, adjustment or payment) against a subscription.
type LedgerClient[T any, PT chargify.EntityPtr[T], R any, PR interface {
	*R
	chargify.Request
}] struct {
	httpClient *http.Client
	collection string
	rootKey    string
}

// NewLedgerClient creates a client posting to /subscriptions/{id}/{collection}
// and decoding the echoed entry rooted at rootKey.
func NewLedgerClient[T any, PT chargify.EntityPtr[T], R any, PR interface {
	*R
	chargify.Request
}](httpClient *http.Client, collection, rootKey string) *LedgerClient[T, PT, R, PR] {
	return &LedgerClient[T, PT, R, PR]{
		httpClient: httpClient,
		collection: collection,
		rootKey:    rootKey,
	}
}

// Create posts req against the subscription.
func (c *LedgerClient[T, PT, R, PR]) Create(ctx context.Context, subscriptionID int, req PR) (*T, error) {
	path := subscriptionPath(subscriptionID) + "/" + c.collection

	return sendEntity[T, PT](ctx, c.httpClient, nethttp.MethodPost, path, requestOrNil[R, PR](req), c.rootKey, c.rootKey)
}

// Ledger client instantiations.
type (
	ChargesClient     = LedgerClient[chargify.Charge, *chargify.Charge, chargify.ChargeRequest, *chargify.ChargeRequest]
	CreditsClient     = LedgerClient[chargify.Credit, *chargify.Credit, chargify.CreditRequest, *chargify.CreditRequest]
	RefundsClient     = LedgerClient[chargify.Refund, *chargify.Refund, chargify.RefundRequest, *chargify.RefundRequest]
	AdjustmentsClient = LedgerClient[chargify.Adjustment, *chargify.Adjustment, chargify.AdjustmentRequest, *chargify.AdjustmentRequest]
	PaymentsClient    = LedgerClient[chargify.Payment, *chargify.Payment, chargify.PaymentRequest, *chargify.PaymentRequest]
)

// NewChargesClient creates a new charges client.
func NewChargesClient(httpClient *http.Client) *ChargesClient {
	return NewLedgerClient[chargify.Charge, *chargify.Charge, chargify.ChargeRequest, *chargify.ChargeRequest](httpClient, "charges", "charge")
}

// NewCreditsClient creates a new credits client.
func NewCreditsClient(httpClient *http.Client) *CreditsClient {
	return NewLedgerClient[chargify.Credit, *chargify.Credit, chargify.CreditRequest, *chargify.CreditRequest](httpClient, "credits", "credit")
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *http.Client) *RefundsClient {
	return NewLedgerClient[chargify.Refund, *chargify.Refund, chargify.RefundRequest, *chargify.RefundRequest](httpClient, "refunds", "refund")
}

// NewAdjustmentsClient creates a new adjustments client.
func NewAdjustmentsClient(httpClient *http.Client) *AdjustmentsClient {
	return NewLedgerClient[chargify.Adjustment, *chargify.Adjustment, chargify.AdjustmentRequest, *chargify.AdjustmentRequest](
		httpClient, "adjustments", "adjustment")
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return NewLedgerClient[chargify.Payment, *chargify.Payment, chargify.PaymentRequest, *chargify.PaymentRequest](httpClient, "payments", "payment")
}
