package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// Transaction is one entry of a subscription's ledger history.
type Transaction struct {
	ID                     int
	TransactionType        TransactionType
	Kind                   string
	AmountInCents          int64
	StartingBalanceInCents int64
	EndingBalanceInCents   int64
	Memo                   string
	SubscriptionID         int
	CustomerID             int
	ProductID              int
	PaymentID              *int
	StatementID            *int
	Success                bool
	GatewayTransactionID   string
	CreatedAt              time.Time
}

// TransactionID keys transaction collections by ID.
func TransactionID(t *Transaction) int { return t.ID }

func (t *Transaction) rootName() string { return "transaction" }

func (t *Transaction) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			t.ID = f.Int()
		case "transaction_type", "type":
			t.TransactionType = ParseTransactionType(f.String())
		case "kind":
			t.Kind = f.String()
		case "amount_in_cents":
			t.AmountInCents = f.Int64()
		case "starting_balance_in_cents":
			t.StartingBalanceInCents = f.Int64()
		case "ending_balance_in_cents":
			t.EndingBalanceInCents = f.Int64()
		case "memo":
			t.Memo = f.String()
		case "subscription_id":
			t.SubscriptionID = f.Int()
		case "customer_id":
			t.CustomerID = f.Int()
		case "product_id":
			t.ProductID = f.Int()
		case "payment_id":
			t.PaymentID = f.IntPtr()
		case "statement_id":
			t.StatementID = f.IntPtr()
		case "success":
			t.Success = f.Bool()
		case "gateway_transaction_id":
			t.GatewayTransactionID = f.String()
		case "created_at":
			t.CreatedAt = f.Time()
		}

		return nil
	})
}

func (t *Transaction) node() *wire.Node {
	n := wire.NewNode(t.rootName())
	n.AddID("id", t.ID)
	n.AddText("transaction_type", string(t.TransactionType))
	n.AddText("kind", t.Kind)
	n.AddInt64("amount_in_cents", t.AmountInCents)
	n.AddInt64("starting_balance_in_cents", t.StartingBalanceInCents)
	n.AddInt64("ending_balance_in_cents", t.EndingBalanceInCents)
	n.AddText("memo", t.Memo)
	n.AddID("subscription_id", t.SubscriptionID)
	n.AddID("customer_id", t.CustomerID)
	n.AddID("product_id", t.ProductID)
	n.AddOptionalInt("payment_id", t.PaymentID)
	n.AddOptionalInt("statement_id", t.StatementID)
	n.AddBool("success", t.Success)
	n.AddText("gateway_transaction_id", t.GatewayTransactionID)
	n.AddTime("created_at", t.CreatedAt)

	return n
}
