package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// LedgerEntry holds the fields shared by charges, credits, refunds,
// adjustments and payments.
type LedgerEntry struct {
	ID                   int
	AmountInCents        int64
	EndingBalanceInCents int64
	Memo                 string
	Success              bool
	SubscriptionID       int
	CreatedAt            time.Time
}

func (e *LedgerEntry) decodeField(name string, f wire.Value) bool {
	switch name {
	case "id":
		e.ID = f.Int()
	case "amount_in_cents":
		e.AmountInCents = f.Int64()
	case "ending_balance_in_cents":
		e.EndingBalanceInCents = f.Int64()
	case "memo":
		e.Memo = f.String()
	case "success":
		e.Success = f.Bool()
	case "subscription_id":
		e.SubscriptionID = f.Int()
	case "created_at":
		e.CreatedAt = f.Time()
	default:
		return false
	}

	return true
}

func (e *LedgerEntry) addTo(n *wire.Node) {
	n.AddID("id", e.ID)
	n.AddInt64("amount_in_cents", e.AmountInCents)
	n.AddInt64("ending_balance_in_cents", e.EndingBalanceInCents)
	n.AddText("memo", e.Memo)
	n.AddBool("success", e.Success)
	n.AddID("subscription_id", e.SubscriptionID)
	n.AddTime("created_at", e.CreatedAt)
}

func (e *LedgerEntry) decodeAll(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		e.decodeField(name, f)

		return nil
	})
}

func (e *LedgerEntry) encode(name string) *wire.Node {
	n := wire.NewNode(name)
	e.addTo(n)

	return n
}

// Charge is a one-time charge against a subscription.
type Charge struct {
	LedgerEntry
	Kind      string
	ProductID int
	PaymentID *int
}

func (c *Charge) rootName() string { return "charge" }

func (c *Charge) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		if c.decodeField(name, f) {
			return nil
		}

		switch name {
		case "kind":
			c.Kind = f.String()
		case "product_id":
			c.ProductID = f.Int()
		case "payment_id":
			c.PaymentID = f.IntPtr()
		}

		return nil
	})
}

func (c *Charge) node() *wire.Node {
	n := c.encode(c.rootName())
	n.AddText("kind", c.Kind)
	n.AddID("product_id", c.ProductID)
	n.AddOptionalInt("payment_id", c.PaymentID)

	return n
}

// Credit is a one-time credit applied to a subscription balance.
type Credit struct {
	LedgerEntry
}

func (c *Credit) rootName() string { return "credit" }
func (c *Credit) decodeValue(v wire.Value) error { return c.decodeAll(v) }
func (c *Credit) node() *wire.Node { return c.encode(c.rootName()) }

// Adjustment moves a subscription balance by an arbitrary amount.
type Adjustment struct {
	LedgerEntry
}

func (a *Adjustment) rootName() string { return "adjustment" }
func (a *Adjustment) decodeValue(v wire.Value) error { return a.decodeAll(v) }
func (a *Adjustment) node() *wire.Node { return a.encode(a.rootName()) }

// Payment is money received against a subscription balance.
type Payment struct {
	LedgerEntry
}

// PaymentID keys payment collections by ID.
func PaymentID(p *Payment) int { return p.ID }

func (p *Payment) rootName() string { return "payment" }
func (p *Payment) decodeValue(v wire.Value) error { return p.decodeAll(v) }
func (p *Payment) node() *wire.Node { return p.encode(p.rootName()) }

// Refund returns part or all of an earlier payment.
type Refund struct {
	LedgerEntry
	PaymentID int
}

func (r *Refund) rootName() string { return "refund" }

func (r *Refund) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		if r.decodeField(name, f) {
			return nil
		}

		if name == "payment_id" {
			r.PaymentID = f.Int()
		}

		return nil
	})
}

func (r *Refund) node() *wire.Node {
	n := r.encode(r.rootName())
	n.AddID("payment_id", r.PaymentID)

	return n
}
