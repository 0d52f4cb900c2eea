package chargify

import "github.com/fivetwenty-io/chargify-client/pkg/wire"

// MigrationPreview is the projected cost of moving a subscription to another
// product.
type MigrationPreview struct {
	ProratedAdjustmentInCents int64
	ChargeInCents             int64
	PaymentDueInCents         int64
	CreditAppliedInCents      int64
}

func (m *MigrationPreview) rootName() string { return "migration" }

func (m *MigrationPreview) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "prorated_adjustment_in_cents":
			m.ProratedAdjustmentInCents = f.Int64()
		case "charge_in_cents":
			m.ChargeInCents = f.Int64()
		case "payment_due_in_cents":
			m.PaymentDueInCents = f.Int64()
		case "credit_applied_in_cents":
			m.CreditAppliedInCents = f.Int64()
		}

		return nil
	})
}

func (m *MigrationPreview) node() *wire.Node {
	n := wire.NewNode(m.rootName())
	n.AddInt64("prorated_adjustment_in_cents", m.ProratedAdjustmentInCents)
	n.AddInt64("charge_in_cents", m.ChargeInCents)
	n.AddInt64("payment_due_in_cents", m.PaymentDueInCents)
	n.AddInt64("credit_applied_in_cents", m.CreditAppliedInCents)

	return n
}
