package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// Statement summarises one billing period of a subscription, including the
// transactions posted during it.
type Statement struct {
	ID                     int
	SubscriptionID         int
	OpenedAt               time.Time
	ClosedAt               time.Time
	SettledAt              time.Time
	TextView               string
	BasicHTMLView          string
	HTMLView               string
	FuturePayments         []Payment
	StartingBalanceInCents int64
	EndingBalanceInCents   int64
	TotalInCents           int64
	CustomerFirstName      string
	CustomerLastName       string
	CustomerOrganization   string
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Transactions           []Transaction
}

// StatementID keys statement collections by ID.
func StatementID(s *Statement) int { return s.ID }

func (s *Statement) rootName() string { return "statement" }

func (s *Statement) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		var err error

		switch name {
		case "id":
			s.ID = f.Int()
		case "subscription_id":
			s.SubscriptionID = f.Int()
		case "opened_at":
			s.OpenedAt = f.Time()
		case "closed_at":
			s.ClosedAt = f.Time()
		case "settled_at":
			s.SettledAt = f.Time()
		case "text_view":
			s.TextView = f.String()
		case "basic_html_view":
			s.BasicHTMLView = f.String()
		case "html_view":
			s.HTMLView = f.String()
		case "future_payments":
			s.FuturePayments, err = decodeNested[Payment](f, "payment")
		case "starting_balance_in_cents":
			s.StartingBalanceInCents = f.Int64()
		case "ending_balance_in_cents":
			s.EndingBalanceInCents = f.Int64()
		case "total_in_cents":
			s.TotalInCents = f.Int64()
		case "customer_first_name":
			s.CustomerFirstName = f.String()
		case "customer_last_name":
			s.CustomerLastName = f.String()
		case "customer_organization":
			s.CustomerOrganization = f.String()
		case "created_at":
			s.CreatedAt = f.Time()
		case "updated_at":
			s.UpdatedAt = f.Time()
		case "transactions":
			s.Transactions, err = decodeNested[Transaction](f, "transaction")
		}

		return err
	})
}

func (s *Statement) node() *wire.Node {
	n := wire.NewNode(s.rootName())
	n.AddID("id", s.ID)
	n.AddID("subscription_id", s.SubscriptionID)
	n.AddTime("opened_at", s.OpenedAt)
	n.AddTime("closed_at", s.ClosedAt)
	n.AddTime("settled_at", s.SettledAt)
	n.AddText("text_view", s.TextView)
	n.AddText("basic_html_view", s.BasicHTMLView)
	n.AddText("html_view", s.HTMLView)
	encodeNested(n, "future_payments", s.FuturePayments)
	n.AddInt64("starting_balance_in_cents", s.StartingBalanceInCents)
	n.AddInt64("ending_balance_in_cents", s.EndingBalanceInCents)
	n.AddInt64("total_in_cents", s.TotalInCents)
	n.AddText("customer_first_name", s.CustomerFirstName)
	n.AddText("customer_last_name", s.CustomerLastName)
	n.AddText("customer_organization", s.CustomerOrganization)
	n.AddTime("created_at", s.CreatedAt)
	n.AddTime("updated_at", s.UpdatedAt)
	encodeNested(n, "transactions", s.Transactions)

	return n
}
