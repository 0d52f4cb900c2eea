package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/shopspring/decimal"
)

// Subscription ties a customer to a product. The nested customer, product
// and payment profile are snapshots taken from the same response.
type Subscription struct {
	ID                      int
	State                   SubscriptionState
	BalanceInCents          int64
	TotalRevenueInCents     int64
	ProductPriceInCents     int64
	ProductVersionNumber    int
	CurrentPeriodStartedAt  time.Time
	CurrentPeriodEndsAt     time.Time
	NextAssessmentAt        time.Time
	TrialStartedAt          time.Time
	TrialEndedAt            time.Time
	ActivatedAt             time.Time
	ExpiresAt               time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
	CanceledAt              time.Time
	DelayedCancelAt         time.Time
	CancellationMessage     string
	CancelAtEndOfPeriod     bool
	CouponCode              string
	SignupPaymentID         int
	SignupRevenue           decimal.Decimal
	PaymentCollectionMethod PaymentCollectionMethod
	NextProductID           *int
	Reference               string
	Customer                Customer
	Product                 Product
	PaymentProfile          PaymentProfile
}

// Equal reports whether two subscriptions share an ID.
func (s Subscription) Equal(other Subscription) bool {
	return s.ID == other.ID
}

// SubscriptionID keys subscription collections by ID.
func SubscriptionID(s *Subscription) int { return s.ID }

func (s *Subscription) rootName() string { return "subscription" }

func (s *Subscription) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			s.ID = f.Int()
		case "state":
			s.State = ParseSubscriptionState(f.String())
		case "balance_in_cents":
			s.BalanceInCents = f.Int64()
		case "total_revenue_in_cents":
			s.TotalRevenueInCents = f.Int64()
		case "product_price_in_cents":
			s.ProductPriceInCents = f.Int64()
		case "product_version_number":
			s.ProductVersionNumber = f.Int()
		case "current_period_started_at":
			s.CurrentPeriodStartedAt = f.Time()
		case "current_period_ends_at":
			s.CurrentPeriodEndsAt = f.Time()
		case "next_assessment_at":
			s.NextAssessmentAt = f.Time()
		case "trial_started_at":
			s.TrialStartedAt = f.Time()
		case "trial_ended_at":
			s.TrialEndedAt = f.Time()
		case "activated_at":
			s.ActivatedAt = f.Time()
		case "expires_at":
			s.ExpiresAt = f.Time()
		case "created_at":
			s.CreatedAt = f.Time()
		case "updated_at":
			s.UpdatedAt = f.Time()
		case "canceled_at":
			s.CanceledAt = f.Time()
		case "delayed_cancel_at":
			s.DelayedCancelAt = f.Time()
		case "cancellation_message":
			s.CancellationMessage = f.String()
		case "cancel_at_end_of_period":
			s.CancelAtEndOfPeriod = f.Bool()
		case "coupon_code":
			s.CouponCode = f.String()
		case "signup_payment_id":
			s.SignupPaymentID = f.Int()
		case "signup_revenue":
			s.SignupRevenue = f.Decimal()
		case "payment_collection_method":
			s.PaymentCollectionMethod = ParsePaymentCollectionMethod(f.String())
		case "next_product_id":
			s.NextProductID = f.IntPtr()
		case "reference":
			s.Reference = f.String()
		case "customer":
			return s.Customer.decodeValue(f)
		case "product":
			return s.Product.decodeValue(f)
		case "credit_card", "bank_account", "payment_profile":
			return s.PaymentProfile.decodeValue(f)
		}

		return nil
	})
}

func (s *Subscription) node() *wire.Node {
	n := wire.NewNode(s.rootName())
	n.AddID("id", s.ID)
	n.AddText("state", string(s.State))
	n.AddInt64("balance_in_cents", s.BalanceInCents)
	n.AddInt64("total_revenue_in_cents", s.TotalRevenueInCents)
	n.AddInt64("product_price_in_cents", s.ProductPriceInCents)
	n.AddInt("product_version_number", s.ProductVersionNumber)
	n.AddTime("current_period_started_at", s.CurrentPeriodStartedAt)
	n.AddTime("current_period_ends_at", s.CurrentPeriodEndsAt)
	n.AddTime("next_assessment_at", s.NextAssessmentAt)
	n.AddTime("trial_started_at", s.TrialStartedAt)
	n.AddTime("trial_ended_at", s.TrialEndedAt)
	n.AddTime("activated_at", s.ActivatedAt)
	n.AddTime("expires_at", s.ExpiresAt)
	n.AddTime("created_at", s.CreatedAt)
	n.AddTime("updated_at", s.UpdatedAt)
	n.AddTime("canceled_at", s.CanceledAt)
	n.AddTime("delayed_cancel_at", s.DelayedCancelAt)
	n.AddText("cancellation_message", s.CancellationMessage)
	n.AddBool("cancel_at_end_of_period", s.CancelAtEndOfPeriod)
	n.AddText("coupon_code", s.CouponCode)
	n.AddID("signup_payment_id", s.SignupPaymentID)
	n.AddDecimal("signup_revenue", s.SignupRevenue)
	n.AddText("payment_collection_method", string(s.PaymentCollectionMethod))
	n.AddOptionalInt("next_product_id", s.NextProductID)
	n.AddText("reference", s.Reference)

	if s.Customer.ID != 0 {
		n.AddChild(s.Customer.node())
	}

	if s.Product.ID != 0 {
		n.AddChild(s.Product.node())
	}

	if s.PaymentProfile.ID != 0 {
		n.AddChild(s.PaymentProfile.encode("credit_card"))
	}

	return n
}
