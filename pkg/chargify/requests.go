package chargify

import (
	"fmt"
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/shopspring/decimal"
)

// Request is an outbound write payload.
type Request interface {
	// Validate reports the first invalid field as a *ValidationError.
	Validate() error
	node() *wire.Node
}

// BuildBody validates r and renders it as an XML document. In JSON mode the
// transport converts the document with wire.XMLToJSON just before sending.
func BuildBody(r Request) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidArgument)
	}

	err := r.Validate()
	if err != nil {
		return nil, err
	}

	return wire.MarshalXML(r.node())
}

// CustomerAttributes describes a customer to create, on its own or inline in
// a new subscription.
type CustomerAttributes struct {
	FirstName    string
	LastName     string
	Email        string
	CCEmails     string
	Organization string
	Reference    string
	Address      string
	Address2     string
	City         string
	State        string
	Zip          string
	Country      string
	Phone        string
	VATNumber    string
	TaxExempt    *bool
	ParentID     *int
}

// Validate implements Request.
func (a *CustomerAttributes) Validate() error {
	switch {
	case a.FirstName == "":
		return invalid("first_name", "is required")
	case a.LastName == "":
		return invalid("last_name", "is required")
	case a.Email == "":
		return invalid("email", "is required")
	}

	return nil
}

func (a *CustomerAttributes) node() *wire.Node {
	return a.encode("customer")
}

func (a *CustomerAttributes) encode(name string) *wire.Node {
	n := wire.NewNode(name)
	n.AddText("first_name", a.FirstName)
	n.AddText("last_name", a.LastName)
	n.AddText("email", a.Email)
	n.AddText("cc_emails", a.CCEmails)
	n.AddText("organization", a.Organization)
	n.AddText("reference", a.Reference)
	n.AddText("address", a.Address)
	n.AddText("address_2", a.Address2)
	n.AddText("city", a.City)
	n.AddText("state", a.State)
	n.AddText("zip", a.Zip)
	n.AddText("country", a.Country)
	n.AddText("phone", a.Phone)
	n.AddText("vat_number", a.VATNumber)
	n.AddOptionalBool("tax_exempt", a.TaxExempt)
	n.AddOptionalInt("parent_id", a.ParentID)

	return n
}

// CustomerUpdate changes the fields it sets and leaves the rest untouched.
type CustomerUpdate CustomerAttributes

// Validate implements Request.
func (u *CustomerUpdate) Validate() error {
	if u.node().IsLeaf() {
		return invalid("customer", "at least one field must be set")
	}

	return nil
}

func (u *CustomerUpdate) node() *wire.Node {
	return (*CustomerAttributes)(u).encode("customer")
}

// CreditCardAttributes describes a card to store. A vault token may stand in
// for the full card number.
type CreditCardAttributes struct {
	FirstName          string
	LastName           string
	FullNumber         string
	ExpirationMonth    int
	ExpirationYear     int
	CVV                string
	BillingAddress     string
	BillingAddress2    string
	BillingCity        string
	BillingState       string
	BillingZip         string
	BillingCountry     string
	CurrentVault       string
	VaultToken         string
	CustomerVaultToken string
}

// Validate checks the card fields.
func (c *CreditCardAttributes) Validate() error {
	switch {
	case c.FullNumber == "" && c.VaultToken == "":
		return invalid("full_number", "is required unless a vault token is given")
	case c.ExpirationMonth < 1 || c.ExpirationMonth > 12:
		return invalid("expiration_month", "must be between 1 and 12")
	case c.ExpirationYear < 1000 || c.ExpirationYear > 9999:
		return invalid("expiration_year", "must have four digits")
	}

	return nil
}

func (c *CreditCardAttributes) encode(name string) *wire.Node {
	n := wire.NewNode(name)
	n.AddText("first_name", c.FirstName)
	n.AddText("last_name", c.LastName)
	n.AddText("full_number", c.FullNumber)
	n.AddInt("expiration_month", c.ExpirationMonth)
	n.AddInt("expiration_year", c.ExpirationYear)
	n.AddText("cvv", c.CVV)
	n.AddText("billing_address", c.BillingAddress)
	n.AddText("billing_address_2", c.BillingAddress2)
	n.AddText("billing_city", c.BillingCity)
	n.AddText("billing_state", c.BillingState)
	n.AddText("billing_zip", c.BillingZip)
	n.AddText("billing_country", c.BillingCountry)
	n.AddText("current_vault", c.CurrentVault)
	n.AddText("vault_token", c.VaultToken)
	n.AddText("customer_vault_token", c.CustomerVaultToken)

	return n
}

// ComponentQuantity sets the starting quantity of a component on a new
// subscription.
type ComponentQuantity struct {
	ComponentID int
	Quantity    int
	Enabled     *bool
}

// SubscriptionCreate describes a new subscription. It names exactly one
// product (by handle or ID) and exactly one customer (by ID, by reference or
// inline attributes).
type SubscriptionCreate struct {
	ProductHandle           string
	ProductID               int
	CustomerID              int
	CustomerReference       string
	Customer                *CustomerAttributes
	CreditCard              *CreditCardAttributes
	PaymentProfileID        int
	CouponCode              string
	NextBillingAt           time.Time
	PaymentCollectionMethod PaymentCollectionMethod
	Reference               string
	Components              []ComponentQuantity
}

// Validate implements Request.
func (s *SubscriptionCreate) Validate() error {
	if (s.ProductHandle == "") == (s.ProductID == 0) {
		return invalid("product", "exactly one of product_handle and product_id is required")
	}

	customers := 0

	for _, set := range []bool{s.CustomerID != 0, s.CustomerReference != "", s.Customer != nil} {
		if set {
			customers++
		}
	}

	if customers != 1 {
		return invalid("customer", "exactly one of customer_id, customer_reference and customer_attributes is required")
	}

	if s.Customer != nil {
		err := s.Customer.Validate()
		if err != nil {
			return err
		}
	}

	if s.CreditCard != nil {
		err := s.CreditCard.Validate()
		if err != nil {
			return err
		}
	}

	for _, c := range s.Components {
		if c.ComponentID == 0 {
			return invalid("components", "component_id is required")
		}

		if c.Quantity < 0 {
			return invalid("components", "allocated_quantity must not be negative")
		}
	}

	return nil
}

func (s *SubscriptionCreate) node() *wire.Node {
	n := wire.NewNode("subscription")
	n.AddText("product_handle", s.ProductHandle)
	n.AddID("product_id", s.ProductID)
	n.AddID("customer_id", s.CustomerID)
	n.AddText("customer_reference", s.CustomerReference)

	if s.Customer != nil {
		n.AddChild(s.Customer.encode("customer_attributes"))
	}

	if s.CreditCard != nil {
		n.AddChild(s.CreditCard.encode("credit_card_attributes"))
	}

	n.AddID("payment_profile_id", s.PaymentProfileID)
	n.AddText("coupon_code", s.CouponCode)
	n.AddTime("next_billing_at", s.NextBillingAt)
	n.AddText("payment_collection_method", string(s.PaymentCollectionMethod))
	n.AddText("reference", s.Reference)

	if len(s.Components) > 0 {
		arr := n.AddArray("components")

		for _, c := range s.Components {
			cn := arr.AddElement("component")
			cn.AddInt("component_id", c.ComponentID)
			cn.AddInt("allocated_quantity", c.Quantity)
			cn.AddOptionalBool("enabled", c.Enabled)
		}
	}

	return n
}

// SubscriptionUpdate changes product, payment details or billing settings of
// an existing subscription.
type SubscriptionUpdate struct {
	ProductHandle           string
	ProductID               int
	ProductChangeDelayed    *bool
	CreditCard              *CreditCardAttributes
	NextBillingAt           time.Time
	PaymentCollectionMethod PaymentCollectionMethod
	Reference               string
	CancelAtEndOfPeriod     *bool
}

// Validate implements Request.
func (s *SubscriptionUpdate) Validate() error {
	if s.ProductHandle != "" && s.ProductID != 0 {
		return invalid("product", "product_handle and product_id are mutually exclusive")
	}

	if s.CreditCard != nil {
		err := s.CreditCard.Validate()
		if err != nil {
			return err
		}
	}

	if s.node().IsLeaf() {
		return invalid("subscription", "at least one field must be set")
	}

	return nil
}

func (s *SubscriptionUpdate) node() *wire.Node {
	n := wire.NewNode("subscription")
	n.AddText("product_handle", s.ProductHandle)
	n.AddID("product_id", s.ProductID)
	n.AddOptionalBool("product_change_delayed", s.ProductChangeDelayed)

	if s.CreditCard != nil {
		n.AddChild(s.CreditCard.encode("payment_profile_attributes"))
	}

	n.AddTime("next_billing_at", s.NextBillingAt)
	n.AddText("payment_collection_method", string(s.PaymentCollectionMethod))
	n.AddText("reference", s.Reference)
	n.AddOptionalBool("cancel_at_end_of_period", s.CancelAtEndOfPeriod)

	return n
}

// SubscriptionCancel carries the optional reason sent with a cancellation.
type SubscriptionCancel struct {
	Message string
}

// Validate implements Request.
func (s *SubscriptionCancel) Validate() error { return nil }

func (s *SubscriptionCancel) node() *wire.Node {
	n := wire.NewNode("subscription")
	n.AddText("cancellation_message", s.Message)

	return n
}

// MigrationRequest moves a subscription to another product, or previews the
// cost of doing so.
type MigrationRequest struct {
	ProductID            int
	ProductHandle        string
	IncludeTrial         *bool
	IncludeInitialCharge *bool
	IncludeCoupons       *bool
	PreservePeriod       *bool
}

// Validate implements Request.
func (m *MigrationRequest) Validate() error {
	if (m.ProductHandle == "") == (m.ProductID == 0) {
		return invalid("product", "exactly one of product_handle and product_id is required")
	}

	return nil
}

func (m *MigrationRequest) node() *wire.Node {
	n := wire.NewNode("migration")
	n.AddID("product_id", m.ProductID)
	n.AddText("product_handle", m.ProductHandle)
	n.AddOptionalBool("include_trial", m.IncludeTrial)
	n.AddOptionalBool("include_initial_charge", m.IncludeInitialCharge)
	n.AddOptionalBool("include_coupons", m.IncludeCoupons)
	n.AddOptionalBool("preserve_period", m.PreservePeriod)

	return n
}

// validateAmount requires exactly one of a dollar amount and a cent amount.
// Negative amounts are allowed.
func validateAmount(amount *decimal.Decimal, cents *int64) error {
	if (amount == nil) == (cents == nil) {
		return invalid("amount", "exactly one of amount and amount_in_cents is required")
	}

	return nil
}

func amountNode(name string, amount *decimal.Decimal, cents *int64, memo string) *wire.Node {
	n := wire.NewNode(name)
	n.AddAmount("amount", amount)
	n.AddOptionalInt64("amount_in_cents", cents)
	n.AddText("memo", memo)

	return n
}

// ChargeRequest posts a one-time charge.
type ChargeRequest struct {
	Amount        *decimal.Decimal
	AmountInCents *int64
	Memo          string
	DelayCapture  *bool
	Taxable       *bool
}

// Validate implements Request.
func (r *ChargeRequest) Validate() error {
	err := validateAmount(r.Amount, r.AmountInCents)
	if err != nil {
		return err
	}

	if r.Memo == "" {
		return invalid("memo", "is required")
	}

	return nil
}

func (r *ChargeRequest) node() *wire.Node {
	n := amountNode("charge", r.Amount, r.AmountInCents, r.Memo)
	n.AddOptionalBool("delay_capture", r.DelayCapture)
	n.AddOptionalBool("taxable", r.Taxable)

	return n
}

// CreditRequest posts a one-time credit.
type CreditRequest struct {
	Amount        *decimal.Decimal
	AmountInCents *int64
	Memo          string
}

// Validate implements Request.
func (r *CreditRequest) Validate() error {
	err := validateAmount(r.Amount, r.AmountInCents)
	if err != nil {
		return err
	}

	if r.Memo == "" {
		return invalid("memo", "is required")
	}

	return nil
}

func (r *CreditRequest) node() *wire.Node {
	return amountNode("credit", r.Amount, r.AmountInCents, r.Memo)
}

// PaymentRequest records an external payment.
type PaymentRequest struct {
	Amount        *decimal.Decimal
	AmountInCents *int64
	Memo          string
}

// Validate implements Request.
func (r *PaymentRequest) Validate() error {
	err := validateAmount(r.Amount, r.AmountInCents)
	if err != nil {
		return err
	}

	if r.Memo == "" {
		return invalid("memo", "is required")
	}

	return nil
}

func (r *PaymentRequest) node() *wire.Node {
	return amountNode("payment", r.Amount, r.AmountInCents, r.Memo)
}

// AdjustmentRequest moves a balance by an amount, or to an amount when
// AdjustmentMethod is "target".
type AdjustmentRequest struct {
	Amount           *decimal.Decimal
	AmountInCents    *int64
	Memo             string
	AdjustmentMethod string
}

// Validate implements Request.
func (r *AdjustmentRequest) Validate() error {
	err := validateAmount(r.Amount, r.AmountInCents)
	if err != nil {
		return err
	}

	if r.Memo == "" {
		return invalid("memo", "is required")
	}

	return nil
}

func (r *AdjustmentRequest) node() *wire.Node {
	n := amountNode("adjustment", r.Amount, r.AmountInCents, r.Memo)
	n.AddText("adjustment_method", r.AdjustmentMethod)

	return n
}

// RefundRequest refunds part or all of a payment.
type RefundRequest struct {
	PaymentID     int
	Amount        *decimal.Decimal
	AmountInCents *int64
	Memo          string
}

// Validate implements Request.
func (r *RefundRequest) Validate() error {
	if r.PaymentID == 0 {
		return invalid("payment_id", "is required")
	}

	err := validateAmount(r.Amount, r.AmountInCents)
	if err != nil {
		return err
	}

	if r.Memo == "" {
		return invalid("memo", "is required")
	}

	return nil
}

func (r *RefundRequest) node() *wire.Node {
	n := amountNode("refund", r.Amount, r.AmountInCents, r.Memo)
	n.AddInt("payment_id", r.PaymentID)

	return n
}

// AllocationRequest sets the quantity of a quantity-based component.
type AllocationRequest struct {
	Quantity                 int
	Memo                     string
	ProrationUpgradeScheme   ProrationUpgradeScheme
	ProrationDowngradeScheme ProrationDowngradeScheme
}

// Validate implements Request.
func (r *AllocationRequest) Validate() error {
	if r.Quantity < 0 {
		return invalid("quantity", "must not be negative")
	}

	return nil
}

func (r *AllocationRequest) node() *wire.Node {
	n := wire.NewNode("allocation")
	n.AddInt("quantity", r.Quantity)
	n.AddText("memo", r.Memo)
	n.AddText("proration_upgrade_scheme", string(r.ProrationUpgradeScheme))
	n.AddText("proration_downgrade_scheme", string(r.ProrationDowngradeScheme))

	return n
}

// UsageRequest records metered usage. Negative quantities reverse earlier
// usage.
type UsageRequest struct {
	Quantity int
	Memo     string
}

// Validate implements Request.
func (r *UsageRequest) Validate() error {
	if r.Quantity == 0 {
		return invalid("quantity", "must not be zero")
	}

	return nil
}

func (r *UsageRequest) node() *wire.Node {
	n := wire.NewNode("usage")
	n.AddInt("quantity", r.Quantity)
	n.AddText("memo", r.Memo)

	return n
}

// CouponRequest creates a coupon in a product family. Exactly one of
// AmountInCents and Percentage must be set.
type CouponRequest struct {
	ProductFamilyID      int
	Name                 string
	Code                 string
	Description          string
	AmountInCents        *int64
	Percentage           *decimal.Decimal
	AllowNegativeBalance *bool
	Recurring            *bool
	DurationPeriodCount  *int
	EndDate              time.Time
}

// Validate implements Request.
func (r *CouponRequest) Validate() error {
	switch {
	case r.ProductFamilyID == 0:
		return invalid("product_family_id", "is required")
	case r.Name == "":
		return invalid("name", "is required")
	case r.Code == "":
		return invalid("code", "is required")
	case (r.AmountInCents == nil) == (r.Percentage == nil):
		return invalid("amount", "exactly one of amount_in_cents and percentage is required")
	case r.Percentage != nil && (!r.Percentage.IsPositive() || r.Percentage.GreaterThan(decimal.NewFromInt(100))):
		return invalid("percentage", "must be greater than 0 and at most 100")
	}

	return nil
}

func (r *CouponRequest) node() *wire.Node {
	n := wire.NewNode("coupon")
	n.AddText("name", r.Name)
	n.AddText("code", r.Code)
	n.AddText("description", r.Description)
	n.AddOptionalInt64("amount_in_cents", r.AmountInCents)
	n.AddOptionalDecimal("percentage", r.Percentage)
	n.AddOptionalBool("allow_negative_balance", r.AllowNegativeBalance)
	n.AddOptionalBool("recurring", r.Recurring)
	n.AddOptionalInt("duration_period_count", r.DurationPeriodCount)
	n.AddTime("end_date", r.EndDate)

	return n
}
