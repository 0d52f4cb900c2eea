package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// ProductFamily groups products, components and coupons.
type ProductFamily struct {
	ID             int
	Name           string
	Handle         string
	Description    string
	AccountingCode string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductFamilyID keys product family collections by ID.
func ProductFamilyID(f *ProductFamily) int { return f.ID }

func (f *ProductFamily) rootName() string { return "product_family" }

func (f *ProductFamily) decodeValue(v wire.Value) error {
	return v.Each(func(name string, fv wire.Value) error {
		switch name {
		case "id":
			f.ID = fv.Int()
		case "name":
			f.Name = fv.String()
		case "handle":
			f.Handle = fv.String()
		case "description":
			f.Description = fv.String()
		case "accounting_code":
			f.AccountingCode = fv.String()
		case "created_at":
			f.CreatedAt = fv.Time()
		case "updated_at":
			f.UpdatedAt = fv.Time()
		}

		return nil
	})
}

func (f *ProductFamily) node() *wire.Node {
	n := wire.NewNode(f.rootName())
	n.AddID("id", f.ID)
	n.AddText("name", f.Name)
	n.AddText("handle", f.Handle)
	n.AddText("description", f.Description)
	n.AddText("accounting_code", f.AccountingCode)
	n.AddTime("created_at", f.CreatedAt)
	n.AddTime("updated_at", f.UpdatedAt)

	return n
}

// PublicSignupPage is a hosted signup form for a product.
type PublicSignupPage struct {
	ID           int
	URL          string
	ReturnURL    string
	ReturnParams string
}

func (p *PublicSignupPage) rootName() string { return "public_signup_page" }

func (p *PublicSignupPage) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			p.ID = f.Int()
		case "url":
			p.URL = f.String()
		case "return_url":
			p.ReturnURL = f.String()
		case "return_params":
			p.ReturnParams = f.String()
		}

		return nil
	})
}

func (p *PublicSignupPage) node() *wire.Node {
	n := wire.NewNode(p.rootName())
	n.AddID("id", p.ID)
	n.AddText("url", p.URL)
	n.AddText("return_url", p.ReturnURL)
	n.AddText("return_params", p.ReturnParams)

	return n
}

// Product is a sellable plan within a product family.
type Product struct {
	ID                     int
	Name                   string
	Handle                 string
	Description            string
	AccountingCode         string
	PriceInCents           int64
	Interval               int
	IntervalUnit           IntervalUnit
	InitialChargeInCents   *int64
	TrialPriceInCents      *int64
	TrialInterval          *int
	TrialIntervalUnit      IntervalUnit
	ExpirationInterval     *int
	ExpirationIntervalUnit IntervalUnit
	ReturnURL              string
	UpdateReturnURL        string
	RequireCreditCard      bool
	RequestCreditCard      bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
	ArchivedAt             time.Time
	ProductFamily          ProductFamily
	PublicSignupPages      []PublicSignupPage
}

// Equal reports whether two products share a handle.
func (p Product) Equal(other Product) bool {
	return p.Handle == other.Handle
}

// ProductID keys product collections by ID.
func ProductID(p *Product) int { return p.ID }

// ProductHandle keys product collections by handle.
func ProductHandle(p *Product) string { return p.Handle }

func (p *Product) rootName() string { return "product" }

func (p *Product) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			p.ID = f.Int()
		case "name":
			p.Name = f.String()
		case "handle":
			p.Handle = f.String()
		case "description":
			p.Description = f.String()
		case "accounting_code":
			p.AccountingCode = f.String()
		case "price_in_cents":
			p.PriceInCents = f.Int64()
		case "interval":
			p.Interval = f.Int()
		case "interval_unit":
			p.IntervalUnit = ParseIntervalUnit(f.String())
		case "initial_charge_in_cents":
			p.InitialChargeInCents = f.Int64Ptr()
		case "trial_price_in_cents":
			p.TrialPriceInCents = f.Int64Ptr()
		case "trial_interval":
			p.TrialInterval = f.IntPtr()
		case "trial_interval_unit":
			p.TrialIntervalUnit = ParseIntervalUnit(f.String())
		case "expiration_interval":
			p.ExpirationInterval = f.IntPtr()
		case "expiration_interval_unit":
			p.ExpirationIntervalUnit = ParseIntervalUnit(f.String())
		case "return_url":
			p.ReturnURL = f.String()
		case "update_return_url":
			p.UpdateReturnURL = f.String()
		case "require_credit_card":
			p.RequireCreditCard = f.Bool()
		case "request_credit_card":
			p.RequestCreditCard = f.Bool()
		case "created_at":
			p.CreatedAt = f.Time()
		case "updated_at":
			p.UpdatedAt = f.Time()
		case "archived_at":
			p.ArchivedAt = f.Time()
		case "product_family":
			return p.ProductFamily.decodeValue(f)
		case "public_signup_pages":
			pages, err := decodeNested[PublicSignupPage](f, "public_signup_page")
			if err != nil {
				return err
			}

			p.PublicSignupPages = pages
		}

		return nil
	})
}

func (p *Product) node() *wire.Node {
	n := wire.NewNode(p.rootName())
	n.AddID("id", p.ID)
	n.AddText("name", p.Name)
	n.AddText("handle", p.Handle)
	n.AddText("description", p.Description)
	n.AddText("accounting_code", p.AccountingCode)
	n.AddInt64("price_in_cents", p.PriceInCents)
	n.AddInt("interval", p.Interval)
	n.AddText("interval_unit", string(p.IntervalUnit))
	n.AddOptionalInt64("initial_charge_in_cents", p.InitialChargeInCents)
	n.AddOptionalInt64("trial_price_in_cents", p.TrialPriceInCents)
	n.AddOptionalInt("trial_interval", p.TrialInterval)
	n.AddText("trial_interval_unit", string(p.TrialIntervalUnit))
	n.AddOptionalInt("expiration_interval", p.ExpirationInterval)
	n.AddText("expiration_interval_unit", string(p.ExpirationIntervalUnit))
	n.AddText("return_url", p.ReturnURL)
	n.AddText("update_return_url", p.UpdateReturnURL)
	n.AddBool("require_credit_card", p.RequireCreditCard)
	n.AddBool("request_credit_card", p.RequestCreditCard)
	n.AddTime("created_at", p.CreatedAt)
	n.AddTime("updated_at", p.UpdatedAt)
	n.AddTime("archived_at", p.ArchivedAt)

	if p.ProductFamily.ID != 0 {
		n.AddChild(p.ProductFamily.node())
	}

	encodeNested(n, "public_signup_pages", p.PublicSignupPages)

	return n
}
