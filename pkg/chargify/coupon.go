package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/shopspring/decimal"
)

// Coupon is a discount code. Exactly one of AmountInCents and Percentage is
// set on a valid coupon.
type Coupon struct {
	ID                   int
	Name                 string
	Code                 string
	Description          string
	AmountInCents        *int64
	Percentage           *decimal.Decimal
	ProductFamilyID      int
	AllowNegativeBalance bool
	Recurring            bool
	DurationPeriodCount  *int
	StartDate            time.Time
	EndDate              time.Time
	ArchivedAt           time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CouponCode keys coupon collections by code.
func CouponCode(c *Coupon) string { return c.Code }

func (c *Coupon) rootName() string { return "coupon" }

func (c *Coupon) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			c.ID = f.Int()
		case "name":
			c.Name = f.String()
		case "code":
			c.Code = f.String()
		case "description":
			c.Description = f.String()
		case "amount_in_cents":
			c.AmountInCents = f.Int64Ptr()
		case "percentage":
			c.Percentage = f.DecimalPtr()
		case "product_family_id":
			c.ProductFamilyID = f.Int()
		case "allow_negative_balance":
			c.AllowNegativeBalance = f.Bool()
		case "recurring":
			c.Recurring = f.Bool()
		case "duration_period_count":
			c.DurationPeriodCount = f.IntPtr()
		case "start_date":
			c.StartDate = f.Time()
		case "end_date":
			c.EndDate = f.Time()
		case "archived_at":
			c.ArchivedAt = f.Time()
		case "created_at":
			c.CreatedAt = f.Time()
		case "updated_at":
			c.UpdatedAt = f.Time()
		}

		return nil
	})
}

func (c *Coupon) node() *wire.Node {
	n := wire.NewNode(c.rootName())
	n.AddID("id", c.ID)
	n.AddText("name", c.Name)
	n.AddText("code", c.Code)
	n.AddText("description", c.Description)
	n.AddOptionalInt64("amount_in_cents", c.AmountInCents)
	n.AddOptionalDecimal("percentage", c.Percentage)
	n.AddID("product_family_id", c.ProductFamilyID)
	n.AddBool("allow_negative_balance", c.AllowNegativeBalance)
	n.AddBool("recurring", c.Recurring)
	n.AddOptionalInt("duration_period_count", c.DurationPeriodCount)
	n.AddTime("start_date", c.StartDate)
	n.AddTime("end_date", c.EndDate)
	n.AddTime("archived_at", c.ArchivedAt)
	n.AddTime("created_at", c.CreatedAt)
	n.AddTime("updated_at", c.UpdatedAt)

	return n
}
