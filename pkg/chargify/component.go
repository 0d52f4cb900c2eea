package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/shopspring/decimal"
)

// Price is one bracket of a tiered, volume or stairstep component price.
type Price struct {
	StartingQuantity int
	EndingQuantity   *int
	UnitPrice        decimal.Decimal
}

func (p *Price) rootName() string { return "price" }

func (p *Price) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "starting_quantity":
			p.StartingQuantity = f.Int()
		case "ending_quantity":
			p.EndingQuantity = f.IntPtr()
		case "unit_price":
			p.UnitPrice = f.Decimal()
		}

		return nil
	})
}

func (p *Price) node() *wire.Node {
	n := wire.NewNode(p.rootName())
	n.AddInt("starting_quantity", p.StartingQuantity)
	n.AddOptionalInt("ending_quantity", p.EndingQuantity)
	n.AddDecimal("unit_price", p.UnitPrice)

	return n
}

// Component is an add-on defined in a product family.
type Component struct {
	ID                  int
	Name                string
	Handle              string
	Kind                ComponentKind
	UnitName            string
	UnitPrice           decimal.Decimal
	PricingScheme       PricingScheme
	ProductFamilyID     int
	PricePerUnitInCents *int64
	Description         string
	Archived            bool
	Prices              []Price
}

// ComponentID keys component collections by ID.
func ComponentID(c *Component) int { return c.ID }

func (c *Component) rootName() string { return "component" }

func (c *Component) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			c.ID = f.Int()
		case "name":
			c.Name = f.String()
		case "handle":
			c.Handle = f.String()
		case "kind":
			c.Kind = ParseComponentKind(f.String())
		case "unit_name":
			c.UnitName = f.String()
		case "unit_price":
			c.UnitPrice = f.Decimal()
		case "pricing_scheme":
			c.PricingScheme = ParsePricingScheme(f.String())
		case "product_family_id":
			c.ProductFamilyID = f.Int()
		case "price_per_unit_in_cents":
			c.PricePerUnitInCents = f.Int64Ptr()
		case "description":
			c.Description = f.String()
		case "archived":
			c.Archived = f.Bool()
		case "prices":
			prices, err := decodeNested[Price](f, "price")
			if err != nil {
				return err
			}

			c.Prices = prices
		}

		return nil
	})
}

func (c *Component) node() *wire.Node {
	n := wire.NewNode(c.rootName())
	n.AddID("id", c.ID)
	n.AddText("name", c.Name)
	n.AddText("handle", c.Handle)
	n.AddText("kind", string(c.Kind))
	n.AddText("unit_name", c.UnitName)
	n.AddDecimal("unit_price", c.UnitPrice)
	n.AddText("pricing_scheme", string(c.PricingScheme))
	n.AddID("product_family_id", c.ProductFamilyID)
	n.AddOptionalInt64("price_per_unit_in_cents", c.PricePerUnitInCents)
	n.AddText("description", c.Description)
	n.AddBool("archived", c.Archived)
	encodeNested(n, "prices", c.Prices)

	return n
}

// SubscriptionComponent is a component as attached to one subscription.
type SubscriptionComponent struct {
	ComponentID       int
	SubscriptionID    int
	Name              string
	Kind              ComponentKind
	UnitName          string
	UnitBalance       int
	AllocatedQuantity int
	PricingScheme     PricingScheme
	Enabled           bool
}

// SubscriptionComponentID keys subscription components by component ID.
func SubscriptionComponentID(c *SubscriptionComponent) int { return c.ComponentID }

func (c *SubscriptionComponent) rootName() string { return "component" }

func (c *SubscriptionComponent) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "component_id":
			c.ComponentID = f.Int()
		case "subscription_id":
			c.SubscriptionID = f.Int()
		case "name":
			c.Name = f.String()
		case "kind":
			c.Kind = ParseComponentKind(f.String())
		case "unit_name":
			c.UnitName = f.String()
		case "unit_balance":
			c.UnitBalance = f.Int()
		case "allocated_quantity":
			c.AllocatedQuantity = f.Int()
		case "pricing_scheme":
			c.PricingScheme = ParsePricingScheme(f.String())
		case "enabled":
			c.Enabled = f.Bool()
		}

		return nil
	})
}

func (c *SubscriptionComponent) node() *wire.Node {
	n := wire.NewNode(c.rootName())
	n.AddID("component_id", c.ComponentID)
	n.AddID("subscription_id", c.SubscriptionID)
	n.AddText("name", c.Name)
	n.AddText("kind", string(c.Kind))
	n.AddText("unit_name", c.UnitName)
	n.AddInt("unit_balance", c.UnitBalance)
	n.AddInt("allocated_quantity", c.AllocatedQuantity)
	n.AddText("pricing_scheme", string(c.PricingScheme))
	n.AddBool("enabled", c.Enabled)

	return n
}

// Allocation records a quantity change of a quantity-based component.
type Allocation struct {
	ComponentID              int
	SubscriptionID           int
	Quantity                 int
	PreviousQuantity         int
	Memo                     string
	Timestamp                time.Time
	ProrationUpgradeScheme   ProrationUpgradeScheme
	ProrationDowngradeScheme ProrationDowngradeScheme
}

func (a *Allocation) rootName() string { return "allocation" }

func (a *Allocation) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "component_id":
			a.ComponentID = f.Int()
		case "subscription_id":
			a.SubscriptionID = f.Int()
		case "quantity":
			a.Quantity = f.Int()
		case "previous_quantity":
			a.PreviousQuantity = f.Int()
		case "memo":
			a.Memo = f.String()
		case "timestamp":
			a.Timestamp = f.Time()
		case "proration_upgrade_scheme":
			a.ProrationUpgradeScheme = ParseProrationUpgradeScheme(f.String())
		case "proration_downgrade_scheme":
			a.ProrationDowngradeScheme = ParseProrationDowngradeScheme(f.String())
		}

		return nil
	})
}

func (a *Allocation) node() *wire.Node {
	n := wire.NewNode(a.rootName())
	n.AddID("component_id", a.ComponentID)
	n.AddID("subscription_id", a.SubscriptionID)
	n.AddInt("quantity", a.Quantity)
	n.AddInt("previous_quantity", a.PreviousQuantity)
	n.AddText("memo", a.Memo)
	n.AddTime("timestamp", a.Timestamp)
	n.AddText("proration_upgrade_scheme", string(a.ProrationUpgradeScheme))
	n.AddText("proration_downgrade_scheme", string(a.ProrationDowngradeScheme))

	return n
}

// Usage records consumption of a metered component.
type Usage struct {
	ID       int
	Memo     string
	Quantity int
}

func (u *Usage) rootName() string { return "usage" }

func (u *Usage) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			u.ID = f.Int()
		case "memo":
			u.Memo = f.String()
		case "quantity":
			u.Quantity = f.Int()
		}

		return nil
	})
}

func (u *Usage) node() *wire.Node {
	n := wire.NewNode(u.rootName())
	n.AddID("id", u.ID)
	n.AddText("memo", u.Memo)
	n.AddInt("quantity", u.Quantity)

	return n
}
