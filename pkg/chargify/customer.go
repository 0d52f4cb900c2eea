package chargify

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// Customer is a billable person or organization.
type Customer struct {
	ID                      int
	FirstName               string
	LastName                string
	Email                   string
	CCEmails                string
	Organization            string
	Reference               string
	Address                 string
	Address2                string
	City                    string
	State                   string
	Zip                     string
	Country                 string
	Phone                   string
	VATNumber               string
	Verified                bool
	TaxExempt               bool
	ParentID                *int
	CreatedAt               time.Time
	UpdatedAt               time.Time
	PortalInviteLastSentAt  time.Time
	PortalCustomerCreatedAt time.Time
}

// CustomerID keys customer collections by ID.
func CustomerID(c *Customer) int { return c.ID }

// CustomerReference keys customer collections by the caller's reference.
func CustomerReference(c *Customer) string { return c.Reference }

func (c *Customer) rootName() string { return "customer" }

func (c *Customer) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			c.ID = f.Int()
		case "first_name":
			c.FirstName = f.String()
		case "last_name":
			c.LastName = f.String()
		case "email":
			c.Email = f.String()
		case "cc_emails":
			c.CCEmails = f.String()
		case "organization":
			c.Organization = f.String()
		case "reference":
			c.Reference = f.String()
		case "address":
			c.Address = f.String()
		case "address_2":
			c.Address2 = f.String()
		case "city":
			c.City = f.String()
		case "state":
			c.State = f.String()
		case "zip":
			c.Zip = f.String()
		case "country":
			c.Country = f.String()
		case "phone":
			c.Phone = f.String()
		case "vat_number":
			c.VATNumber = f.String()
		case "verified":
			c.Verified = f.Bool()
		case "tax_exempt":
			c.TaxExempt = f.Bool()
		case "parent_id":
			c.ParentID = f.IntPtr()
		case "created_at":
			c.CreatedAt = f.Time()
		case "updated_at":
			c.UpdatedAt = f.Time()
		case "portal_invite_last_sent_at":
			c.PortalInviteLastSentAt = f.Time()
		case "portal_customer_created_at":
			c.PortalCustomerCreatedAt = f.Time()
		}

		return nil
	})
}

func (c *Customer) node() *wire.Node {
	n := wire.NewNode(c.rootName())
	n.AddID("id", c.ID)
	n.AddText("first_name", c.FirstName)
	n.AddText("last_name", c.LastName)
	n.AddText("email", c.Email)
	n.AddText("cc_emails", c.CCEmails)
	n.AddText("organization", c.Organization)
	n.AddText("reference", c.Reference)
	n.AddText("address", c.Address)
	n.AddText("address_2", c.Address2)
	n.AddText("city", c.City)
	n.AddText("state", c.State)
	n.AddText("zip", c.Zip)
	n.AddText("country", c.Country)
	n.AddText("phone", c.Phone)
	n.AddText("vat_number", c.VATNumber)
	n.AddBool("verified", c.Verified)
	n.AddBool("tax_exempt", c.TaxExempt)
	n.AddOptionalInt("parent_id", c.ParentID)
	n.AddTime("created_at", c.CreatedAt)
	n.AddTime("updated_at", c.UpdatedAt)
	n.AddTime("portal_invite_last_sent_at", c.PortalInviteLastSentAt)
	n.AddTime("portal_customer_created_at", c.PortalCustomerCreatedAt)

	return n
}
