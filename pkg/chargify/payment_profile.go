package chargify

import "github.com/fivetwenty-io/chargify-client/pkg/wire"

// PaymentProfile is a stored card or bank account. Inside a subscription it
// arrives as credit_card, bank_account or payment_profile.
type PaymentProfile struct {
	ID                 int
	FirstName          string
	LastName           string
	MaskedCardNumber   string
	CardType           CardType
	ExpirationMonth    int
	ExpirationYear     int
	BillingAddress     string
	BillingAddress2    string
	BillingCity        string
	BillingState       string
	BillingZip         string
	BillingCountry     string
	CustomerID         int
	CurrentVault       string
	VaultToken         string
	CustomerVaultToken string
	PaymentType        string
}

func (p *PaymentProfile) rootName() string { return "payment_profile" }

func (p *PaymentProfile) decodeValue(v wire.Value) error {
	return v.Each(func(name string, f wire.Value) error {
		switch name {
		case "id":
			p.ID = f.Int()
		case "first_name":
			p.FirstName = f.String()
		case "last_name":
			p.LastName = f.String()
		case "masked_card_number":
			p.MaskedCardNumber = f.String()
		case "card_type":
			p.CardType = ParseCardType(f.String())
		case "expiration_month":
			p.ExpirationMonth = f.Int()
		case "expiration_year":
			p.ExpirationYear = f.Int()
		case "billing_address":
			p.BillingAddress = f.String()
		case "billing_address_2":
			p.BillingAddress2 = f.String()
		case "billing_city":
			p.BillingCity = f.String()
		case "billing_state":
			p.BillingState = f.String()
		case "billing_zip":
			p.BillingZip = f.String()
		case "billing_country":
			p.BillingCountry = f.String()
		case "customer_id":
			p.CustomerID = f.Int()
		case "current_vault":
			p.CurrentVault = f.String()
		case "vault_token":
			p.VaultToken = f.String()
		case "customer_vault_token":
			p.CustomerVaultToken = f.String()
		case "payment_type":
			p.PaymentType = f.String()
		}

		return nil
	})
}

func (p *PaymentProfile) node() *wire.Node {
	return p.encode(p.rootName())
}

func (p *PaymentProfile) encode(name string) *wire.Node {
	n := wire.NewNode(name)
	n.AddID("id", p.ID)
	n.AddText("first_name", p.FirstName)
	n.AddText("last_name", p.LastName)
	n.AddText("masked_card_number", p.MaskedCardNumber)
	n.AddText("card_type", string(p.CardType))
	n.AddInt("expiration_month", p.ExpirationMonth)
	n.AddInt("expiration_year", p.ExpirationYear)
	n.AddText("billing_address", p.BillingAddress)
	n.AddText("billing_address_2", p.BillingAddress2)
	n.AddText("billing_city", p.BillingCity)
	n.AddText("billing_state", p.BillingState)
	n.AddText("billing_zip", p.BillingZip)
	n.AddText("billing_country", p.BillingCountry)
	n.AddID("customer_id", p.CustomerID)
	n.AddText("current_vault", p.CurrentVault)
	n.AddText("vault_token", p.VaultToken)
	n.AddText("customer_vault_token", p.CustomerVaultToken)
	n.AddText("payment_type", p.PaymentType)

	return n
}
