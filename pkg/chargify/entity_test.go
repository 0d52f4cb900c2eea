package chargify_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formats = []wire.Format{wire.FormatXML, wire.FormatJSON}

func assertRoundTrip[T any, PT chargify.EntityPtr[T]](t *testing.T, in T) {
	t.Helper()

	for _, format := range formats {
		body, err := chargify.Encode(PT(&in), format)
		require.NoError(t, err)
		assert.Equal(t, format, wire.Detect(body))

		out, err := chargify.Parse[T, PT](body)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, in, *out, "format %s: %s", format, body)
	}
}

func TestRoundTrip_Populated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"customer", func(t *testing.T) { assertRoundTrip(t, sampleCustomer()) }},
		{"product family", func(t *testing.T) { assertRoundTrip(t, sampleProductFamily()) }},
		{"product", func(t *testing.T) { assertRoundTrip(t, sampleProduct()) }},
		{"public signup page", func(t *testing.T) { assertRoundTrip(t, sampleProduct().PublicSignupPages[0]) }},
		{"payment profile", func(t *testing.T) { assertRoundTrip(t, samplePaymentProfile()) }},
		{"subscription", func(t *testing.T) { assertRoundTrip(t, sampleSubscription(1)) }},
		{"component", func(t *testing.T) { assertRoundTrip(t, sampleComponent()) }},
		{"price", func(t *testing.T) { assertRoundTrip(t, sampleComponent().Prices[0]) }},
		{"transaction", func(t *testing.T) { assertRoundTrip(t, sampleTransaction(1001)) }},
		{"statement", func(t *testing.T) { assertRoundTrip(t, sampleStatement()) }},
		{"coupon", func(t *testing.T) { assertRoundTrip(t, sampleCoupon()) }},
		{"charge", func(t *testing.T) {
			assertRoundTrip(t, chargify.Charge{LedgerEntry: sampleLedgerEntry(1), Kind: "one_time", ProductID: 11, PaymentID: ptr(81)})
		}},
		{"credit", func(t *testing.T) { assertRoundTrip(t, chargify.Credit{LedgerEntry: sampleLedgerEntry(2)}) }},
		{"adjustment", func(t *testing.T) { assertRoundTrip(t, chargify.Adjustment{LedgerEntry: sampleLedgerEntry(3)}) }},
		{"payment", func(t *testing.T) { assertRoundTrip(t, chargify.Payment{LedgerEntry: sampleLedgerEntry(4)}) }},
		{"refund", func(t *testing.T) { assertRoundTrip(t, chargify.Refund{LedgerEntry: sampleLedgerEntry(5), PaymentID: 81}) }},
		{"subscription component", func(t *testing.T) {
			assertRoundTrip(t, chargify.SubscriptionComponent{
				ComponentID: 21, SubscriptionID: 1, Name: "Punch cards", Kind: chargify.ComponentKindQuantityBased,
				UnitName: "card", UnitBalance: 40, AllocatedQuantity: 40, PricingScheme: chargify.PricingSchemePerUnit, Enabled: true,
			})
		}},
		{"allocation", func(t *testing.T) {
			assertRoundTrip(t, chargify.Allocation{
				ComponentID: 21, SubscriptionID: 1, Quantity: 40, PreviousQuantity: 25, Memo: "More cards",
				Timestamp:                at(2024, 3, 2, 9, 0),
				ProrationUpgradeScheme:   chargify.ProrationUpgradeProrateDelayCapture,
				ProrationDowngradeScheme: chargify.ProrationDowngradeNoProrate,
			})
		}},
		{"usage", func(t *testing.T) { assertRoundTrip(t, chargify.Usage{ID: 61, Memo: "Mill run", Quantity: -3}) }},
		{"migration preview", func(t *testing.T) {
			assertRoundTrip(t, chargify.MigrationPreview{
				ProratedAdjustmentInCents: -2500, ChargeInCents: 4999, PaymentDueInCents: 2499, CreditAppliedInCents: 0,
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.run(t)
		})
	}
}

func TestRoundTrip_Minimal(t *testing.T) {
	t.Parallel()

	assertRoundTrip(t, chargify.Customer{})
	assertRoundTrip(t, chargify.ProductFamily{})
	assertRoundTrip(t, chargify.Product{})
	assertRoundTrip(t, chargify.PaymentProfile{})
	assertRoundTrip(t, chargify.Subscription{})
	assertRoundTrip(t, chargify.Component{})
	assertRoundTrip(t, chargify.SubscriptionComponent{})
	assertRoundTrip(t, chargify.Transaction{})
	assertRoundTrip(t, chargify.Statement{})
	assertRoundTrip(t, chargify.Coupon{})
	assertRoundTrip(t, chargify.Charge{})
	assertRoundTrip(t, chargify.Refund{})
	assertRoundTrip(t, chargify.Allocation{})
	assertRoundTrip(t, chargify.Usage{})
	assertRoundTrip(t, chargify.MigrationPreview{})
}

func TestRoundTrip_EmptyListItems(t *testing.T) {
	t.Parallel()

	assertRoundTrip(t, chargify.Product{ID: 1, Handle: "h", PublicSignupPages: []chargify.PublicSignupPage{{}}})
	assertRoundTrip(t, chargify.Statement{ID: 3, Transactions: []chargify.Transaction{{}}})
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	c := sampleCustomer()
	c.Phone = ""
	c.ParentID = nil
	c.PortalCustomerCreatedAt = time.Time{}

	body, err := chargify.Encode(&c, wire.FormatXML)
	require.NoError(t, err)

	doc, err := wire.ParseXML(body)
	require.NoError(t, err)

	assert.Nil(t, doc.Child("phone"))
	assert.Nil(t, doc.Child("parent_id"))
	assert.Nil(t, doc.Child("portal_customer_created_at"))
	assert.NotNil(t, doc.Child("first_name"))
	assert.NotNil(t, doc.Child("tax_exempt"), "plain booleans are always sent")

	sub := chargify.Subscription{ID: 5, Customer: chargify.Customer{FirstName: "No ID"}}

	body, err = chargify.Encode(&sub, wire.FormatXML)
	require.NoError(t, err)

	doc, err = wire.ParseXML(body)
	require.NoError(t, err)

	assert.Nil(t, doc.Child("customer"), "nested entities without an ID are omitted")
	assert.Nil(t, doc.Child("state"), "Unknown enums are omitted")
	assert.Nil(t, doc.Child("credit_card"))
}

func TestEncode_JSONTypes(t *testing.T) {
	t.Parallel()

	body, err := chargify.Encode(&chargify.Usage{ID: 61, Memo: "Mill & run", Quantity: 3}, wire.FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"usage":{"id":61,"memo":"Mill & run","quantity":3}}`, string(body))

	_, err = chargify.Encode(&chargify.Usage{}, wire.FormatUnrecognized)
	require.ErrorIs(t, err, wire.ErrUnknownFormat)
}

func TestDecode_FormatEquivalence(t *testing.T) {
	t.Parallel()

	xmlBody := `<?xml version="1.0" encoding="UTF-8"?>
<subscription>
  <id type="integer">1</id>
  <state>past_due</state>
  <balance_in_cents type="integer">-1500</balance_in_cents>
  <signup_revenue type="decimal">49.99</signup_revenue>
  <next_product_id type="integer" nil="true"></next_product_id>
  <cancel_at_end_of_period type="boolean">true</cancel_at_end_of_period>
  <created_at type="datetime">2024-01-15T05:30:00-05:00</created_at>
  <customer>
    <id type="integer">42</id>
    <first_name>Ada</first_name>
    <organization nil="true"></organization>
  </customer>
  <product>
    <id type="integer">11</id>
    <handle>difference-engine</handle>
    <product_family>
      <id type="integer">3</id>
    </product_family>
  </product>
  <credit_card>
    <id type="integer">55</id>
    <card_type>visa</card_type>
  </credit_card>
</subscription>
`

	jsonBody := `{"subscription":{
  "id": 1,
  "state": "past_due",
  "balance_in_cents": "-1500",
  "signup_revenue": "49.99",
  "next_product_id": null,
  "cancel_at_end_of_period": true,
  "created_at": "2024-01-15T10:30:00Z",
  "customer": {"id": 42, "first_name": "Ada", "organization": null},
  "product": {"id": 11, "handle": "difference-engine", "product_family": {"id": 3}},
  "bank_account": {"id": 55, "card_type": "VISA"},
  "unknown_field": {"ignored": true}
}}`

	fromXML, err := chargify.Decode[chargify.Subscription]([]byte(xmlBody), "subscription")
	require.NoError(t, err)

	fromJSON, err := chargify.Decode[chargify.Subscription]([]byte(jsonBody), "subscription")
	require.NoError(t, err)

	assert.Equal(t, fromXML, fromJSON)
	assert.Equal(t, chargify.SubscriptionStatePastDue, fromXML.State)
	assert.Equal(t, int64(-1500), fromXML.BalanceInCents)
	assert.True(t, dec("49.99").Equal(fromXML.SignupRevenue))
	assert.Nil(t, fromXML.NextProductID)
	assert.Equal(t, at(2024, 1, 15, 10, 30), fromXML.CreatedAt)
	assert.Equal(t, "Ada", fromXML.Customer.FirstName)
	assert.Equal(t, 3, fromXML.Product.ProductFamily.ID)
	assert.Equal(t, chargify.CardTypeVisa, fromXML.PaymentProfile.CardType)
}

func TestDecode_EnumTolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected chargify.SubscriptionState
	}{
		{raw: "active", expected: chargify.SubscriptionStateActive},
		{raw: "PAST-DUE", expected: chargify.SubscriptionStatePastDue},
		{raw: "Trial Ended", expected: chargify.SubscriptionStateTrialEnded},
		{raw: "brand_new_state", expected: chargify.SubscriptionStateUnknown},
		{raw: "", expected: chargify.SubscriptionStateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			sub, err := chargify.Decode[chargify.Subscription]([]byte(`<subscription><state>`+tt.raw+`</state></subscription>`), "subscription")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sub.State)
		})
	}

	alloc, err := chargify.Parse[chargify.Allocation]([]byte(`{"allocation":{"proration_upgrade_scheme":"prorate_delay_capture","proration_downgrade_scheme":"no_prorate"}}`))
	require.NoError(t, err)
	assert.Equal(t, chargify.ProrationUpgradeProrateDelayCapture, alloc.ProrationUpgradeScheme)
	assert.Equal(t, chargify.ProrationDowngradeNoProrate, alloc.ProrationDowngradeScheme)
}

func TestDecode_UnwrapVersusBare(t *testing.T) {
	t.Parallel()

	wrapped, err := chargify.Decode[chargify.Customer]([]byte(`{"customer":{"id":42,"first_name":"Ada"}}`), "customer")
	require.NoError(t, err)

	bare, err := chargify.Decode[chargify.Customer]([]byte(`{"id":42,"first_name":"Ada"}`), "customer")
	require.NoError(t, err)

	assert.Equal(t, wrapped, bare)
	assert.Equal(t, 42, bare.ID)

	// A single key that is not the root key is decoded as the object itself.
	other, err := chargify.Decode[chargify.Customer]([]byte(`{"id":42}`), "subscription")
	require.NoError(t, err)
	assert.Equal(t, 42, other.ID)

	// Extra keys next to the root key disable unwrapping.
	mixed, err := chargify.Decode[chargify.Customer]([]byte(`{"customer":{"id":42},"meta":{}}`), "customer")
	require.NoError(t, err)
	assert.Equal(t, chargify.Customer{}, *mixed)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "xml without root element", body: `<subscription><id>1</id></subscription>`, wantErr: chargify.ErrMalformedResponse},
		{name: "json array", body: `[{"customer":{"id":1}}]`, wantErr: chargify.ErrMalformedResponse},
		{name: "json scalar", body: `"customer"`, wantErr: chargify.ErrMalformedResponse},
		{name: "html error page", body: `<html><body>Bad Gateway`, wantErr: chargify.ErrUnsupportedResponseFormat},
		{name: "empty body", body: ``, wantErr: chargify.ErrUnsupportedResponseFormat},
		{name: "text before markup", body: `not xml at all <customer><id>7</id></customer>`, wantErr: chargify.ErrUnsupportedResponseFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := chargify.Decode[chargify.Customer]([]byte(tt.body), "customer")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_EntryPointsAgree(t *testing.T) {
	t.Parallel()

	in := sampleCustomer()

	xmlBody, err := chargify.Encode(&in, wire.FormatXML)
	require.NoError(t, err)

	jsonBody, err := chargify.Encode(&in, wire.FormatJSON)
	require.NoError(t, err)

	node, err := wire.ParseXML(xmlBody)
	require.NoError(t, err)

	raw, err := wire.ParseJSON(jsonBody)
	require.NoError(t, err)

	obj, ok := raw.(map[string]any)
	require.True(t, ok)

	fromRaw, err := chargify.Parse[chargify.Customer](xmlBody)
	require.NoError(t, err)

	fromNode, err := chargify.FromXML[chargify.Customer](node)
	require.NoError(t, err)

	fromObj, err := chargify.FromJSON[chargify.Customer](obj)
	require.NoError(t, err)

	fromBareObj, err := chargify.FromJSON[chargify.Customer](obj["customer"].(map[string]any))
	require.NoError(t, err)

	assert.Equal(t, in, *fromRaw)
	assert.Equal(t, in, *fromNode)
	assert.Equal(t, in, *fromObj)
	assert.Equal(t, in, *fromBareObj)
}

func TestDecode_EntryPointArgumentErrors(t *testing.T) {
	t.Parallel()

	_, err := chargify.FromXML[chargify.Customer](nil)
	require.ErrorIs(t, err, chargify.ErrInvalidArgument)

	_, err = chargify.FromJSON[chargify.Customer](nil)
	require.ErrorIs(t, err, chargify.ErrInvalidArgument)

	_, err = chargify.FromXML[chargify.Customer](wire.NewNode("subscription"))
	require.ErrorIs(t, err, chargify.ErrMalformedResponse)
}

func TestDecode_NestedCountMismatch(t *testing.T) {
	t.Parallel()

	xmlBody := `<statement><id type="integer">700</id><transactions type="array"><transaction><id type="integer">1</id></transaction><payment><id type="integer">2</id></payment></transactions></statement>`

	_, err := chargify.Parse[chargify.Statement]([]byte(xmlBody))
	require.ErrorIs(t, err, chargify.ErrDecodeCountMismatch)

	jsonBody := `{"statement":{"id":700,"transactions":[{"transaction":{"id":1}},"oops"]}}`

	_, err = chargify.Parse[chargify.Statement]([]byte(jsonBody))
	require.ErrorIs(t, err, chargify.ErrDecodeCountMismatch)

	ok := `{"statement":{"id":700,"transactions":[{"transaction":{"id":1}},{"id":2}]}}`

	stmt, err := chargify.Parse[chargify.Statement]([]byte(ok))
	require.NoError(t, err)
	require.Len(t, stmt.Transactions, 2)
	assert.Equal(t, 2, stmt.Transactions[1].ID)
}

func TestDecode_CustomerScenario(t *testing.T) {
	t.Parallel()

	body := `{"customer":{"id":42,"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","phone":null,"created_at":"2024-01-15T10:30:00Z"}}`

	c, err := chargify.Parse[chargify.Customer]([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, 42, c.ID)
	assert.Equal(t, "Ada", c.FirstName)
	assert.Equal(t, "Lovelace", c.LastName)
	assert.Empty(t, c.Phone)
	assert.Nil(t, c.ParentID)
	assert.True(t, c.UpdatedAt.IsZero())
}

func TestNaturalKeyEquality(t *testing.T) {
	t.Parallel()

	a := sampleProduct()
	b := sampleProduct()
	b.ID = 999
	b.Name = "Renamed"
	assert.True(t, a.Equal(b))

	b.Handle = "analytical-engine"
	assert.False(t, a.Equal(b))

	s1 := sampleSubscription(1)
	s2 := chargify.Subscription{ID: 1}
	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.Equal(sampleSubscription(2)))
}
