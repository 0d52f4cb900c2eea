package chargify_test

import (
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

// dec builds a decimal in the canonical form the decoders produce, so the
// literal must not carry trailing zeros.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func sampleCustomer() chargify.Customer {
	return chargify.Customer{
		ID:                      42,
		FirstName:               "Ada",
		LastName:                "Lovelace",
		Email:                   "ada@example.com",
		CCEmails:                "charles@example.com",
		Organization:            "Lovelace & Babbage <Analytical>",
		Reference:               "ada-1815",
		Address:                 "12 St James's Square",
		Address2:                "Flat 2",
		City:                    "London",
		State:                   "LND",
		Zip:                     "02134",
		Country:                 "GB",
		Phone:                   "+44 20 7946 0000",
		VATNumber:               "GB123456789",
		Verified:                true,
		TaxExempt:               false,
		ParentID:                ptr(7),
		CreatedAt:               at(2024, time.January, 15, 10, 30),
		UpdatedAt:               at(2024, time.February, 1, 8, 0),
		PortalInviteLastSentAt:  at(2024, time.January, 16, 9, 0),
		PortalCustomerCreatedAt: at(2024, time.January, 16, 9, 5),
	}
}

func sampleProductFamily() chargify.ProductFamily {
	return chargify.ProductFamily{
		ID:             3,
		Name:           "Engines",
		Handle:         "engines",
		Description:    "Calculating machinery",
		AccountingCode: "ENG",
		CreatedAt:      at(2023, time.May, 1, 0, 0),
		UpdatedAt:      at(2023, time.June, 1, 0, 0),
	}
}

func sampleProduct() chargify.Product {
	return chargify.Product{
		ID:                     11,
		Name:                   "Difference Engine",
		Handle:                 "difference-engine",
		Description:            "Monthly plan",
		AccountingCode:         "DE-1",
		PriceInCents:           4999,
		Interval:               1,
		IntervalUnit:           chargify.IntervalUnitMonth,
		InitialChargeInCents:   ptr(int64(1000)),
		TrialPriceInCents:      ptr(int64(0)),
		TrialInterval:          ptr(14),
		TrialIntervalUnit:      chargify.IntervalUnitDay,
		ExpirationInterval:     nil,
		ExpirationIntervalUnit: chargify.IntervalUnitUnknown,
		ReturnURL:              "https://example.com/return?a=1&b=2",
		UpdateReturnURL:        "https://example.com/update",
		RequireCreditCard:      true,
		RequestCreditCard:      true,
		CreatedAt:              at(2023, time.May, 2, 12, 0),
		UpdatedAt:              at(2023, time.May, 3, 12, 0),
		ProductFamily:          sampleProductFamily(),
		PublicSignupPages: []chargify.PublicSignupPage{
			{ID: 101, URL: "https://acme.example.com/subscribe/abc/difference-engine", ReturnURL: "https://example.com/thanks", ReturnParams: "id={subscription_id}"},
			{ID: 102, URL: "https://acme.example.com/subscribe/def/difference-engine"},
		},
	}
}

func samplePaymentProfile() chargify.PaymentProfile {
	return chargify.PaymentProfile{
		ID:                 55,
		FirstName:          "Ada",
		LastName:           "Lovelace",
		MaskedCardNumber:   "XXXX-XXXX-XXXX-1111",
		CardType:           chargify.CardTypeVisa,
		ExpirationMonth:    12,
		ExpirationYear:     2030,
		BillingAddress:     "12 St James's Square",
		BillingCity:        "London",
		BillingZip:         "SW1Y 4JH",
		BillingCountry:     "GB",
		CustomerID:         42,
		CurrentVault:       "bogus",
		VaultToken:         "tok_1",
		CustomerVaultToken: "cus_1",
		PaymentType:        "credit_card",
	}
}

func sampleSubscription(id int) chargify.Subscription {
	return chargify.Subscription{
		ID:                      id,
		State:                   chargify.SubscriptionStateActive,
		BalanceInCents:          -1500,
		TotalRevenueInCents:     99800,
		ProductPriceInCents:     4999,
		ProductVersionNumber:    2,
		CurrentPeriodStartedAt:  at(2024, time.March, 1, 0, 0),
		CurrentPeriodEndsAt:     at(2024, time.April, 1, 0, 0),
		NextAssessmentAt:        at(2024, time.April, 1, 0, 0),
		ActivatedAt:             at(2024, time.January, 15, 10, 30),
		CreatedAt:               at(2024, time.January, 15, 10, 30),
		UpdatedAt:               at(2024, time.March, 1, 0, 5),
		CancellationMessage:     "",
		CancelAtEndOfPeriod:     false,
		CouponCode:              "ANALYTICAL",
		SignupPaymentID:         9001,
		SignupRevenue:           dec("49.99"),
		PaymentCollectionMethod: chargify.PaymentCollectionAutomatic,
		NextProductID:           ptr(12),
		Reference:               "sub-ref",
		Customer:                sampleCustomer(),
		Product:                 sampleProduct(),
		PaymentProfile:          samplePaymentProfile(),
	}
}

func sampleTransaction(id int) chargify.Transaction {
	return chargify.Transaction{
		ID:                     id,
		TransactionType:        chargify.TransactionTypeCharge,
		Kind:                   "baseline",
		AmountInCents:          4999,
		StartingBalanceInCents: 0,
		EndingBalanceInCents:   4999,
		Memo:                   "Difference Engine (03/01/2024 - 04/01/2024)",
		SubscriptionID:         1,
		CustomerID:             42,
		ProductID:              11,
		StatementID:            ptr(700),
		Success:                true,
		GatewayTransactionID:   "gw-123",
		CreatedAt:              at(2024, time.March, 1, 0, 1),
	}
}

func sampleStatement() chargify.Statement {
	return chargify.Statement{
		ID:                     700,
		SubscriptionID:         1,
		OpenedAt:               at(2024, time.March, 1, 0, 0),
		ClosedAt:               at(2024, time.April, 1, 0, 0),
		SettledAt:              at(2024, time.April, 1, 0, 2),
		TextView:               "Statement\nTotal: $49.99",
		BasicHTMLView:          "<p>Total: $49.99</p>",
		HTMLView:               "<html><body><p>Total &amp; due</p></body></html>",
		StartingBalanceInCents: 0,
		EndingBalanceInCents:   0,
		TotalInCents:           4999,
		CustomerFirstName:      "Ada",
		CustomerLastName:       "Lovelace",
		CustomerOrganization:   "Lovelace & Babbage",
		CreatedAt:              at(2024, time.March, 1, 0, 0),
		UpdatedAt:              at(2024, time.April, 1, 0, 2),
		FuturePayments: []chargify.Payment{
			{LedgerEntry: chargify.LedgerEntry{ID: 81, AmountInCents: 4999, Memo: "April", Success: true, SubscriptionID: 1}},
		},
		Transactions: []chargify.Transaction{sampleTransaction(1001), sampleTransaction(1002)},
	}
}

func sampleComponent() chargify.Component {
	return chargify.Component{
		ID:                  21,
		Name:                "Punch cards",
		Handle:              "punch-cards",
		Kind:                chargify.ComponentKindQuantityBased,
		UnitName:            "card",
		UnitPrice:           dec("0.25"),
		PricingScheme:       chargify.PricingSchemeTiered,
		ProductFamilyID:     3,
		PricePerUnitInCents: ptr(int64(25)),
		Description:         "Cards for the mill",
		Archived:            false,
		Prices: []chargify.Price{
			{StartingQuantity: 1, EndingQuantity: ptr(100), UnitPrice: dec("0.25")},
			{StartingQuantity: 101, UnitPrice: dec("0.2")},
		},
	}
}

func sampleCoupon() chargify.Coupon {
	return chargify.Coupon{
		ID:                   31,
		Name:                 "Analytical discount",
		Code:                 "ANALYTICAL",
		Description:          "12.5% off",
		Percentage:           ptr(dec("12.5")),
		ProductFamilyID:      3,
		AllowNegativeBalance: false,
		Recurring:            true,
		DurationPeriodCount:  ptr(3),
		StartDate:            at(2024, time.January, 1, 0, 0),
		EndDate:              at(2024, time.December, 31, 0, 0),
		CreatedAt:            at(2023, time.December, 1, 0, 0),
		UpdatedAt:            at(2023, time.December, 2, 0, 0),
	}
}

func sampleLedgerEntry(id int) chargify.LedgerEntry {
	return chargify.LedgerEntry{
		ID:                   id,
		AmountInCents:        -1050,
		EndingBalanceInCents: 3949,
		Memo:                 "Goodwill",
		Success:              true,
		SubscriptionID:       1,
		CreatedAt:            at(2024, time.March, 5, 14, 0),
	}
}
