package chargify

import "github.com/fivetwenty-io/chargify-client/pkg/wire"

// Every enumeration below uses its zero value as Unknown. Unrecognised or
// absent remote values decode to Unknown, and Unknown is never sent.

// SubscriptionState is the lifecycle state of a subscription.
type SubscriptionState string

const (
	SubscriptionStateUnknown        SubscriptionState = ""
	SubscriptionStateTrialing       SubscriptionState = "trialing"
	SubscriptionStateTrialEnded     SubscriptionState = "trial_ended"
	SubscriptionStateAssessing      SubscriptionState = "assessing"
	SubscriptionStateActive         SubscriptionState = "active"
	SubscriptionStateSoftFailure    SubscriptionState = "soft_failure"
	SubscriptionStatePastDue        SubscriptionState = "past_due"
	SubscriptionStateSuspended      SubscriptionState = "suspended"
	SubscriptionStateCanceled       SubscriptionState = "canceled"
	SubscriptionStateExpired        SubscriptionState = "expired"
	SubscriptionStateUnpaid         SubscriptionState = "unpaid"
	SubscriptionStateAwaitingSignup SubscriptionState = "awaiting_signup"
	SubscriptionStateOnHold         SubscriptionState = "on_hold"
	SubscriptionStatePaused         SubscriptionState = "paused"
	SubscriptionStatePending        SubscriptionState = "pending"
)

// ParseSubscriptionState decodes a subscription state.
func ParseSubscriptionState(s string) SubscriptionState {
	return wire.ParseEnum(s,
		SubscriptionStateTrialing, SubscriptionStateTrialEnded, SubscriptionStateAssessing,
		SubscriptionStateActive, SubscriptionStateSoftFailure, SubscriptionStatePastDue,
		SubscriptionStateSuspended, SubscriptionStateCanceled, SubscriptionStateExpired,
		SubscriptionStateUnpaid, SubscriptionStateAwaitingSignup, SubscriptionStateOnHold,
		SubscriptionStatePaused, SubscriptionStatePending,
	)
}

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionTypeUnknown              TransactionType = ""
	TransactionTypeCharge               TransactionType = "charge"
	TransactionTypePayment              TransactionType = "payment"
	TransactionTypeCredit               TransactionType = "credit"
	TransactionTypeRefund               TransactionType = "refund"
	TransactionTypeAdjustment           TransactionType = "adjustment"
	TransactionTypeInfo                 TransactionType = "info"
	TransactionTypePaymentAuthorization TransactionType = "payment_authorization"
)

// ParseTransactionType decodes a transaction type.
func ParseTransactionType(s string) TransactionType {
	return wire.ParseEnum(s,
		TransactionTypeCharge, TransactionTypePayment, TransactionTypeCredit,
		TransactionTypeRefund, TransactionTypeAdjustment, TransactionTypeInfo,
		TransactionTypePaymentAuthorization,
	)
}

// IntervalUnit is the unit of a billing or trial interval.
type IntervalUnit string

const (
	IntervalUnitUnknown IntervalUnit = ""
	IntervalUnitDay     IntervalUnit = "day"
	IntervalUnitMonth   IntervalUnit = "month"
)

// ParseIntervalUnit decodes an interval unit.
func ParseIntervalUnit(s string) IntervalUnit {
	return wire.ParseEnum(s, IntervalUnitDay, IntervalUnitMonth)
}

// PaymentCollectionMethod controls how a subscription is charged.
type PaymentCollectionMethod string

const (
	PaymentCollectionUnknown    PaymentCollectionMethod = ""
	PaymentCollectionAutomatic  PaymentCollectionMethod = "automatic"
	PaymentCollectionInvoice    PaymentCollectionMethod = "invoice"
	PaymentCollectionRemittance PaymentCollectionMethod = "remittance"
	PaymentCollectionPrepaid    PaymentCollectionMethod = "prepaid"
)

// ParsePaymentCollectionMethod decodes a payment collection method.
func ParsePaymentCollectionMethod(s string) PaymentCollectionMethod {
	return wire.ParseEnum(s,
		PaymentCollectionAutomatic, PaymentCollectionInvoice,
		PaymentCollectionRemittance, PaymentCollectionPrepaid,
	)
}

// CardType is the brand of a stored card.
type CardType string

const (
	CardTypeUnknown         CardType = ""
	CardTypeVisa            CardType = "visa"
	CardTypeMaster          CardType = "master"
	CardTypeAmericanExpress CardType = "american_express"
	CardTypeDiscover        CardType = "discover"
	CardTypeDinersClub      CardType = "diners_club"
	CardTypeJCB             CardType = "jcb"
	CardTypeMaestro         CardType = "maestro"
	CardTypeDankort         CardType = "dankort"
	CardTypeLaser           CardType = "laser"
	CardTypeSolo            CardType = "solo"
	CardTypeSwitch          CardType = "switch"
	CardTypeBogus           CardType = "bogus"
)

// ParseCardType decodes a card type.
func ParseCardType(s string) CardType {
	return wire.ParseEnum(s,
		CardTypeVisa, CardTypeMaster, CardTypeAmericanExpress, CardTypeDiscover,
		CardTypeDinersClub, CardTypeJCB, CardTypeMaestro, CardTypeDankort,
		CardTypeLaser, CardTypeSolo, CardTypeSwitch, CardTypeBogus,
	)
}

// ComponentKind is the billing model of a component.
type ComponentKind string

const (
	ComponentKindUnknown       ComponentKind = ""
	ComponentKindMetered       ComponentKind = "metered_component"
	ComponentKindQuantityBased ComponentKind = "quantity_based_component"
	ComponentKindOnOff         ComponentKind = "on_off_component"
	ComponentKindPrepaidUsage  ComponentKind = "prepaid_usage_component"
)

// ParseComponentKind decodes a component kind.
func ParseComponentKind(s string) ComponentKind {
	return wire.ParseEnum(s,
		ComponentKindMetered, ComponentKindQuantityBased,
		ComponentKindOnOff, ComponentKindPrepaidUsage,
	)
}

// PricingScheme is the price calculation used by a component.
type PricingScheme string

const (
	PricingSchemeUnknown   PricingScheme = ""
	PricingSchemePerUnit   PricingScheme = "per_unit"
	PricingSchemeVolume    PricingScheme = "volume"
	PricingSchemeTiered    PricingScheme = "tiered"
	PricingSchemeStairstep PricingScheme = "stairstep"
)

// ParsePricingScheme decodes a pricing scheme.
func ParsePricingScheme(s string) PricingScheme {
	return wire.ParseEnum(s,
		PricingSchemePerUnit, PricingSchemeVolume, PricingSchemeTiered, PricingSchemeStairstep,
	)
}

// ProrationUpgradeScheme controls billing when a quantity goes up. The remote
// API spells these with hyphens.
type ProrationUpgradeScheme string

const (
	ProrationUpgradeUnknown                 ProrationUpgradeScheme = ""
	ProrationUpgradeFullPriceAttemptCapture ProrationUpgradeScheme = "full-price-attempt-capture"
	ProrationUpgradeProrateAttemptCapture   ProrationUpgradeScheme = "prorate-attempt-capture"
	ProrationUpgradeProrateDelayCapture     ProrationUpgradeScheme = "prorate-delay-capture"
	ProrationUpgradeNoProrate               ProrationUpgradeScheme = "no-prorate"
)

// ParseProrationUpgradeScheme decodes an upgrade scheme in either hyphen or
// underscore spelling.
func ParseProrationUpgradeScheme(s string) ProrationUpgradeScheme {
	return wire.ParseEnum(s,
		ProrationUpgradeFullPriceAttemptCapture, ProrationUpgradeProrateAttemptCapture,
		ProrationUpgradeProrateDelayCapture, ProrationUpgradeNoProrate,
	)
}

// ProrationDowngradeScheme controls billing when a quantity goes down.
type ProrationDowngradeScheme string

const (
	ProrationDowngradeUnknown   ProrationDowngradeScheme = ""
	ProrationDowngradeNoProrate ProrationDowngradeScheme = "no-prorate"
	ProrationDowngradeProrate   ProrationDowngradeScheme = "prorate"
)

// ParseProrationDowngradeScheme decodes a downgrade scheme.
func ParseProrationDowngradeScheme(s string) ProrationDowngradeScheme {
	return wire.ParseEnum(s, ProrationDowngradeNoProrate, ProrationDowngradeProrate)
}
