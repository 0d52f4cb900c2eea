package chargify

import (
	"context"
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// Client provides access to every resource client of a site.
type Client interface {
	Customers() CustomersClient
	Products() ProductsClient
	ProductFamilies() ProductFamiliesClient
	Subscriptions() SubscriptionsClient
	Components() ComponentsClient
	Coupons() CouponsClient
	Transactions() TransactionsClient
	Statements() StatementsClient
	LedgerClients
}

// LedgerClients provides access to the one-time balance operations.
type LedgerClients interface {
	Charges() ChargesClient
	Credits() CreditsClient
	Refunds() RefundsClient
	Adjustments() AdjustmentsClient
	Payments() PaymentsClient
}

// CustomersClient manages customers.
type CustomersClient interface {
	Get(ctx context.Context, id int) (*Customer, error)
	GetByReference(ctx context.Context, reference string) (*Customer, error)
	List(ctx context.Context, params *ListParams) (map[int]Customer, error)
	ListAll(ctx context.Context, params *ListParams) (map[int]Customer, error)
	Create(ctx context.Context, attrs *CustomerAttributes) (*Customer, error)
	Update(ctx context.Context, id int, update *CustomerUpdate) (*Customer, error)
	Delete(ctx context.Context, id int) error
	Subscriptions(ctx context.Context, id int) (map[int]Subscription, error)
}

// ProductsClient reads products.
type ProductsClient interface {
	Get(ctx context.Context, id int) (*Product, error)
	GetByHandle(ctx context.Context, handle string) (*Product, error)
	List(ctx context.Context) (map[int]Product, error)
}

// ProductFamiliesClient reads product families.
type ProductFamiliesClient interface {
	Get(ctx context.Context, id int) (*ProductFamily, error)
	List(ctx context.Context) (map[int]ProductFamily, error)
}

// SubscriptionsClient manages subscriptions and their lifecycle.
type SubscriptionsClient interface {
	Get(ctx context.Context, id int) (*Subscription, error)
	List(ctx context.Context, params *ListParams) (map[int]Subscription, error)
	ListAll(ctx context.Context, params *ListParams) (map[int]Subscription, error)
	Create(ctx context.Context, req *SubscriptionCreate) (*Subscription, error)
	Update(ctx context.Context, id int, req *SubscriptionUpdate) (*Subscription, error)
	Cancel(ctx context.Context, id int, req *SubscriptionCancel) (*Subscription, error)
	Reactivate(ctx context.Context, id int) (*Subscription, error)
	Migrate(ctx context.Context, id int, req *MigrationRequest) (*Subscription, error)
	PreviewMigration(ctx context.Context, id int, req *MigrationRequest) (*MigrationPreview, error)
}

// ComponentsClient reads component definitions and manages a subscription's
// component quantities and usage.
type ComponentsClient interface {
	ListForFamily(ctx context.Context, productFamilyID int) (map[int]Component, error)
	ListForSubscription(ctx context.Context, subscriptionID int) (map[int]SubscriptionComponent, error)
	GetForSubscription(ctx context.Context, subscriptionID, componentID int) (*SubscriptionComponent, error)
	Allocate(ctx context.Context, subscriptionID, componentID int, req *AllocationRequest) (*Allocation, error)
	RecordUsage(ctx context.Context, subscriptionID, componentID int, req *UsageRequest) (*Usage, error)
}

// CouponsClient manages coupons.
type CouponsClient interface {
	Get(ctx context.Context, id int) (*Coupon, error)
	Find(ctx context.Context, code string) (*Coupon, error)
	Create(ctx context.Context, req *CouponRequest) (*Coupon, error)
}

// TransactionsClient reads the transaction ledger.
type TransactionsClient interface {
	Get(ctx context.Context, id int) (*Transaction, error)
	List(ctx context.Context, params *TransactionListParams) (map[int]Transaction, error)
	ListForSubscription(ctx context.Context, subscriptionID int, params *TransactionListParams) (map[int]Transaction, error)
}

// StatementsClient reads statements.
type StatementsClient interface {
	Get(ctx context.Context, id int) (*Statement, error)
	ListForSubscription(ctx context.Context, subscriptionID int, params *ListParams) (map[int]Statement, error)
	PDF(ctx context.Context, id int) ([]byte, error)
}

// ChargesClient posts one-time charges.
type ChargesClient interface {
	Create(ctx context.Context, subscriptionID int, req *ChargeRequest) (*Charge, error)
}

// CreditsClient posts one-time credits.
type CreditsClient interface {
	Create(ctx context.Context, subscriptionID int, req *CreditRequest) (*Credit, error)
}

// RefundsClient posts refunds.
type RefundsClient interface {
	Create(ctx context.Context, subscriptionID int, req *RefundRequest) (*Refund, error)
}

// AdjustmentsClient posts balance adjustments.
type AdjustmentsClient interface {
	Create(ctx context.Context, subscriptionID int, req *AdjustmentRequest) (*Adjustment, error)
}

// PaymentsClient records external payments.
type PaymentsClient interface {
	Create(ctx context.Context, subscriptionID int, req *PaymentRequest) (*Payment, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// RequestHook receives every outgoing request body after format conversion.
type RequestHook func(method, url string, body []byte)

// ResponseHook receives every response body before decoding.
type ResponseHook func(statusCode int, url string, body []byte)

// Config represents client configuration for building a chargify.Client.
// The transport captures a copy when the client is built; later changes to
// the value have no effect.
type Config struct {
	// SiteURL: base URL of the site (e.g., "https://acme.chargify.com").
	// chargifyclient.New adds "https://" when no scheme is present and trims a
	// trailing slash.
	SiteURL string
	// APIKey: the Basic auth user name.
	APIKey string
	// Password: the Basic auth password. Defaults to "X".
	Password string
	// Format: wire format of request and response bodies. Defaults to XML.
	Format wire.Format
	// Timeout: per-request timeout applied by the HTTP client. Context
	// deadlines still apply.
	Timeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// RequestLogger and ResponseLogger: optional raw body hooks.
	RequestLogger  RequestHook
	ResponseLogger ResponseHook
}
