package client

import (
	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// Client implements the chargify.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     chargify.Logger

	// Resource clients
	customers       *CustomersClient
	products        *ProductsClient
	productFamilies *ProductFamiliesClient
	subscriptions   *SubscriptionsClient
	components      *ComponentsClient
	coupons         *CouponsClient
	transactions    *TransactionsClient
	statements      *StatementsClient
	charges         *ChargesClient
	credits         *CreditsClient
	refunds         *RefundsClient
	adjustments     *AdjustmentsClient
	payments        *PaymentsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *chargify.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithFormat(config.Format),
		http.WithPassword(config.Password),
		http.WithTimeout(config.Timeout),
		http.WithUserAgent(config.UserAgent),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.RequestLogger != nil {
		httpOpts = append(httpOpts, http.WithRequestHook(config.RequestLogger))
	}

	if config.ResponseLogger != nil {
		httpOpts = append(httpOpts, http.WithResponseHook(config.ResponseLogger))
	}

	return httpOpts
}

// New creates a client for the site described by config. The config is read
// once; later changes to it have no effect.
func New(config *chargify.Config) (*Client, error) {
	if config == nil {
		return nil, chargify.ErrConfigRequired
	}

	if config.SiteURL == "" {
		return nil, chargify.ErrSiteURLRequired
	}

	if config.APIKey == "" {
		return nil, chargify.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.SiteURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.SiteURL,
		logger:     config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// BaseURL returns the site URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// Customers implements chargify.Client.Customers.
func (c *Client) Customers() chargify.CustomersClient {
	return c.customers
}

// Products implements chargify.Client.Products.
func (c *Client) Products() chargify.ProductsClient {
	return c.products
}

// ProductFamilies implements chargify.Client.ProductFamilies.
func (c *Client) ProductFamilies() chargify.ProductFamiliesClient {
	return c.productFamilies
}

// Subscriptions implements chargify.Client.Subscriptions.
func (c *Client) Subscriptions() chargify.SubscriptionsClient {
	return c.subscriptions
}

// Components implements chargify.Client.Components.
func (c *Client) Components() chargify.ComponentsClient {
	return c.components
}

// Coupons implements chargify.Client.Coupons.
func (c *Client) Coupons() chargify.CouponsClient {
	return c.coupons
}

// Transactions implements chargify.Client.Transactions.
func (c *Client) Transactions() chargify.TransactionsClient {
	return c.transactions
}

// Statements implements chargify.Client.Statements.
func (c *Client) Statements() chargify.StatementsClient {
	return c.statements
}

// Charges implements chargify.LedgerClients.Charges.
func (c *Client) Charges() chargify.ChargesClient {
	return c.charges
}

// Credits implements chargify.LedgerClients.Credits.
func (c *Client) Credits() chargify.CreditsClient {
	return c.credits
}

// Refunds implements chargify.LedgerClients.Refunds.
func (c *Client) Refunds() chargify.RefundsClient {
	return c.refunds
}

// Adjustments implements chargify.LedgerClients.Adjustments.
func (c *Client) Adjustments() chargify.AdjustmentsClient {
	return c.adjustments
}

// Payments implements chargify.LedgerClients.Payments.
func (c *Client) Payments() chargify.PaymentsClient {
	return c.payments
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.customers = NewCustomersClient(c.httpClient, c.logger)
	c.products = NewProductsClient(c.httpClient)
	c.productFamilies = NewProductFamiliesClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient, c.logger)
	c.components = NewComponentsClient(c.httpClient)
	c.coupons = NewCouponsClient(c.httpClient)
	c.transactions = NewTransactionsClient(c.httpClient)
	c.statements = NewStatementsClient(c.httpClient)
	c.charges = NewChargesClient(c.httpClient)
	c.credits = NewCreditsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.adjustments = NewAdjustmentsClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
}

var _ chargify.Client = (*Client)(nil)
