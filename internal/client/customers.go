package client

import (
	"context"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// CustomersClient implements chargify.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
	logger     chargify.Logger
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client, logger chargify.Logger) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements chargify.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id int) (*chargify.Customer, error) {
	path := "/customers/" + strconv.Itoa(id)

	return getEntity[chargify.Customer](ctx, c.httpClient, path, nil, "customer", "customer")
}

// GetByReference implements chargify.CustomersClient.GetByReference.
func (c *CustomersClient) GetByReference(ctx context.Context, reference string) (*chargify.Customer, error) {
	if reference == "" {
		return nil, &chargify.ValidationError{Field: "reference", Reason: "is required"}
	}

	query := url.Values{"reference": []string{reference}}

	return getEntity[chargify.Customer](ctx, c.httpClient, "/customers/lookup", query, "customer", "customer by reference")
}

// List implements chargify.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *chargify.ListParams) (map[int]chargify.Customer, error) {
	query, err := params.Values()
	if err != nil {
		return nil, err
	}

	return listEntities[int, chargify.Customer](ctx, c.httpClient, "/customers", query, "customers", "customer", chargify.CustomerID)
}

// ListAll implements chargify.CustomersClient.ListAll.
func (c *CustomersClient) ListAll(ctx context.Context, params *chargify.ListParams) (map[int]chargify.Customer, error) {
	return listAllEntities[int, chargify.Customer](ctx, c.httpClient, c.logger, "/customers", params, "customers", "customer", chargify.CustomerID)
}

// Create implements chargify.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, attrs *chargify.CustomerAttributes) (*chargify.Customer, error) {
	return sendEntity[chargify.Customer](ctx, c.httpClient, nethttp.MethodPost, "/customers", requestOrNil(attrs), "customer", "customer")
}

// Update implements chargify.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id int, update *chargify.CustomerUpdate) (*chargify.Customer, error) {
	path := "/customers/" + strconv.Itoa(id)

	return sendEntity[chargify.Customer](ctx, c.httpClient, nethttp.MethodPut, path, requestOrNil(update), "customer", "customer update")
}

// Delete implements chargify.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id int) error {
	return deleteResource(ctx, c.httpClient, "/customers/"+strconv.Itoa(id), "customer")
}

// Subscriptions implements chargify.CustomersClient.Subscriptions.
func (c *CustomersClient) Subscriptions(ctx context.Context, id int) (map[int]chargify.Subscription, error) {
	path := "/customers/" + strconv.Itoa(id) + "/subscriptions"

	return listEntities[int, chargify.Subscription](ctx, c.httpClient, path, nil, "subscriptions", "subscription", chargify.SubscriptionID)
}
