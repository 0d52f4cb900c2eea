package client

import (
	"context"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// TransactionsClient implements chargify.TransactionsClient.
type TransactionsClient struct {
	httpClient *http.Client
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{
		httpClient: httpClient,
	}
}

// Get implements chargify.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, id int) (*chargify.Transaction, error) {
	return getEntity[chargify.Transaction](ctx, c.httpClient, "/transactions/"+strconv.Itoa(id), nil, "transaction", "transaction")
}

// List implements chargify.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, params *chargify.TransactionListParams) (map[int]chargify.Transaction, error) {
	return c.list(ctx, "/transactions", params)
}

// ListForSubscription implements chargify.TransactionsClient.ListForSubscription.
func (c *TransactionsClient) ListForSubscription(
	ctx context.Context, subscriptionID int, params *chargify.TransactionListParams,
) (map[int]chargify.Transaction, error) {
	return c.list(ctx, subscriptionPath(subscriptionID)+"/transactions", params)
}

func (c *TransactionsClient) list(ctx context.Context, path string, params *chargify.TransactionListParams) (map[int]chargify.Transaction, error) {
	query, err := params.Values()
	if err != nil {
		return nil, err
	}

	return listEntities[int, chargify.Transaction](ctx, c.httpClient, path, query, "transactions", "transaction", chargify.TransactionID)
}
