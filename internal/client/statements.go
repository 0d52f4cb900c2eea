package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// StatementsClient implements chargify.StatementsClient.
type StatementsClient struct {
	httpClient *http.Client
}

// NewStatementsClient creates a new statements client.
func NewStatementsClient(httpClient *http.Client) *StatementsClient {
	return &StatementsClient{
		httpClient: httpClient,
	}
}

// Get implements chargify.StatementsClient.Get.
func (c *StatementsClient) Get(ctx context.Context, id int) (*chargify.Statement, error) {
	return getEntity[chargify.Statement](ctx, c.httpClient, "/statements/"+strconv.Itoa(id), nil, "statement", "statement")
}

// ListForSubscription implements chargify.StatementsClient.ListForSubscription.
func (c *StatementsClient) ListForSubscription(
	ctx context.Context, subscriptionID int, params *chargify.ListParams,
) (map[int]chargify.Statement, error) {
	query, err := params.Values()
	if err != nil {
		return nil, err
	}

	return listEntities[int, chargify.Statement](ctx, c.httpClient, subscriptionPath(subscriptionID)+"/statements", query,
		"statements", "statement", chargify.StatementID)
}

// PDF implements chargify.StatementsClient.PDF.
func (c *StatementsClient) PDF(ctx context.Context, id int) ([]byte, error) {
	body, err := c.httpClient.GetPDF(ctx, "/statements/"+strconv.Itoa(id))
	if err != nil {
		return nil, fmt.Errorf("getting statement PDF: %w", err)
	}

	return body, nil
}
