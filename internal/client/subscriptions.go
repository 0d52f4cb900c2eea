package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// SubscriptionsClient implements chargify.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
	logger     chargify.Logger
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client, logger chargify.Logger) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

func subscriptionPath(id int) string {
	return "/subscriptions/" + strconv.Itoa(id)
}

// Get implements chargify.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id int) (*chargify.Subscription, error) {
	return getEntity[chargify.Subscription](ctx, c.httpClient, subscriptionPath(id), nil, "subscription", "subscription")
}

// List implements chargify.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *chargify.ListParams) (map[int]chargify.Subscription, error) {
	query, err := params.Values()
	if err != nil {
		return nil, err
	}

	return listEntities[int, chargify.Subscription](ctx, c.httpClient, "/subscriptions", query,
		"subscriptions", "subscription", chargify.SubscriptionID)
}

// ListAll implements chargify.SubscriptionsClient.ListAll.
func (c *SubscriptionsClient) ListAll(ctx context.Context, params *chargify.ListParams) (map[int]chargify.Subscription, error) {
	return listAllEntities[int, chargify.Subscription](ctx, c.httpClient, c.logger, "/subscriptions", params,
		"subscriptions", "subscription", chargify.SubscriptionID)
}

// Create implements chargify.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, req *chargify.SubscriptionCreate) (*chargify.Subscription, error) {
	return sendEntity[chargify.Subscription](ctx, c.httpClient, nethttp.MethodPost, "/subscriptions",
		requestOrNil(req), "subscription", "subscription")
}

// Update implements chargify.SubscriptionsClient.Update. Product changes go
// through the same call.
func (c *SubscriptionsClient) Update(ctx context.Context, id int, req *chargify.SubscriptionUpdate) (*chargify.Subscription, error) {
	return sendEntity[chargify.Subscription](ctx, c.httpClient, nethttp.MethodPut, subscriptionPath(id),
		requestOrNil(req), "subscription", "subscription update")
}

// Cancel implements chargify.SubscriptionsClient.Cancel. A nil request
// cancels without a message.
func (c *SubscriptionsClient) Cancel(ctx context.Context, id int, req *chargify.SubscriptionCancel) (*chargify.Subscription, error) {
	if req == nil {
		req = &chargify.SubscriptionCancel{}
	}

	return sendEntity[chargify.Subscription](ctx, c.httpClient, nethttp.MethodDelete, subscriptionPath(id),
		req, "subscription", "subscription cancellation")
}

// Reactivate implements chargify.SubscriptionsClient.Reactivate.
func (c *SubscriptionsClient) Reactivate(ctx context.Context, id int) (*chargify.Subscription, error) {
	resp, err := c.httpClient.Put(ctx, subscriptionPath(id)+"/reactivate", nil)
	if err != nil {
		return nil, fmt.Errorf("reactivating subscription: %w", err)
	}

	subscription, err := chargify.Decode[chargify.Subscription](resp.Body, "subscription")
	if err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return subscription, nil
}

// Migrate implements chargify.SubscriptionsClient.Migrate.
func (c *SubscriptionsClient) Migrate(ctx context.Context, id int, req *chargify.MigrationRequest) (*chargify.Subscription, error) {
	return sendEntity[chargify.Subscription](ctx, c.httpClient, nethttp.MethodPost, subscriptionPath(id)+"/migrations",
		requestOrNil(req), "subscription", "migration")
}

// PreviewMigration implements chargify.SubscriptionsClient.PreviewMigration.
func (c *SubscriptionsClient) PreviewMigration(ctx context.Context, id int, req *chargify.MigrationRequest) (*chargify.MigrationPreview, error) {
	return sendEntity[chargify.MigrationPreview](ctx, c.httpClient, nethttp.MethodPost, subscriptionPath(id)+"/migrations/preview",
		requestOrNil(req), "migration", "migration preview")
}
