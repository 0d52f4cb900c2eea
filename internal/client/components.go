package client

import (
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// ComponentsClient implements chargify.ComponentsClient.
type ComponentsClient struct {
	httpClient *http.Client
}

// NewComponentsClient creates a new components client.
func NewComponentsClient(httpClient *http.Client) *ComponentsClient {
	return &ComponentsClient{
		httpClient: httpClient,
	}
}

func subscriptionComponentPath(subscriptionID, componentID int) string {
	return subscriptionPath(subscriptionID) + "/components/" + strconv.Itoa(componentID)
}

// ListForFamily implements chargify.ComponentsClient.ListForFamily.
func (c *ComponentsClient) ListForFamily(ctx context.Context, productFamilyID int) (map[int]chargify.Component, error) {
	path := "/product_families/" + strconv.Itoa(productFamilyID) + "/components"

	return listEntities[int, chargify.Component](ctx, c.httpClient, path, nil, "components", "component", chargify.ComponentID)
}

// ListForSubscription implements chargify.ComponentsClient.ListForSubscription.
func (c *ComponentsClient) ListForSubscription(ctx context.Context, subscriptionID int) (map[int]chargify.SubscriptionComponent, error) {
	path := subscriptionPath(subscriptionID) + "/components"

	return listEntities[int, chargify.SubscriptionComponent](ctx, c.httpClient, path, nil,
		"components", "component", chargify.SubscriptionComponentID)
}

// GetForSubscription implements chargify.ComponentsClient.GetForSubscription.
func (c *ComponentsClient) GetForSubscription(ctx context.Context, subscriptionID, componentID int) (*chargify.SubscriptionComponent, error) {
	return getEntity[chargify.SubscriptionComponent](ctx, c.httpClient, subscriptionComponentPath(subscriptionID, componentID), nil,
		"component", "subscription component")
}

// Allocate implements chargify.ComponentsClient.Allocate.
func (c *ComponentsClient) Allocate(ctx context.Context, subscriptionID, componentID int, req *chargify.AllocationRequest) (*chargify.Allocation, error) {
	path := subscriptionComponentPath(subscriptionID, componentID) + "/allocations"

	return sendEntity[chargify.Allocation](ctx, c.httpClient, nethttp.MethodPost, path, requestOrNil(req), "allocation", "allocation")
}

// RecordUsage implements chargify.ComponentsClient.RecordUsage.
func (c *ComponentsClient) RecordUsage(ctx context.Context, subscriptionID, componentID int, req *chargify.UsageRequest) (*chargify.Usage, error) {
	path := subscriptionComponentPath(subscriptionID, componentID) + "/usages"

	return sendEntity[chargify.Usage](ctx, c.httpClient, nethttp.MethodPost, path, requestOrNil(req), "usage", "usage")
}
