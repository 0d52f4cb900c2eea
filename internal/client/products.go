package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// ProductsClient implements chargify.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{
		httpClient: httpClient,
	}
}

// Get implements chargify.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id int) (*chargify.Product, error) {
	return getEntity[chargify.Product](ctx, c.httpClient, "/products/"+strconv.Itoa(id), nil, "product", "product")
}

// GetByHandle implements chargify.ProductsClient.GetByHandle.
func (c *ProductsClient) GetByHandle(ctx context.Context, handle string) (*chargify.Product, error) {
	if handle == "" {
		return nil, &chargify.ValidationError{Field: "handle", Reason: "is required"}
	}

	path := "/products/handle/" + url.PathEscape(handle)

	return getEntity[chargify.Product](ctx, c.httpClient, path, nil, "product", "product by handle")
}

// List implements chargify.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context) (map[int]chargify.Product, error) {
	return listEntities[int, chargify.Product](ctx, c.httpClient, "/products", nil, "products", "product", chargify.ProductID)
}

// ProductFamiliesClient implements chargify.ProductFamiliesClient.
type ProductFamiliesClient struct {
	httpClient *http.Client
}

// NewProductFamiliesClient creates a new product families client.
func NewProductFamiliesClient(httpClient *http.Client) *ProductFamiliesClient {
	return &ProductFamiliesClient{
		httpClient: httpClient,
	}
}

// Get implements chargify.ProductFamiliesClient.Get.
func (c *ProductFamiliesClient) Get(ctx context.Context, id int) (*chargify.ProductFamily, error) {
	path := "/product_families/" + strconv.Itoa(id)

	return getEntity[chargify.ProductFamily](ctx, c.httpClient, path, nil, "product_family", "product family")
}

// List implements chargify.ProductFamiliesClient.List.
func (c *ProductFamiliesClient) List(ctx context.Context) (map[int]chargify.ProductFamily, error) {
	return listEntities[int, chargify.ProductFamily](ctx, c.httpClient, "/product_families", nil,
		"product_families", "product_family", chargify.ProductFamilyID)
}
