package client

import (
	"context"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// CouponsClient implements chargify.CouponsClient.
type CouponsClient struct {
	httpClient *http.Client
}

// NewCouponsClient creates a new coupons client.
func NewCouponsClient(httpClient *http.Client) *CouponsClient {
	return &CouponsClient{
		httpClient: httpClient,
	}
}

// Get implements chargify.CouponsClient.Get.
func (c *CouponsClient) Get(ctx context.Context, id int) (*chargify.Coupon, error) {
	return getEntity[chargify.Coupon](ctx, c.httpClient, "/coupons/"+strconv.Itoa(id), nil, "coupon", "coupon")
}

// Find implements chargify.CouponsClient.Find.
func (c *CouponsClient) Find(ctx context.Context, code string) (*chargify.Coupon, error) {
	if code == "" {
		return nil, &chargify.ValidationError{Field: "code", Reason: "is required"}
	}

	query := url.Values{"code": []string{code}}

	return getEntity[chargify.Coupon](ctx, c.httpClient, "/coupons/find", query, "coupon", "coupon by code")
}

// Create implements chargify.CouponsClient.Create. The coupon is created in
// the product family named by the request.
func (c *CouponsClient) Create(ctx context.Context, req *chargify.CouponRequest) (*chargify.Coupon, error) {
	if req == nil {
		return sendEntity[chargify.Coupon](ctx, c.httpClient, nethttp.MethodPost, "/coupons", nil, "coupon", "coupon")
	}

	path := "/product_families/" + strconv.Itoa(req.ProductFamilyID) + "/coupons"

	return sendEntity[chargify.Coupon](ctx, c.httpClient, nethttp.MethodPost, path, req, "coupon", "coupon")
}
