// Package chargifyclient provides the main entry point for creating Chargify API clients
package chargifyclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/chargify-client/internal/client"
	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// New creates a new Chargify API client. The config is copied; changing it
// afterwards does not affect the returned client.
func New(config *chargify.Config) (chargify.Client, error) {
	if config == nil {
		return nil, chargify.ErrConfigRequired
	}

	cfg := *config

	siteURL, err := NormalizeSiteURL(cfg.SiteURL)
	if err != nil {
		return nil, err
	}

	cfg.SiteURL = siteURL

	client, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithAPIKey creates a new XML client for site authenticating with apiKey.
func NewWithAPIKey(site, apiKey string) (chargify.Client, error) {
	return New(&chargify.Config{
		SiteURL: site,
		APIKey:  apiKey,
	})
}

// NewJSONWithAPIKey creates a new client for site that exchanges JSON bodies.
func NewJSONWithAPIKey(site, apiKey string) (chargify.Client, error) {
	return New(&chargify.Config{
		SiteURL: site,
		APIKey:  apiKey,
		Format:  wire.FormatJSON,
	})
}

// NormalizeSiteURL trims surrounding whitespace and trailing slashes and adds
// the https scheme to bare host names such as "acme.chargify.com".
func NormalizeSiteURL(site string) (string, error) {
	site = strings.TrimRight(strings.TrimSpace(site), "/")
	if site == "" {
		return "", chargify.ErrSiteURLRequired
	}

	if !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
		site = constants.SiteURLScheme + site
	}

	return site, nil
}
