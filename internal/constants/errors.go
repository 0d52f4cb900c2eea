package constants

import "errors"

// Configuration errors.
var (
	ErrNoSiteConfigured   = errors.New("no site configured, use 'chargify config set site <subdomain>' or --site")
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'chargify config set api_key <key>' or --api-key")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidOutput      = errors.New("invalid output format, use table, json or yaml")
)

// Validation errors.
var (
	ErrInvalidID         = errors.New("invalid ID")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAmountRequired    = errors.New("one of --amount or --amount-in-cents is required")
	ErrPDFOutputRequired = errors.New("output file is required when stdout is a terminal")
)
