package constants

import "time"

// Version is the library version reported in the default User-Agent.
const Version = "1.0.0"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for statement PDF downloads.
	ExtendedHTTPTimeout = 60 * time.Second
)

// Authentication.
const (
	// DefaultAPIPassword is the Basic auth password paired with an API key.
	DefaultAPIPassword = "X"

	// SiteURLScheme is prepended to site URLs given without a scheme.
	SiteURLScheme = "https://"
)

// Pagination limits.
const (
	// DefaultPageSize is the page size the CLI requests.
	DefaultPageSize = 50

	// ListAllPageSize is the page size used when aggregating every page.
	ListAllPageSize = 200

	// MaxListAllPages bounds page aggregation against servers that never
	// return a short page.
	MaxListAllPages = 1000
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret replaces the hidden part of sensitive values.
	MaskedSecret = "****"

	// StringTruncationLimit is the number of trailing characters kept when masking.
	StringTruncationLimit = 4
)
