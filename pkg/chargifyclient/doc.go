// Package chargifyclient provides the primary entry point for constructing a
// client that implements the chargify.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the chargify package. Most applications
// import chargifyclient to build a client, then use the returned
// chargify.Client to reach resource-specific clients such as Customers(),
// Subscriptions() or Statements().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/chargify-client/pkg/chargify"
//	  "github.com/fivetwenty-io/chargify-client/pkg/chargifyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // A bare host name gets the https scheme.
//	  cli, err := chargifyclient.NewWithAPIKey("acme.chargify.com", "my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with the full configuration:
//	  cli, err = chargifyclient.New(&chargify.Config{
//	    SiteURL: "https://acme.chargify.com",
//	    APIKey:  "my-api-key",
//	    Format:  wire.FormatJSON,
//	    Timeout: 10 * time.Second,
//	  })
//
//	  sub, err := cli.Subscriptions().Get(ctx, 42)
//	  if chargify.IsNotFound(err) {
//	    // no such subscription
//	  }
//	  _ = sub
//	}
//
// Configuration
//
//   - SiteURL: required. A trailing slash is removed.
//   - APIKey: required. Sent as the Basic auth user name.
//   - Password: Basic auth password, "X" when empty.
//   - Format: wire.FormatXML (default) or wire.FormatJSON.
//   - Logger, Debug, RequestLogger, ResponseLogger: optional diagnostics.
//
// Errors
//
// Non-2xx responses surface as *chargify.ResponseError. A 404 also matches
// chargify.ErrNotFound with errors.Is. Request payloads are validated before
// any I/O and fail with a *chargify.ValidationError.
package chargifyclient
