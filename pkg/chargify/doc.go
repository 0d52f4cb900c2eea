// Package chargify provides types, interfaces, and helpers for working with a
// Chargify-style subscription billing API.
//
// # Overview
//
// The package defines the domain entities (Customer, Product, Subscription,
// Component, Transaction, Statement, Coupon and the ledger entries), the
// request payloads used by write operations, and the resource client
// interfaces. A concrete client is built by the chargifyclient package.
//
//	cli, err := chargifyclient.New(&chargify.Config{
//	  SiteURL: "acme.chargify.com",
//	  APIKey:  os.Getenv("CHARGIFY_API_KEY"),
//	})
//	if err != nil { log.Fatal(err) }
//
//	sub, err := cli.Subscriptions().Get(ctx, 42)
//
// # Wire formats
//
// Every entity decodes from either XML or JSON through a single field
// mapping. Decode inspects a raw body and dispatches on its format; Parse,
// FromXML and FromJSON are the other entry points and all produce identical
// results. DecodeList turns list responses into maps keyed by a natural key
// and fails with ErrDuplicateKey when a key repeats within one response.
//
// Request bodies are always assembled as XML by BuildBody. When the client is
// configured for JSON the transport converts that document mechanically just
// before sending it.
//
// # Absent values
//
// Remote fields that may be missing are pointers, empty strings, zero times
// or the Unknown member of an enumeration. Absent values are left out of
// encoded payloads. Identifiers are assigned by the remote API and a zero ID
// means "not yet assigned".
//
// # Errors
//
// Non-2xx responses surface as *ResponseError. Use IsNotFound, IsForbidden
// and IsUnprocessable, or errors.Is(err, ErrNotFound), to branch on them.
// Request validation fails with *ValidationError before any network call.
package chargify
