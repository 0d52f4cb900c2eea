// Package wire implements the format layer shared by every request and
// response: a generic XML element tree, format detection, total scalar
// decoding for both XML leaves and JSON values, enum normalisation, currency
// formatting and the mechanical XML to JSON transcoding applied to request
// bodies in JSON mode.
//
// Everything in this package is a pure function of its input and safe for
// concurrent use.
package wire
