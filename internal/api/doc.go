// Package api defines wire-format types and converters for the IPC and
// HTTP API layer. It translates the in-memory notify records into
// transport-friendly DTOs the frontend renders without coupling to
// internal types.
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers. The
// notification field names and the enumerated kind values are a public
// contract with the frontend; changing either is a breaking change.
// Navigation payloads are passed through as json.RawMessage to avoid
// double-encoding.
package api
