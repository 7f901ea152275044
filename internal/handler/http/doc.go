// Package http implements the HTTP transport of the vault server.
//
// It exposes route wiring, request handlers, and middleware for the account
// API: registration, login, credential changes, key rotation, device
// approval, and the device registry. Cross-cutting concerns such as session
// authentication, request tracing, access logging, and response compression
// are handled here before requests reach the service layer. Handlers decode
// bodies, pull identity from the request context, and translate service
// errors to HTTP statuses; no domain rule lives in this package.
package http
