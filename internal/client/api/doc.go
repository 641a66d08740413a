// Package api is the HTTP JSON gateway to the SecureNote backend.
//
// # Overview
//
// Client.Do is the generic request wrapper: it resolves a path against the
// base URL, JSON-encodes the body, attaches a bearer token when the caller
// passes one for that call, and turns every non-2xx response into a
// *RequestError. There is no shared header state: the token travels with
// each call.
//
// On top of Do sit typed endpoint methods (Register, Login, Profile,
// CreateNote, VerifyNote). Each decodes into an explicit response type and
// validates it, failing with ErrMalformedResponse rather than handing
// half-shaped data to callers.
//
// # Error Handling
//
// Callers match with errors.Is / errors.As:
//
//   - *RequestError: any failed call; Message is the server-supplied "msg"
//   - ErrUnavailable: transport failure, no response
//   - ErrUnauthorized: 401 or 403
//   - ErrMalformedResponse: 2xx with an unusable body
//
// Nothing is retried. Request bodies are never logged.
package api
