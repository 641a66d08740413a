// Package notes implements the two note flows of the client: composing a
// note and turning it into a share link, and unlocking a shared note with
// its password.
//
// Both flows allow one request in flight at a time. A result that arrives
// after the flow was reset or abandoned is discarded and reported as
// ErrStale.
package notes
