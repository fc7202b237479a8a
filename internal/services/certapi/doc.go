// Package certapi implements the HTTP client for the certificate backend.
//
// The backend is stateful: uploaded files persist server-side and the
// generate and send endpoints operate on whatever the previous stage left
// behind. Callers are responsible for sequencing; this package only speaks
// the wire contract of the five endpoints (upload, generate, send,
// download, health).
package certapi
