// Package api implements the HTTP boundary: handlers, request/response
// models, and the router.
package api
