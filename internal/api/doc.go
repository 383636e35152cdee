// Package api handles incoming HTTP requests, request validation, and
// response formatting for the usuario and cliente resources. It acts as an
// adapter between external clients and the store layer, translating HTTP
// concerns to persistence operations and typed errors back to status codes.
package api
