// Package api provides HTTP handlers for the users and orders resources,
// the route table that wires them up, and the mapping from store errors
// to HTTP status codes.
package api
