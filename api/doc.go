// Package api exposes search and assignment planning over HTTP with gin.
//
// Every request carries its own map as digit rows plus a marker table, so
// handlers share nothing but the cost table. Responses are JSON, brotli
// compressed when the client accepts "br". Malformed input answers 400 with
// {"error": "..."}; an unreachable goal or a missing assignment is a normal
// 200 answer.
package api
