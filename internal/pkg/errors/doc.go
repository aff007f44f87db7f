// Package errors provides transport-level error types for the HTTP API.
//
// A malformed CSV upload is not one of these: the scene builder reports it
// inside a normal 200 response. AppError covers requests that cannot reach
// the builder at all (missing file field, oversized body, unknown build id).
//
// Usage:
//
//	apperrors.WriteJSON(w, apperrors.BadRequest("file field is required"))
package errors
