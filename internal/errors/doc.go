// Package apperrors defines the application's typed errors and exit
// codes.
//
// The error types distinguish configuration problems, input validation
// failures, timeouts and multiplication failures, so callers can map
// each to the right exit status and message.
package apperrors
