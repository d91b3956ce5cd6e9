// Package logging centralizes construction of the application's zerolog
// loggers.
package logging
