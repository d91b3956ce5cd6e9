// Package ui holds the shared color themes for the CLI and the TUI.
package ui
