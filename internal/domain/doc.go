// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/profile,
// domain/corporation). This root package holds sentinel errors and the typed
// errors that carry user-facing messages across layers.
package domain
