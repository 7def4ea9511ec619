// Package internal holds values shared across phonafind's internal
// packages.
package internal

// Version is the current phonafind version.
const Version = "0.1.0"
