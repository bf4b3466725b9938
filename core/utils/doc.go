// Package utils provides common utility functions for the item-matcher application.
// It includes the identifier normalization used at every catalog and ledger boundary,
// and other shared logic that doesn't fit into domain-specific packages.
package utils
