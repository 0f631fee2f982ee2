// Package sampledata holds the fixed placeholder records shown when the
// campus API has no real data for a domain. Placeholders are clearly
// flagged to the user and are never submitted as mutations.
package sampledata

import "strings"

// IDPrefix marks placeholder record ids. Views use it to short-circuit
// detail lookups and to refuse mutations on sample records.
const IDPrefix = "sample-"

// IsSampleID reports whether id belongs to a placeholder record.
func IsSampleID(id string) bool {
	return strings.HasPrefix(id, IDPrefix)
}
