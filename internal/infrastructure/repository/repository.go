// Package repository holds GORM-backed implementations of the domain
// repository interfaces. Every read and write on scoped models routes
// through the shared tenant-scoping helpers; transactional callers are
// joined via the context-carried transaction handle.
package repository

import "strings"

// sortDirection sanitizes a caller-supplied sort order. Anything that
// is not explicitly ascending sorts descending.
func sortDirection(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}
