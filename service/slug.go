package service

import "strings"

// Slugify derives a game key from its name: trimmed, spaces replaced by
// underscores, lower-cased.
func Slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
