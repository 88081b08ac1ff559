package rspecjson

import "strings"

// CleanPath strips a single leading "./" from an RSpec file path.
func CleanPath(p string) string {
	return strings.TrimPrefix(p, "./")
}
