// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// truncate shortens s to at most n runes, replacing the tail with an
// ellipsis. Titles can carry multi-byte characters, so byte slicing
// would split a rune mid-sequence.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
