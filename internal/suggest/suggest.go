// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package suggest

import "unicode/utf8"

// shortNameLen is the length below which a name only tolerates a single edit.
const shortNameLen = 4

// Threshold returns the maximum acceptable distance for a suggestion.
// Names shorter than 4 characters allow 1 edit, longer names allow 2.
func Threshold(name string) int {
	if utf8.RuneCountInString(name) < shortNameLen {
		return 1
	}
	return 2
}

// Closest returns the candidate with the smallest edit distance to target.
// Ties go to the candidate that appears first. The boolean is false when
// candidates is empty or when the best distance exceeds threshold.
func Closest(target string, candidates []string, threshold int) (string, bool) {
	best := ""
	bestDistance := -1

	for _, candidate := range candidates {
		d := Distance(target, candidate)
		if bestDistance == -1 || d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	if bestDistance == -1 || bestDistance > threshold {
		return "", false
	}
	return best, true
}

// Distance calculates the edit distance between two strings.
// This is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to change one string into the other. Characters
// are compared as runes and the comparison is case-sensitive.
func Distance(a, b string) int {
	s := []rune(a)
	t := []rune(b)

	// Keep the row as short as possible.
	if len(s) < len(t) {
		s, t = t, s
	}
	if len(t) == 0 {
		return len(s)
	}

	// row[j] holds the distance between the current prefix of s and t[:j].
	row := make([]int, len(t)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(s); i++ {
		diag := row[0] // value of row[j-1] from the previous iteration
		row[0] = i

		for j := 1; j <= len(t); j++ {
			above := row[j]
			if s[i-1] == t[j-1] {
				row[j] = diag
			} else {
				row[j] = 1 + min(diag, row[j-1], above)
			}
			diag = above
		}
	}

	return row[len(t)]
}
