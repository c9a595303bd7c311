// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "github.com/mattn/go-runewidth"

// UNICODE: Column widths follow East Asian Width rules, so a CJK character
// occupies two terminal cells and combining marks occupy none.

// RunesWidth returns the display width of a rune slice.
func RunesWidth(rs []rune) int {
	width := 0
	for _, r := range rs {
		width += runewidth.RuneWidth(r)
	}
	return width
}
