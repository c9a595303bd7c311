// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest provides typo correction for command names.
//
// It computes the Levenshtein edit distance between two names and picks
// the closest registered name within a length-dependent threshold. The
// shell uses it to print a "did you mean" hint after a failed lookup.
//
// # Usage
//
//	if name, ok := suggest.Closest("ehco", registry.Names(), suggest.Threshold("ehco")); ok {
//	    fmt.Printf("did you mean %q?\n", name) // "echo"
//	}
package suggest
