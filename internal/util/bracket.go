// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// bracket.go - Acquire/use/release scoping for terminal modes and streams.
package util

import "errors"

// Release undoes whatever an acquire step did.
type Release func() error

// Bracket runs acquire, then body, then the release returned by acquire.
//
// Release runs on every path out of body, including a panic, which is
// re-raised afterwards. If acquire fails, body is not run and the acquire
// error is returned as is. Body and release errors are joined, so callers
// can test for either with errors.Is / errors.As.
func Bracket(acquire func() (Release, error), body func() error) (err error) {
	release, err := acquire()
	if err != nil {
		return err
	}

	defer func() {
		if release == nil {
			return
		}
		if relErr := release(); relErr != nil {
			err = errors.Join(err, relErr)
		}
	}()

	return body()
}
