// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// editor.go - Raw-mode line editing.

package lineedit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigsh/internal/util"
)

// ErrRestoreFailed is returned when the terminal could not be put back into
// its saved mode. The terminal is unusable afterwards.
var ErrRestoreFailed = errors.New("failed to restore terminal mode")

// ModeSwitcher puts a terminal into raw mode. The returned Release restores
// the previous mode.
type ModeSwitcher interface {
	EnterRaw() (util.Release, error)
}

// =============================================================================
// EDITOR
// =============================================================================

// Editor reads lines one byte at a time and redraws the line after every
// keystroke.
type Editor struct {
	in   io.Reader
	out  io.Writer
	mode ModeSwitcher

	// pushback holds one byte returned by a decoder for the edit loop
	pushback    byte
	hasPushback bool

	// tty is closed by Close when the editor opened it
	tty *os.File
}

// New creates an editor reading from in and drawing to out.
func New(in io.Reader, out io.Writer, mode ModeSwitcher) *Editor {
	return &Editor{in: in, out: out, mode: mode}
}

// Open creates an editor on the controlling terminal, drawing to stdout.
func Open() (*Editor, error) {
	tty, err := OpenTTY()
	if err != nil {
		return nil, err
	}
	ed := New(tty, os.Stdout, NewTermiosMode(int(tty.Fd())))
	ed.tty = tty
	return ed, nil
}

// Close releases the terminal opened by Open.
func (e *Editor) Close() error {
	if e.tty == nil {
		return nil
	}
	return e.tty.Close()
}

// ReadLine shows prompt and returns the edited line. Ctrl-D ends the line
// early with a nil error and Ctrl-C discards it, returning "". End of input
// returns the partial line with io.EOF. The terminal mode is restored on
// every return path.
func (e *Editor) ReadLine(prompt string) (string, error) {
	var line string

	err := util.Bracket(
		func() (util.Release, error) {
			restore, err := e.mode.EnterRaw()
			if err != nil {
				return nil, fmt.Errorf("enter raw mode: %w", err)
			}
			return func() error {
				if err := restore(); err != nil {
					return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
				}
				return nil
			}, nil
		},
		func() error {
			var err error
			line, err = e.edit(prompt)
			return err
		},
	)

	return line, err
}

// =============================================================================
// EDIT LOOP
// =============================================================================

type lineState struct {
	prompt string
	buf    []rune
	cursor int
}

func (e *Editor) edit(prompt string) (string, error) {
	st := &lineState{prompt: prompt}
	if err := e.redraw(st); err != nil {
		return "", err
	}

	for {
		b, err := e.readByte()
		if err != nil {
			return string(st.buf), err
		}

		switch {
		case b == keyNewline || b == keyReturn:
			_, err := io.WriteString(e.out, "\n")
			return string(st.buf), err

		case b == keyCtrlD:
			_, err := io.WriteString(e.out, "\n")
			return string(st.buf), err

		case b == keyCtrlC:
			_, err := io.WriteString(e.out, "^C\n")
			return "", err

		case b == keyEscape:
			final, err := e.readEscape()
			if err != nil {
				return string(st.buf), err
			}
			st.move(final)

		case b == keyDelete || b == keyBackspace:
			st.backspace()

		case b >= utf8.RuneSelf:
			r, err := e.readRune(b)
			if err != nil {
				return string(st.buf), err
			}
			if r != utf8.RuneError && unicode.IsPrint(r) {
				st.insert(r)
			}

		case b >= 0x20:
			st.insert(rune(b))

		default:
			// other control bytes
			continue
		}

		if err := e.redraw(st); err != nil {
			return string(st.buf), err
		}
	}
}

func (st *lineState) insert(r rune) {
	st.buf = append(st.buf, 0)
	copy(st.buf[st.cursor+1:], st.buf[st.cursor:])
	st.buf[st.cursor] = r
	st.cursor++
}

func (st *lineState) backspace() {
	if st.cursor == 0 {
		return
	}
	st.buf = append(st.buf[:st.cursor-1], st.buf[st.cursor:]...)
	st.cursor--
}

func (st *lineState) move(final byte) {
	switch final {
	case seqLeft:
		if st.cursor > 0 {
			st.cursor--
		}
	case seqRight:
		if st.cursor < len(st.buf) {
			st.cursor++
		}
	case seqHome:
		st.cursor = 0
	case seqEnd:
		st.cursor = len(st.buf)
	case seqUp, seqDown:
		// no history
	}
}

// redraw repaints the whole line and places the terminal cursor.
func (e *Editor) redraw(st *lineState) error {
	col := lipgloss.Width(st.prompt) + util.RunesWidth(st.buf[:st.cursor]) + 1
	_, err := fmt.Fprintf(e.out, "\r%s%s"+ansiClearToEOL+ansiColumnFmt, st.prompt, string(st.buf), col)
	return err
}

// =============================================================================
// INPUT DECODING
// =============================================================================

func (e *Editor) readByte() (byte, error) {
	if e.hasPushback {
		e.hasPushback = false
		return e.pushback, nil
	}

	var b [1]byte
	for {
		n, err := e.in.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (e *Editor) unreadByte(b byte) {
	e.pushback = b
	e.hasPushback = true
}

// readEscape consumes the rest of an escape sequence and returns its final
// byte, or 0 when the sequence is not one the editor handles. A byte that
// cannot belong to the sequence is left for the edit loop.
func (e *Editor) readEscape() (byte, error) {
	intro, err := e.readByte()
	if err != nil {
		return 0, err
	}
	if intro != '[' && intro != 'O' {
		e.unreadByte(intro)
		return 0, nil
	}

	// CSI parameters run until a final byte in 0x40-0x7E.
	for {
		b, err := e.readByte()
		if err != nil {
			return 0, err
		}
		switch {
		case b >= 0x40 && b <= 0x7E:
			return b, nil
		case b < 0x20:
			e.unreadByte(b)
			return 0, nil
		}
	}
}

// readRune assembles a multi-byte UTF-8 sequence starting with lead. The
// sequence stops at the first byte that is not a continuation byte; that
// byte is left for the edit loop and the rune is invalid.
func (e *Editor) readRune(lead byte) (rune, error) {
	var size int
	switch {
	case lead&0xE0 == 0xC0:
		size = 2
	case lead&0xF0 == 0xE0:
		size = 3
	case lead&0xF8 == 0xF0:
		size = 4
	default:
		return utf8.RuneError, nil
	}

	seq := make([]byte, 1, size)
	seq[0] = lead
	for len(seq) < size {
		b, err := e.readByte()
		if err != nil {
			return utf8.RuneError, err
		}
		if b&0xC0 != 0x80 {
			e.unreadByte(b)
			return utf8.RuneError, nil
		}
		seq = append(seq, b)
	}

	r, _ := utf8.DecodeRune(seq)
	return r, nil
}
