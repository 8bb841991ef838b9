// Package input turns device events into game intents. Terminal input is read
// either one key at a time in raw mode or one command per line.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("interrupted")

// KeyReader decodes single key presses from a raw-mode terminal stream
type KeyReader struct {
	r       io.Reader
	pending []byte // bytes read ahead of a lone ESC
}

// NewKeyReader wraps r
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// readByte reads a single byte, draining pushed-back bytes first
func (k *KeyReader) readByte() (byte, error) {
	if len(k.pending) > 0 {
		b := k.pending[0]
		k.pending = k.pending[1:]
		return b, nil
	}
	buf := make([]byte, 1)
	_, err := io.ReadFull(k.r, buf)
	return buf[0], err
}

// ReadKey blocks for one key press and returns its code ("h", "space",
// "arrow_up", "f5", ...). Unknown escape sequences return "".
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.readByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 3:
		return "", ErrInterrupted
	case b == 0x1b:
		return k.readEscape()
	case b == ' ':
		return "space", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a')), nil
	case b >= 32 && b < 127:
		return string(rune(b)), nil
	}
	return "", nil
}

// readEscape decodes the rest of an ESC sequence: arrows (CSI or SS3) and
// the F5/F9 function keys.
func (k *KeyReader) readEscape() (string, error) {
	b2, err := k.readByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		// Not a sequence: b2 is the next key press.
		k.pending = append(k.pending, b2)
		return "escape", nil
	}

	b3, err := k.readByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// ESC [ <digits> ~
	var num []byte
	b := b3
	for b >= '0' && b <= '9' {
		num = append(num, b)
		if b, err = k.readByte(); err != nil {
			return "", err
		}
	}
	if b != '~' {
		return "", nil
	}
	switch string(num) {
	case "15":
		return "f5", nil
	case "20":
		return "f9", nil
	}
	return "", nil
}

// LineReader reads one command per line, for piped or non-terminal input
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next trimmed, lower-cased line
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MakeRaw puts f into raw mode and returns the function that restores it
func MakeRaw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}
