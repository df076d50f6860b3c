package console

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"unicode"
)

// MaxTokenLength is the longest token Read returns. Longer words are clipped and the rest is dropped.
const MaxTokenLength = 64

// UserIO is everything the game needs from a terminal.
type UserIO interface {
	Print(text string)
	Read() (string, error)
}

// Std reads whitespace separated tokens from in and writes text to out unchanged.
type Std struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer
}

func NewStd(logger *slog.Logger, in io.Reader, out io.Writer) *Std {
	scanner := bufio.NewScanner(in)
	scanner.Split((&wordClipper{maxLength: MaxTokenLength}).split)

	return &Std{
		logger:  logger.With("component", "console"),
		scanner: scanner,
		out:     out,
	}
}

func (that *Std) Print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Warn("failed to write output", "error", err)
	}
}

// Read - blocks until the next token arrives. Returns io.EOF once the input is closed.
func (that *Std) Read() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}

// wordClipper splits like bufio.ScanWords but never asks the scanner for more than maxLength bytes of a word.
type wordClipper struct {
	maxLength int
	dropping  bool
}

func (that *wordClipper) split(data []byte, atEOF bool) (int, []byte, error) {
	skipped := 0
	if that.dropping {
		end := bytes.IndexFunc(data, unicode.IsSpace)
		if end < 0 {
			return len(data), nil, nil
		}

		that.dropping = false
		skipped = end
	}

	rest := data[skipped:]
	start := bytes.IndexFunc(rest, isNotSpace)
	if start < 0 {
		return len(data), nil, nil
	}

	word := rest[start:]
	if end := bytes.IndexFunc(word, unicode.IsSpace); end >= 0 {
		return skipped + start + end, that.clip(word[:end]), nil
	}

	if len(word) > that.maxLength {
		that.dropping = true

		return len(data), that.clip(word), nil
	}

	if atEOF {
		return len(data), word, nil
	}

	// wait for the end of the word
	return skipped + start, nil, nil
}

func (that *wordClipper) clip(word []byte) []byte {
	if len(word) > that.maxLength {
		return word[:that.maxLength]
	}

	return word
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// Ref hands out a UserIO it does not own. Whoever owns the terminal calls Release
// when it goes away, and every later Lock reports that it is gone.
type Ref struct {
	mu     sync.RWMutex
	userIO UserIO
}

func NewRef(userIO UserIO) *Ref {
	return &Ref{userIO: userIO}
}

func (that *Ref) Lock() (UserIO, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.userIO, that.userIO != nil
}

func (that *Ref) Release() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.userIO = nil
}
