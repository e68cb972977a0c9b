// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"bytes"
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
)

// DefaultScratchSize bounds one rendered scalar or printed general name, terminator included.
const DefaultScratchSize = 2048

// timeLayout matches the classic "Nov 24 08:41:05 2025 GMT" certificate time text.
const timeLayout = "Jan _2 15:04:05.999999999 2006 GMT"

// scratch is the text rendering target of one Decode call. It is never shared
// between calls.
type scratch struct {
	buf   gc.Buffer
	limit int
}

// render resets the buffer, lets fn write into it and returns a copy of the
// first line, cut to at most limit-1 bytes on a rune boundary.
func (s *scratch) render(fn func(w gc.Buffer) error) (string, error) {
	s.buf.Reset()

	if err := fn(s.buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBufferRead, err)
	}

	line := s.buf.Bytes()
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if s.limit > 0 && len(line) > s.limit-1 {
		n := s.limit - 1
		for n > 0 && !utf8.RuneStart(line[n]) {
			n--
		}
		line = line[:n]
	}
	return string(line), nil
}

// writeSerial writes n as uppercase hex octets, "-" prefixed when negative.
func writeSerial(w gc.Buffer, n *big.Int) error {
	if n.Sign() < 0 {
		w.WriteByte('-')
	}

	octets := new(big.Int).Abs(n).Bytes()
	if len(octets) == 0 {
		octets = []byte{0}
	}

	_, err := fmt.Fprintf(w, "%X", octets)
	return err
}

func writeTime(w gc.Buffer, t time.Time) error {
	_, err := w.WriteString(t.UTC().Format(timeLayout))
	return err
}
