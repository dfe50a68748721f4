package image

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	HEX_LINE_LIMIT = 1 << 20 // Longest accepted hex image line, in bytes.
)

// ReadHex reads a hex text image.
// Words are whitespace separated, with an optional 0x prefix. Text after a
// '#' or ';' is a comment.
func ReadHex(r io.Reader) (words []uint16, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, HEX_LINE_LIMIT)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		text := line
		if n := strings.IndexAny(text, "#;"); n >= 0 {
			text = text[:n]
		}

		for _, token := range strings.Fields(text) {
			digits := strings.TrimPrefix(strings.ToLower(token), "0x")
			var value uint64
			value, err = strconv.ParseUint(digits, 16, 16)
			if err != nil {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseWord(token)}
				return
			}
			words = append(words, uint16(value))
		}
	}

	err = scanner.Err()
	if err != nil {
		words = nil
		err = ErrSyntax{LineNo: lineno + 1, Err: err}
	}

	return
}

// WriteHex writes a hex text image, one word per line, annotated with its
// address and a comment.
func WriteHex(w io.Writer, words []uint16, comment func(pc int, word uint16) string) (err error) {
	bw := bufio.NewWriter(w)

	for pc, word := range words {
		line := fmt.Sprintf("%04x", word)
		if comment != nil {
			if text := comment(pc, word); len(text) != 0 {
				line = fmt.Sprintf("%s  ; %03d: %s", line, pc, text)
			}
		}
		_, err = fmt.Fprintln(bw, line)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
