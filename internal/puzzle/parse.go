package puzzle

import (
	"strconv"
	"strings"
)

// Normalize converts CRLF line endings and trims surrounding whitespace.
func Normalize(input string) string {
	return strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
}

// Lines returns the trimmed, non-empty lines of input.
func Lines(input string) []string {
	raw := strings.Split(Normalize(input), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Block is a run of non-blank lines. Line is the 1-based position of its
// first line in the original input.
type Block struct {
	Line int
	Text string
}

// Blocks splits input on blank lines. Lines consisting only of whitespace
// count as blank. Lines inside a block are trimmed and contiguous, so line
// i of a block sits at Line+i in the input.
func Blocks(input string) []Block {
	var (
		blocks  []Block
		current []string
		start   int
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, Block{Line: start, Text: strings.Join(current, "\n")})
			current = nil
		}
	}
	for i, l := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			flush()
			continue
		}
		if len(current) == 0 {
			start = i + 1
		}
		current = append(current, l)
	}
	flush()
	return blocks
}

// ParseUint32 parses a base-10 unsigned 32-bit token.
func ParseUint32(day, line int, tok string) (uint32, error) {
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Day: day, Line: line, Msg: "invalid number " + strconv.Quote(tok), Err: err}
	}
	return uint32(n), nil
}

// ParseUint64 parses a base-10 unsigned 64-bit token.
func ParseUint64(day, line int, tok string) (uint64, error) {
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Day: day, Line: line, Msg: "invalid number " + strconv.Quote(tok), Err: err}
	}
	return n, nil
}

// Uint32s parses every whitespace-separated token of s.
func Uint32s(day, line int, s string) ([]uint32, error) {
	fields := strings.Fields(s)
	out := make([]uint32, 0, len(fields))
	for _, f := range fields {
		n, err := ParseUint32(day, line, f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// CutLabel splits "label: rest" and returns the trimmed rest. The label must
// match exactly.
func CutLabel(day, line int, s, label string) (string, error) {
	head, rest, ok := strings.Cut(s, ":")
	if !ok {
		return "", Errorf(day, line, "missing ':' after %q", label)
	}
	if strings.TrimSpace(head) != label {
		return "", Errorf(day, line, "expected %q, got %q", label, strings.TrimSpace(head))
	}
	return strings.TrimSpace(rest), nil
}
