package isg

import "strings"

const (
	beginOfHead = "begin_of_head"
	endOfHead   = "end_of_head"
)

type tokenKind uint8

const (
	tokenComment tokenKind = iota
	tokenBeginOfHead
	tokenEndOfHead
	tokenAssign
	tokenDataRow
)

// token is one logical line of an ISG document.
type token struct {
	kind tokenKind
	line int // 1-based source line of the first line of the token

	// tokenAssign
	key string // trimmed label
	val string // trimmed value
	raw string // untrimmed text after the separator

	// tokenComment / tokenDataRow
	text string
}

// tokenize splits a document into a comment token, header assign
// tokens bracketed by the begin/end markers, and data row tokens. The
// comment token is emitted only when a comment block exists.
func tokenize(input string) ([]token, error) {
	lines := splitLines(input)

	begin := -1
	for i, l := range lines {
		if strings.HasPrefix(l, beginOfHead) {
			begin = i
			break
		}
	}
	if begin < 0 {
		return nil, ErrMissingBeginOfHead
	}

	var toks []token
	if begin > 0 {
		toks = append(toks, token{
			kind: tokenComment,
			line: 1,
			text: strings.Join(lines[:begin], "\n"),
		})
	}
	toks = append(toks, token{kind: tokenBeginOfHead, line: begin + 1})

	end := -1
	for i := begin + 1; i < len(lines); i++ {
		l := lines[i]
		if strings.HasPrefix(l, endOfHead) {
			end = i
			break
		}
		key, sep, raw := splitAssign(l)
		if sep == 0 {
			return nil, &MissingSeparatorError{Line: i + 1}
		}
		toks = append(toks, token{
			kind: tokenAssign,
			line: i + 1,
			key:  key,
			val:  strings.TrimSpace(raw),
			raw:  raw,
		})
	}
	if end < 0 {
		return nil, ErrMissingEndOfHead
	}
	toks = append(toks, token{kind: tokenEndOfHead, line: end + 1})

	for i := end + 1; i < len(lines); i++ {
		toks = append(toks, token{kind: tokenDataRow, line: i + 1, text: lines[i]})
	}
	return toks, nil
}

// splitAssign splits a header line at its first `:`, falling back to
// the first `=`. sep is 0 when neither separator occurs.
func splitAssign(line string) (key string, sep byte, raw string) {
	if k, v, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(k), ':', v
	}
	if k, v, ok := strings.Cut(line, "="); ok {
		return strings.TrimSpace(k), '=', v
	}
	return "", 0, ""
}

// splitLines splits on newlines, tolerating CRLF endings and dropping
// the empty trailer a final newline produces.
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
