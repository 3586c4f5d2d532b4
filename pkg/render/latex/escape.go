// Package latex provides the total escaping function guarding the render
// pipeline against LaTeX injection. Every user-controlled string passes
// through Escape exactly once before it may enter a render model.
package latex

import "strings"

// sequences maps each LaTeX control character to its escaped form. The
// replacement set is closed under decoding: a backslash only ever appears
// in escaped output as the head of one of these sequences, which is what
// makes Unescape a total inverse.
var sequences = [...]struct {
	char    rune
	escaped string
}{
	{'\\', `\textbackslash{}`},
	{'^', `\textasciicircum{}`},
	{'~', `\textasciitilde{}`},
	{'{', `\{`},
	{'}', `\}`},
	{'$', `\$`},
	{'&', `\&`},
	{'#', `\#`},
	{'%', `\%`},
	{'_', `\_`},
}

// Escape returns s with every LaTeX control character replaced by its
// escaped form. It is pure, total, and deterministic; the output contains
// no unescaped occurrence of \ { } $ & # ^ _ ~ % and
// Unescape(Escape(s)) == s for every s.
func Escape(s string) string {
	if !strings.ContainsAny(s, `\{}$&#^_~%`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		if escaped, ok := escapeRune(r); ok {
			b.WriteString(escaped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape inverts Escape. No sequence is a prefix of another, so a single
// non-overlapping replacement pass decodes unambiguously.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

var unescaper = func() *strings.Replacer {
	pairs := make([]string, 0, len(sequences)*2)
	for _, seq := range sequences {
		pairs = append(pairs, seq.escaped, string(seq.char))
	}
	return strings.NewReplacer(pairs...)
}()

// ContainsUnescaped reports whether s holds a LaTeX control character that
// is not part of a recognised escape sequence. The renderer uses it as a
// defensive check before handing content to the compiler.
func ContainsUnescaped(s string) bool {
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\\' {
			if n := sequenceAt(s[i:]); n > 0 {
				i += n
				continue
			}
			return true
		}
		if isControl(rune(c)) {
			return true
		}
		i++
	}
	return false
}

func escapeRune(r rune) (string, bool) {
	for _, seq := range sequences {
		if seq.char == r {
			return seq.escaped, true
		}
	}
	return "", false
}

func isControl(r rune) bool {
	_, ok := escapeRune(r)
	return ok
}

// sequenceAt returns the length of the escape sequence at the start of s,
// or 0 when s does not begin with one.
func sequenceAt(s string) int {
	for _, seq := range sequences {
		if strings.HasPrefix(s, seq.escaped) {
			return len(seq.escaped)
		}
	}
	return 0
}
