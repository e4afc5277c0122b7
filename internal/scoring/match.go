package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// noRune stands in for a missing neighbor at the text edges.
const noRune rune = -1

// containsTerm reports whether term occurs in text as a whole word. Both
// text and term must already be lower-cased.
//
// Terms with a symbol edge ("c#", ".net") use a stricter rule: the
// neighboring characters must not be ASCII alphanumerics. An ordinary word
// boundary cannot anchor on a symbol, and the strict rule keeps ".net" from
// matching inside "asp.net". Everything else gets word-boundary semantics,
// so "api" does not match inside "capital".
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}

	strict := symbolEdged(term)
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)

	for from := 0; from+len(term) <= len(text); {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(term)

		var ok bool
		if strict {
			ok = !asciiAlnum(runeBefore(text, start)) && !asciiAlnum(runeAt(text, end))
		} else {
			ok = isWordRune(runeBefore(text, start)) != isWordRune(first) &&
				isWordRune(runeAt(text, end)) != isWordRune(last)
		}
		if ok {
			return true
		}
		from = start + 1
	}
	return false
}

func symbolEdged(term string) bool {
	if strings.HasPrefix(term, ".") {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(term)
	return !unicode.IsLetter(last) && !unicode.IsDigit(last)
}

func runeBefore(text string, i int) rune {
	if i <= 0 {
		return noRune
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return r
}

func runeAt(text string, i int) rune {
	if i >= len(text) {
		return noRune
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func asciiAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
