// Package decode implements the primitive value decoders for OFX leaf
// content: XML entity references, signed decimal numbers, Y/N booleans and
// OFX datetimes. All decoders are pure functions over raw leaf text.
package decode

import (
	"math"
	"strings"
)

var entities = map[string]byte{
	"quot": '"',
	"amp":  '&',
	"apos": '\'',
	"lt":   '<',
	"gt":   '>',
}

// Entities replaces the five standard named XML character references in s.
// A reference is recognized only if its terminating ';' appears within five
// characters of the '&'. Unrecognized or unterminated references are copied
// through verbatim. When s contains no '&' it is returned unchanged without
// allocating.
func Entities(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for pos < len(s) {
		ch := s[pos]
		if ch == '&' {
			entity := ""
			foundEnd := false
			for i := 0; i < 5 && pos+1+i < len(s); i++ {
				if s[pos+1+i] == ';' {
					foundEnd = true
					break
				}
				entity = s[pos+1 : pos+2+i]
			}
			if foundEnd && entity != "" {
				if repl, ok := entities[entity]; ok {
					b.WriteByte(repl)
					pos += len(entity) + 2
					continue
				}
			}
		}
		b.WriteByte(ch)
		pos++
	}
	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// Number parses an OFX decimal: optional sign, digits with at most one
// decimal point, surrounded by optional whitespace. There is no exponent
// form. The integer accumulation is overflow-guarded, so values whose
// digits exceed the guard fail rather than silently losing precision.
func Number(text string) (float64, bool) {
	pos := skipSpace(text, 0)
	if pos >= len(text) {
		return 0, false
	}
	sign := 1.0
	if text[pos] == '-' || text[pos] == '+' {
		if text[pos] == '-' {
			sign = -1.0
		}
		pos++
		if pos >= len(text) {
			return 0, false
		}
	}

	var mantissa int64
	fracDigits := 0
	seenPoint := false
	for pos < len(text) {
		ch := text[pos]
		switch {
		case ch == '.':
			if seenPoint {
				return 0, false
			}
			seenPoint = true
		case ch >= '0' && ch <= '9':
			d := int64(ch - '0')
			if mantissa > (math.MaxInt64-d)/10 {
				return 0, false
			}
			mantissa = mantissa*10 + d
			if seenPoint {
				fracDigits++
			}
		default:
			if skipSpace(text, pos) < len(text) {
				return 0, false
			}
			return sign * float64(mantissa) / math.Pow10(fracDigits), true
		}
		pos++
	}
	return sign * float64(mantissa) / math.Pow10(fracDigits), true
}

// Bool parses an OFX boolean: a single Y or N, case-insensitive, surrounded
// by optional whitespace.
func Bool(text string) (bool, bool) {
	pos := skipSpace(text, 0)
	if pos >= len(text) {
		return false, false
	}
	var val bool
	switch text[pos] {
	case 'Y', 'y':
		val = true
	case 'N', 'n':
		val = false
	default:
		return false, false
	}
	if skipSpace(text, pos+1) < len(text) {
		return false, false
	}
	return val, true
}

// digits parses exactly width digit characters of s starting at pos,
// accumulating into an overflow-guarded int. A negative width means
// unbounded: consume digits until the first non-digit, requiring at least
// one. It returns the number of digits consumed, zero meaning failure.
func digits(s string, pos, width int) (int, int) {
	val := 0
	end := len(s)
	if width >= 0 {
		if pos+width > len(s) {
			return 0, 0
		}
		end = pos + width
	}
	i := 0
	for pos+i < end {
		ch := s[pos+i]
		if ch < '0' || ch > '9' {
			if width >= 0 || i == 0 {
				return 0, 0
			}
			break
		}
		prev := val
		val = val*10 + int(ch-'0')
		if val < prev {
			return 0, 0
		}
		i++
	}
	return val, i
}
