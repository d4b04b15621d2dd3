package decode

import "fmt"

// Datetime is a parsed OFX timestamp: calendar fields, milliseconds and a
// signed timezone offset in minutes. Month and Day are 1-based.
type Datetime struct {
	Year, Month, Day  int
	Hour, Minute, Sec int
	Millis            int
	TZOffsetMin       int
}

// String renders the timestamp as ISO-8601. A zero offset renders a
// trailing 'Z'; otherwise the suffix is ±HH:MM, shortened to ±HH when the
// minute component is zero. Milliseconds are not rendered.
func (d Datetime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Sec)
	if d.TZOffsetMin == 0 {
		return s + "Z"
	}
	offMin := d.TZOffsetMin
	if offMin < 0 {
		offMin = -offMin
	}
	offMin %= 60
	if offMin != 0 {
		return s + fmt.Sprintf("%+03d:%02d", d.TZOffsetMin/60, offMin)
	}
	return s + fmt.Sprintf("%+03d", d.TZOffsetMin/60)
}

// OFX renders the timestamp back into OFX wire form: YYYYMMDD when all
// time fields and the offset are zero, otherwise the full
// YYYYMMDDHHMMSS.mmm form with a bracketed hour offset when non-zero.
func (d Datetime) OFX() string {
	date := fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
	if d.Hour == 0 && d.Minute == 0 && d.Sec == 0 && d.Millis == 0 && d.TZOffsetMin == 0 {
		return date
	}
	s := date + fmt.Sprintf("%02d%02d%02d.%03d", d.Hour, d.Minute, d.Sec, d.Millis)
	if d.TZOffsetMin != 0 {
		s += fmt.Sprintf("[%+d]", d.TZOffsetMin/60)
	}
	return s
}

// ParseDatetime parses an OFX datetime. The accepted forms are YYYYMMDD,
// YYYYMMDDHHMMSS, and the latter optionally extended with exactly three
// fractional-second digits and a bracketed timezone such as [-5:EST].
// The bracketed hour magnitude is limited to 12. A fractional component
// after the hour is accepted only when its value is zero; the format
// leaves its unit (minutes versus fraction of an hour) unspecified, so
// non-zero values are rejected rather than guessed at.
func ParseDatetime(text string) (Datetime, bool) {
	var d Datetime
	if len(text) < 8 {
		return d, false
	}
	var n int
	if d.Year, n = digits(text, 0, 4); n == 0 || d.Year > 9999 {
		return d, false
	}
	if d.Month, n = digits(text, 4, 2); n == 0 || d.Month == 0 || d.Month > 12 {
		return d, false
	}
	if d.Day, n = digits(text, 6, 2); n == 0 || d.Day == 0 || d.Day > 31 {
		return d, false
	}
	switch {
	case len(text) >= 14:
		if d.Hour, n = digits(text, 8, 2); n == 0 || d.Hour > 23 {
			return d, false
		}
		if d.Minute, n = digits(text, 10, 2); n == 0 || d.Minute > 59 {
			return d, false
		}
		// Upper bound 60 tolerates leap seconds.
		if d.Sec, n = digits(text, 12, 2); n == 0 || d.Sec > 60 {
			return d, false
		}
		if len(text) >= 18 {
			if !parseDatetimeTail(text, &d) {
				return d, false
			}
		} else if len(text) > 14 {
			return d, false
		}
	case len(text) > 8:
		return d, false
	}
	return d, true
}

// parseDatetimeTail handles the optional .mmm fraction and the bracketed
// timezone suffix starting at offset 14.
func parseDatetimeTail(text string, d *Datetime) bool {
	i := 14
	if text[i] == '.' {
		i++
		var n int
		if d.Millis, n = digits(text, i, 3); n == 0 {
			return false
		}
		i += 3
	}
	i = skipSpace(text, i)
	if i >= len(text) {
		return true
	}
	if text[i] != '[' {
		return false
	}
	i = skipSpace(text, i+1)
	if i >= len(text) {
		return false
	}
	neg := false
	if text[i] == '-' || text[i] == '+' {
		neg = text[i] == '-'
		i++
		if i >= len(text) {
			return false
		}
	}
	hours, n := digits(text, i, -1)
	if n == 0 || hours > 12 {
		return false
	}
	d.TZOffsetMin = hours * 60
	i += n
	if i >= len(text) {
		return false
	}
	if text[i] == '.' {
		i++
		if i >= len(text) {
			return false
		}
		frac, n := digits(text, i, -1)
		if n == 0 || frac != 0 {
			return false
		}
		i += n
	}
	if neg {
		d.TZOffsetMin = -d.TZOffsetMin
	}
	i = skipSpace(text, i)
	if i >= len(text) {
		return false
	}
	if text[i] == ':' {
		// Timezone name, scanned but discarded.
		i++
		for i < len(text) && text[i] != ']' {
			i++
		}
		if i >= len(text) {
			return false
		}
	}
	if text[i] != ']' {
		return false
	}
	return skipSpace(text, i+1) >= len(text)
}
