package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type partKind uint8

const (
	layoutPart  partKind = iota // rendered with time.Time.AppendFormat
	literalPart                 // copied as is
	numberPart                  // a zero-padded calendar field
)

// field selects the value of a numberPart
type field uint8

const (
	fieldDay field = iota
	fieldYearDay
	fieldHour
	fieldHour12
	fieldMinute
	fieldSecond
	fieldMillis
)

type part struct {
	kind  partKind
	text  string
	field field
	width int
}

// DateFormat is a compiled display.date.format pattern
type DateFormat struct {
	pattern string
	parts   []part
}

// CompileDateFormat compiles a SimpleDateFormat style pattern such as
// "dd-MM-yyyy HH:mm:ss.SSS". A pattern that contains the Go reference
// year 2006 is used as a Go time layout instead.
//
// Supported letters: y M d D H h m s S a E z Z X. Text inside single
// quotes is literal, and two single quotes in a row stand for one quote.
// Any other ASCII letter is an error.
func CompileDateFormat(pattern string) (*DateFormat, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New("empty date format")
	}
	f := &DateFormat{pattern: pattern}
	if strings.Contains(pattern, "2006") {
		f.parts = []part{{kind: layoutPart, text: pattern}}
		return f, nil
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		c := runes[i]

		if c == '\'' {
			lit, next, err := quoted(runes, i)
			if err != nil {
				return nil, err
			}
			f.addLiteral(lit)
			i = next
			continue
		}

		if !isPatternLetter(c) {
			f.addLiteral(string(c))
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}
		p, err := token(c, n)
		if err != nil {
			return nil, err
		}
		f.add(p)
		i += n
	}
	return f, nil
}

// Pattern returns the pattern the format was compiled from
func (f *DateFormat) Pattern() string {
	return f.pattern
}

// AppendFormat appends t rendered with the format to dst
func (f *DateFormat) AppendFormat(dst []byte, t time.Time) []byte {
	for _, p := range f.parts {
		switch p.kind {
		case literalPart:
			dst = append(dst, p.text...)
		case layoutPart:
			dst = t.AppendFormat(dst, p.text)
		case numberPart:
			dst = appendPadded(dst, fieldValue(t, p.field), p.width)
		}
	}
	return dst
}

// Format returns t rendered with the format
func (f *DateFormat) Format(t time.Time) string {
	return string(f.AppendFormat(make([]byte, 0, 32), t))
}

func (f *DateFormat) addLiteral(s string) {
	if n := len(f.parts); n > 0 && f.parts[n-1].kind == literalPart {
		f.parts[n-1].text += s
		return
	}
	f.parts = append(f.parts, part{kind: literalPart, text: s})
}

// add appends p, joining layout tokens unless two numeric tokens would
// touch and read as a different token ("1" then "5" is not "15").
func (f *DateFormat) add(p part) {
	n := len(f.parts)
	if p.kind == layoutPart && n > 0 && f.parts[n-1].kind == layoutPart {
		prev := f.parts[n-1].text
		if !(isDigit(prev[len(prev)-1]) && isDigit(p.text[0])) {
			f.parts[n-1].text += p.text
			return
		}
	}
	f.parts = append(f.parts, p)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isPatternLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// quoted reads the quoted literal that starts at runes[start]
func quoted(runes []rune, start int) (string, int, error) {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, nil
	}
	var lit strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			lit.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			lit.WriteRune('\'')
			i++
			continue
		}
		return lit.String(), i + 1, nil
	}
	return "", 0, errors.Errorf("unterminated quote at position %d", start)
}

func layout(s string) part {
	return part{kind: layoutPart, text: s}
}

func number(f field, width int) part {
	return part{kind: numberPart, field: f, width: width}
}

// padded returns the Go token for widths Go can render, else a number part
func padded(f field, n int, one, two string) part {
	switch {
	case n == 1 && one != "":
		return layout(one)
	case n == 2 && two != "":
		return layout(two)
	default:
		return number(f, n)
	}
}

func token(c rune, n int) (part, error) {
	switch c {
	case 'y':
		if n == 2 {
			return layout("06"), nil
		}
		return layout("2006"), nil
	case 'M':
		switch {
		case n == 1:
			return layout("1"), nil
		case n == 2:
			return layout("01"), nil
		case n == 3:
			return layout("Jan"), nil
		default:
			return layout("January"), nil
		}
	case 'd':
		return padded(fieldDay, n, "2", "02"), nil
	case 'D':
		if n == 3 {
			return layout("002"), nil
		}
		return number(fieldYearDay, n), nil
	case 'H':
		return padded(fieldHour, n, "", "15"), nil
	case 'h':
		return padded(fieldHour12, n, "3", "03"), nil
	case 'm':
		return padded(fieldMinute, n, "4", "04"), nil
	case 's':
		return padded(fieldSecond, n, "5", "05"), nil
	case 'S':
		return number(fieldMillis, n), nil
	case 'a':
		return layout("PM"), nil
	case 'E':
		if n >= 4 {
			return layout("Monday"), nil
		}
		return layout("Mon"), nil
	case 'z':
		return layout("MST"), nil
	case 'Z':
		return layout("-0700"), nil
	case 'X':
		switch n {
		case 1:
			return layout("Z07"), nil
		case 2:
			return layout("Z0700"), nil
		default:
			return layout("Z07:00"), nil
		}
	}
	return part{}, errors.Errorf("unsupported pattern letter %q", c)
}

func fieldValue(t time.Time, f field) int {
	switch f {
	case fieldDay:
		return t.Day()
	case fieldYearDay:
		return t.YearDay()
	case fieldHour:
		return t.Hour()
	case fieldHour12:
		if h := t.Hour() % 12; h != 0 {
			return h
		}
		return 12
	case fieldMinute:
		return t.Minute()
	case fieldSecond:
		return t.Second()
	default:
		return t.Nanosecond() / int(time.Millisecond)
	}
}

// appendPadded appends v with leading zeros up to width digits
func appendPadded(dst []byte, v, width int) []byte {
	var digits [20]byte
	s := strconv.AppendInt(digits[:0], int64(v), 10)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}
