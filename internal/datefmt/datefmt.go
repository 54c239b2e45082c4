// Package datefmt formats and parses dates with date patterns.
//
// Two pattern styles are supported: strftime style ("%Y-%m-%d") when the pattern contains a "%", and
// letter patterns ("yyyy-MM-dd'T'HH:mm:ss") otherwise, where text between single quotes is literal.
// Letter patterns are translated to strftime directives, and both styles are handled by timefmt.
package datefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

// Pattern formats and parses dates using a date pattern.
type Pattern struct {
	pattern    string
	directives string
}

// validationTime is formatted and parsed back to check that a pattern is supported in both directions.
var validationTime = time.Date(2024, time.March, 7, 15, 4, 5, 123456000, time.UTC)

// Compile translates and validates a date pattern.
func Compile(pattern string) (*Pattern, error) {
	directives, err := Strftime(pattern)
	if err != nil {
		return nil, err
	}
	if _, err := timefmt.Parse(timefmt.Format(validationTime, directives), directives); err != nil {
		return nil, fmt.Errorf("unsupported date pattern '%s': %w", pattern, err)
	}
	return &Pattern{pattern: pattern, directives: directives}, nil
}

// String returns the pattern as given to Compile.
func (p *Pattern) String() string {
	return p.pattern
}

// Directives returns the strftime directives the pattern was translated to.
func (p *Pattern) Directives() string {
	return p.directives
}

func (p *Pattern) Format(t time.Time) string {
	return timefmt.Format(t, p.directives)
}

// Parse parses a date in the location, unless the pattern carries its own zone.
func (p *Pattern) Parse(value string, loc *time.Location) (time.Time, error) {
	return timefmt.ParseInLocation(value, p.directives, loc)
}

// Strftime translates a date pattern into strftime directives. Strftime style patterns are returned unchanged.
func Strftime(pattern string) (string, error) {
	if strings.Contains(pattern, "%") {
		return pattern, nil
	}
	return letterDirectives(pattern)
}

// letter patterns, longest first for each letter.
var letters = map[byte][]struct {
	count     int
	directive string
}{
	'y': {{4, "%Y"}, {2, "%y"}, {1, "%Y"}},
	'Y': {{4, "%Y"}, {2, "%y"}, {1, "%Y"}},
	'M': {{4, "%B"}, {3, "%b"}, {1, "%m"}},
	'd': {{1, "%d"}},
	'D': {{1, "%j"}},
	'H': {{1, "%H"}},
	'h': {{1, "%I"}},
	'm': {{1, "%M"}},
	's': {{1, "%S"}},
	'S': {{6, "%f"}},
	'a': {{1, "%p"}},
	'E': {{4, "%A"}, {1, "%a"}},
	'z': {{1, "%Z"}},
	'Z': {{1, "%z"}},
	'X': {{3, "%:z"}, {1, "%z"}},
	'x': {{3, "%:z"}, {1, "%z"}},
}

func letterDirectives(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return "", fmt.Errorf("unterminated quote in pattern '%s'", pattern)
			}
			if end == 0 {
				b.WriteByte('\'')
			} else {
				b.WriteString(strings.ReplaceAll(pattern[i+1:i+1+end], "%", "%%"))
			}
			i += end + 2
			continue
		}
		directives, ok := letters[c]
		if !ok {
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				return "", fmt.Errorf("unsupported pattern letter '%c' in pattern '%s'", c, pattern)
			}
			b.WriteByte(c)
			i++
			continue
		}
		n := 1
		for i+n < len(pattern) && pattern[i+n] == c {
			n++
		}
		directive := ""
		for _, d := range directives {
			if n >= d.count {
				directive = d.directive
				break
			}
		}
		if directive == "" {
			return "", fmt.Errorf("unsupported pattern letter count '%s' in pattern '%s'", pattern[i:i+n], pattern)
		}
		b.WriteString(directive)
		i += n
	}
	return b.String(), nil
}
