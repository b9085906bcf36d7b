package query

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/qlquery/qlquery/match"
)

// Token patterns, matched at the current position of the scanner
var (
	reTag        = regexp.MustCompile(`^[~\pL\pN\pM_\s:]+`)
	reUnary      = regexp.MustCompile(`^-`)
	reBinary     = regexp.MustCompile(`^[+\-*/]`)
	reRelational = regexp.MustCompile(`^(?:>=|<=|==|!=|>|<|=)`)
	reDigits     = regexp.MustCompile(`^\d+(?:\.\d+)?`)
	reWord       = regexp.MustCompile(`^[ \pL\pN\pM_]+`)
	reRegexp     = regexp.MustCompile(`^(?:[^/\\]|\\.)*`)
	reSingle     = regexp.MustCompile(`^(?:[^'\\]|\\.)*`)
	reDouble     = regexp.MustCompile(`^(?:[^"\\]|\\.)*`)
	reModifiers  = regexp.MustCompile(`^[cisld]*`)
	reText       = regexp.MustCompile(`^[^,)]+`)
	reDate       = regexp.MustCompile(`^\d{4}(?:-\d{1,2}(?:-\d{1,2})?)?`)
)

// lexer is a cursor over query string
//
// There is no separate tokenization pass: grammar rules try to match
// tokens at the current position, backtracking by resetting pos.
type lexer struct {
	name  string // used only for error reports.
	input string // the string being scanned.
	pos   int    // current position in the input.
}

func newLexer(name, input string) *lexer {
	return &lexer{name: name, input: input}
}

// index is position in runes, used for error messages
func (l *lexer) index() int {
	return utf8.RuneCountInString(l.input[:l.pos])
}

// errorf aborts parsing with syntax error at current position
func (l *lexer) errorf(format string, args ...interface{}) {
	panic(match.NewParseError(l.index(), format, args...))
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) rest() string {
	return l.input[l.pos:]
}

// space skips over spaces
func (l *lexer) space() {
	for !l.eof() && l.input[l.pos] == ' ' {
		l.pos++
	}
}

// accept advances past token if it comes next
func (l *lexer) accept(token string) bool {
	l.space()
	if strings.HasPrefix(l.rest(), token) {
		l.pos += len(token)
		return true
	}
	return false
}

// acceptRE advances past text matching re, match may be empty
func (l *lexer) acceptRE(re *regexp.Regexp) (string, bool) {
	l.space()
	loc := re.FindStringIndex(l.rest())
	if loc == nil {
		return "", false
	}
	matched := l.rest()[:loc[1]]
	l.pos += loc[1]
	return matched, true
}

func (l *lexer) expect(token string) {
	if !l.accept(token) {
		l.errorf("'%s' expected at index %d, but not found", token, l.index())
	}
}

func (l *lexer) expectRE(re *regexp.Regexp) string {
	matched, ok := l.acceptRE(re)
	if !ok {
		l.errorf("RE match expected at index %d, but not found", l.index())
	}
	return matched
}

// acceptDate matches YYYY, YYYY-MM or YYYY-MM-DD where year is not
// followed by another digit
func (l *lexer) acceptDate() (string, bool) {
	l.space()
	rest := l.rest()
	if len(rest) > 4 && rest[4] >= '0' && rest[4] <= '9' {
		return "", false
	}
	matched := reDate.FindString(rest)
	if matched == "" {
		return "", false
	}
	l.pos += len(matched)
	return matched, true
}

// extBody captures raw extension body up to the closing parenthesis,
// nested parentheses have to be balanced, backslash escapes next char
func (l *lexer) extBody() string {
	depth := 0
	i := l.pos

loop:
	for i < len(l.input) {
		switch l.input[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				break loop
			}
			depth--
		case '\\':
			i++
		}
		i++
	}

	if i >= len(l.input) {
		i = len(l.input)
		if depth != 0 {
			l.errorf("Unexpected end of string while parsing extension body")
		}
	}

	body := l.input[l.pos:i]
	l.pos = i
	return body
}

// unescape processes backslash escapes in quoted strings,
// unknown escapes are kept as is
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}

		i++
		switch c = s[i]; c {
		case '\\', '\'', '"':
			b.WriteByte(c)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '\n':
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteString("\\x")
		default:
			if c >= '0' && c <= '7' {
				v := int(c - '0')
				for n := 0; n < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; n++ {
					i++
					v = v*8 + int(s[i]-'0')
				}
				b.WriteByte(byte(v))
			} else {
				b.WriteByte('\\')
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}
