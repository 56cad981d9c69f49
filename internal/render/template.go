package render

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Mode selects how placeholders without a value are handled
type Mode int

const (
	// Tolerant leaves unknown placeholders and stray dollar signs verbatim
	Tolerant Mode = iota
	// Strict fails on the first placeholder that has no value
	Strict
)

// String returns the mode name
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "tolerant"
}

// TokenType represents the type of a template token
type TokenType int

const (
	TokenText TokenType = iota
	// TokenEscape is "$$", rendered as a single "$"
	TokenEscape
	// TokenPlaceholder is "$name" or "${name}"
	TokenPlaceholder
	// TokenInvalid is a "$" not followed by an identifier
	TokenInvalid
)

// Token is one lexical unit of a template
type Token struct {
	Type TokenType
	// Name is the placeholder name for TokenPlaceholder
	Name string
	// Raw is the exact source text of the token
	Raw string
	// Offset is the byte offset of the token in the source
	Offset int
}

// placeholderRegex submatches, in order: escape, bare name, braced name,
// invalid
var placeholderRegex = regexp.MustCompile(`\$(?:(\$)|([_A-Za-z][_A-Za-z0-9]*)|\{([_A-Za-z][_A-Za-z0-9]*)\}|())`)

// Template is a parsed document with named placeholders
type Template struct {
	source string
	tokens []Token
}

// ParseTemplate tokenizes template text. Parsing never fails; malformed
// placeholders surface at render time in strict mode.
func ParseTemplate(source string) *Template {
	return &Template{source: source, tokens: tokenize(source)}
}

// LoadTemplate reads and parses a template file
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingFilef("Template file not found: %s", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeRender, "Error reading template file: %s", path)
	}
	return ParseTemplate(string(data)), nil
}

func tokenize(input string) []Token {
	var tokens []Token
	lastEnd := 0

	for _, m := range placeholderRegex.FindAllStringSubmatchIndex(input, -1) {
		if m[0] > lastEnd {
			tokens = append(tokens, Token{Type: TokenText, Raw: input[lastEnd:m[0]], Offset: lastEnd})
		}

		tok := Token{Raw: input[m[0]:m[1]], Offset: m[0]}
		switch {
		case m[2] >= 0:
			tok.Type = TokenEscape
		case m[4] >= 0:
			tok.Type = TokenPlaceholder
			tok.Name = input[m[4]:m[5]]
		case m[6] >= 0:
			tok.Type = TokenPlaceholder
			tok.Name = input[m[6]:m[7]]
		default:
			tok.Type = TokenInvalid
		}
		tokens = append(tokens, tok)
		lastEnd = m[1]
	}

	if lastEnd < len(input) {
		tokens = append(tokens, Token{Type: TokenText, Raw: input[lastEnd:], Offset: lastEnd})
	}
	return tokens
}

// Tokens returns the parsed tokens
func (t *Template) Tokens() []Token {
	return t.tokens
}

// Placeholders returns the distinct placeholder names, sorted
func (t *Template) Placeholders() []string {
	seen := map[string]bool{}
	var names []string
	for _, tok := range t.tokens {
		if tok.Type == TokenPlaceholder && !seen[tok.Name] {
			seen[tok.Name] = true
			names = append(names, tok.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Unresolved returns the placeholder names with no entry in values, sorted
func (t *Template) Unresolved(values map[string]string) []string {
	var missing []string
	for _, name := range t.Placeholders() {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Execute substitutes values into the template. Values are inserted as-is
// and never rescanned for placeholders.
func (t *Template) Execute(values map[string]string, mode Mode) (string, error) {
	var b strings.Builder
	b.Grow(len(t.source))

	for _, tok := range t.tokens {
		switch tok.Type {
		case TokenText:
			b.WriteString(tok.Raw)
		case TokenEscape:
			b.WriteByte('$')
		case TokenPlaceholder:
			v, ok := values[tok.Name]
			if !ok {
				if mode == Strict {
					line, col := t.position(tok.Offset)
					return "", errors.Renderf("Error filling template: no value for placeholder %q", tok.Name).
						WithMeta("line", line).
						WithMeta("column", col)
				}
				b.WriteString(tok.Raw)
				continue
			}
			b.WriteString(v)
		case TokenInvalid:
			if mode == Strict {
				line, col := t.position(tok.Offset)
				return "", errors.Renderf("Error filling template: invalid placeholder in line %d, col %d", line, col).
					WithMeta("line", line).
					WithMeta("column", col)
			}
			b.WriteString(tok.Raw)
		}
	}
	return b.String(), nil
}

// position converts a byte offset into a 1-based line and column
func (t *Template) position(offset int) (line, col int) {
	before := t.source[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndex(before, "\n")
	return line, col
}
