// Package textscan holds the best-effort heuristics that read meaning out of
// free-form rule text. None of these functions fail; a miss returns the zero
// value.
package textscan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// LineBreak replaces newlines in rendered text
	LineBreak = "<br>"

	sourceMarker = "Source:"
	sourceOpen   = `<span style="color: #888; font-style: italic;">`
	sourceClose  = `</span>`
)

var (
	usesPhrase    = regexp.MustCompile(`(?i)use this feature (once|twice|thrice|\d+ times?)`)
	rechargeWords = regexp.MustCompile(`Short Rest|Long Rest`)
	insertRun     = regexp.MustCompile(`"insert":"([^"]+)"`)
	digits        = regexp.MustCompile(`\d+`)
)

// Recharge cadences
const (
	RechargeShortRest = "Short Rest"
	RechargeLongRest  = "Long Rest"
)

// Newlines converts every newline to a line break tag
func Newlines(s string) string {
	return strings.ReplaceAll(s, "\n", LineBreak)
}

// StyleSource mutes each "Source:" citation through to the next line break
// or the end of the text
func StyleSource(s string) string {
	if !strings.Contains(s, sourceMarker) {
		return s
	}

	var b strings.Builder
	for {
		i := strings.Index(s, sourceMarker)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s = s[i:]

		end := strings.Index(s[len(sourceMarker):], LineBreak)
		if end < 0 {
			end = len(s)
		} else {
			end += len(sourceMarker)
		}
		b.WriteString(sourceOpen)
		b.WriteString(s[:end])
		b.WriteString(sourceClose)
		s = s[end:]
	}
}

// Describe prepares a description for display: newlines become line breaks
// and source citations are muted
func Describe(s string) string {
	return StyleSource(Newlines(s))
}

// UsesPhrase finds "use this feature once|twice|thrice|N times" and returns
// the count. ok is false when the phrase is absent.
func UsesPhrase(s string) (uses int, ok bool) {
	m := usesPhrase.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	switch word := strings.ToLower(m[1]); word {
	case "once":
		return 1, true
	case "twice":
		return 2, true
	case "thrice":
		return 3, true
	default:
		n, err := strconv.Atoi(digits.FindString(word))
		if err != nil {
			return 0, false
		}
		return n, true
	}
}

// Recharge returns the first rest cadence named in the text, or ""
func Recharge(s string) string {
	switch rechargeWords.FindString(s) {
	case RechargeShortRest:
		return RechargeShortRest
	case RechargeLongRest:
		return RechargeLongRest
	}
	return ""
}

// RichText extracts the literal text runs from an encoded array of insert
// operations. Line breaks in the runs become tags. Content that does not
// decode is scanned for quoted insert strings instead.
func RichText(encoded string) string {
	if gjson.Valid(encoded) {
		if ops := gjson.Parse(encoded); ops.IsArray() {
			var runs []string
			for _, op := range ops.Array() {
				if insert := op.Get("insert"); insert.Type == gjson.String {
					runs = append(runs, insert.Str)
				}
			}
			return JoinRuns(runs)
		}
	}

	var b strings.Builder
	for _, m := range insertRun.FindAllStringSubmatch(encoded, -1) {
		b.WriteString(m[1])
	}
	return strings.ReplaceAll(b.String(), `\n`, LineBreak)
}

// JoinRuns concatenates decoded text runs
func JoinRuns(runs []string) string {
	return Newlines(strings.Join(runs, ""))
}
