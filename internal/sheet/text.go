package sheet

import "strings"

// Text is a localized text field as exported from the game data.
// It may contain markup macros such as <Emphasis>, <If(...)> or <SoftHyphen/>.
type Text string

const softHyphen = '\u00ad'

// ExtractText returns the display text: markup macros and soft hyphens are
// removed and runs of whitespace are collapsed to a single space.
func (t Text) ExtractText() string {
	var b strings.Builder
	b.Grow(len(t))

	depth := 0
	for _, r := range string(t) {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth > 0, r == softHyphen:
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (t Text) String() string {
	return t.ExtractText()
}
