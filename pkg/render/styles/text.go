package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	labelSizeSmall = 11.0
	legendPad      = 4.0
)

// anchor normalizes a Text anchor to a valid SVG text-anchor value.
func anchor(t Text) string {
	switch t.Anchor {
	case "middle", "end":
		return t.Anchor
	default:
		return "start"
	}
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
