package diagfmt

import (
	"fmt"
	"strings"
)

// Style selects how error records are rendered.
type Style uint8

const (
	StyleDefault Style = iota
	StyleSimple
	StyleExtended
	StyleJSON
)

var styleNames = [...]string{
	StyleDefault:  "default",
	StyleSimple:   "simple",
	StyleExtended: "extended",
	StyleJSON:     "json",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// ParseStyle maps a display-style name onto a Style.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(name, n) {
			return Style(i), nil
		}
	}
	return StyleDefault, fmt.Errorf("unknown display style %q (want one of %s)", name, strings.Join(StyleNames(), ", "))
}

// StyleNames lists the accepted display-style names.
func StyleNames() []string {
	return append([]string(nil), styleNames[:]...)
}

// RenderOpts configures rendering of error records.
type RenderOpts struct {
	Style Style
	Limit int // line groups per record, 0 - без ограничения
	Color bool
}
