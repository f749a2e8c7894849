// Package export hands the navigation model to a static site generator by
// writing the generator's own configuration format.
package export

import "git.home.luguber.info/inful/sitenav/internal/foundation/normalization"

// Format selects the target generator.
type Format string

const (
	FormatVitePress Format = "vitepress"
	FormatHugo      Format = "hugo"
	FormatYAML      Format = "yaml"
)

var formatNormalizer = normalization.NewEnumNormalizer("export format", map[string]Format{
	"vitepress": FormatVitePress,
	"vp":        FormatVitePress,
	"hugo":      FormatHugo,
	"hextra":    FormatHugo,
	"yaml":      FormatYAML,
	"yml":       FormatYAML,
}, "")

// ParseFormat resolves raw to a known format.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.Parse(raw)
}

// Formats lists accepted format names.
func Formats() []string { return formatNormalizer.ValidValues() }
