package site

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Logo is the navigation bar logo. A logo with only Src is written in the
// short string form.
type Logo struct {
	Src   string `yaml:"src,omitempty" json:"src,omitempty"`
	Light string `yaml:"light,omitempty" json:"light,omitempty"`
	Dark  string `yaml:"dark,omitempty" json:"dark,omitempty"`
	Alt   string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

type plainLogo Logo

// IsZero reports whether no image is configured.
func (l Logo) IsZero() bool { return l.Src == "" && l.Light == "" && l.Dark == "" }

// ForScheme returns the image for the light or dark color scheme, falling
// back to Src.
func (l Logo) ForScheme(dark bool) string {
	if dark && l.Dark != "" {
		return l.Dark
	}
	if !dark && l.Light != "" {
		return l.Light
	}
	if l.Src != "" {
		return l.Src
	}
	if l.Light != "" {
		return l.Light
	}
	return l.Dark
}

func (l Logo) shortForm() bool {
	return l.Src != "" && l.Light == "" && l.Dark == "" && l.Alt == ""
}

// UnmarshalYAML accepts either a path string or a mapping.
func (l *Logo) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = Logo{Src: value.Value}
		return nil
	}
	if value.Kind == yaml.MappingNode {
		if err := knownKeys(value, "logo", "src", "light", "dark", "alt"); err != nil {
			return err
		}
	}
	var p plainLogo
	if err := value.Decode(&p); err != nil {
		return err
	}
	*l = Logo(p)
	return nil
}

// MarshalYAML writes the short form when possible.
func (l Logo) MarshalYAML() (any, error) {
	if l.shortForm() {
		return l.Src, nil
	}
	return plainLogo(l), nil
}

// MarshalJSON mirrors MarshalYAML.
func (l Logo) MarshalJSON() ([]byte, error) {
	if l.shortForm() {
		return json.Marshal(l.Src)
	}
	return json.Marshal(plainLogo(l))
}
