// Package sitecopy holds the static marketing text of the public site.
package sitecopy

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexatech/nexatech-web/internal/content/domain"
)

//go:embed content.yaml
var defaultContent []byte

type Content struct {
	Site         Site          `yaml:"site"`
	Hero         Hero          `yaml:"hero"`
	Stats        []Stat        `yaml:"stats"`
	Features     []Card        `yaml:"features"`
	Testimonials []Testimonial `yaml:"testimonials"`
	About        About         `yaml:"about"`
	Contact      Contact       `yaml:"contact"`
	Analytics    Analytics     `yaml:"analytics"`
	Footer       Footer        `yaml:"footer"`
}

type Site struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Email   string `yaml:"email"`
}

type Hero struct {
	Headline     []string `yaml:"headline"`
	Subheadline  string   `yaml:"subheadline"`
	PrimaryCTA   string   `yaml:"primary_cta"`
	SecondaryCTA string   `yaml:"secondary_cta"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Card is a titled blurb tinted with a palette color.
type Card struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"`
	Color       domain.Color `yaml:"color"`
}

type Testimonial struct {
	Name     string       `yaml:"name"`
	Role     string       `yaml:"role"`
	Location string       `yaml:"location"`
	Avatar   string       `yaml:"avatar"`
	Review   string       `yaml:"review"`
	Rating   int          `yaml:"rating"`
	Color    domain.Color `yaml:"color"`
}

// Stars returns one entry per rating star, for ranging in templates.
func (t Testimonial) Stars() []struct{} { return make([]struct{}, t.Rating) }

type About struct {
	Mission []string `yaml:"mission"`
	Vision  []string `yaml:"vision"`
	Values  []Card   `yaml:"values"`
}

type ContactMethod struct {
	Title       string       `yaml:"title"`
	Value       string       `yaml:"value"`
	Link        string       `yaml:"link"`
	Description string       `yaml:"description"`
	Color       domain.Color `yaml:"color"`
}

type BusinessHours struct {
	Day   string `yaml:"day"`
	Hours string `yaml:"hours"`
}

type Contact struct {
	Methods  []ContactMethod `yaml:"methods"`
	Services []string        `yaml:"services"`
	Hours    []BusinessHours `yaml:"hours"`
}

type Metric struct {
	Label  string       `yaml:"label"`
	Value  string       `yaml:"value"`
	Change string       `yaml:"change"`
	Up     bool         `yaml:"up"`
	Color  domain.Color `yaml:"color"`
}

type Analytics struct {
	Metrics []Metric `yaml:"metrics"`
	Note    string   `yaml:"note"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
}

// Load decodes the embedded copy, then overlays the file at path when path
// is not empty. Keys missing from the override keep their embedded values.
func Load(path string) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(defaultContent, &c); err != nil {
		return nil, fmt.Errorf("decode embedded content: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if c.Site.Name == "" {
		return fmt.Errorf("content: site.name is required")
	}
	for _, t := range c.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("content: testimonial %q has rating %d, want 1-5", t.Name, t.Rating)
		}
	}
	return nil
}
