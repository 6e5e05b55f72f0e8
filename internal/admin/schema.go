package admin

import (
	"strings"

	"github.com/nexatech/nexatech-web/internal/content/domain"
)

// Kind selects how a field is rendered and parsed.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindURL      Kind = "url"
	KindList     Kind = "list"
	KindImage    Kind = "image"
)

type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Required    bool
	Options     []string
	Placeholder string
	Help        string
	// Immutable fields are shown disabled when editing. The value from the
	// URL path is used instead of whatever the browser sends.
	Immutable bool
	// Multiline list fields are edited one item per line.
	Multiline bool
	Wide      bool
	Default   string
}

// Values holds raw form input keyed by field name.
type Values map[string]string

// Schema describes how one entity type maps to and from the admin form.
type Schema[T any] struct {
	Singular string
	Plural   string
	// Empty is shown when the collection has no entries.
	Empty  string
	Fields []Field
	Key    func(T) string
	Values func(T) Values
	Build  func(Values) (T, error)
	Row    func(T) Row
}

// Row is the card shown for one entity in a management list.
type Row struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Image       string
	Badge       string
	Color       domain.Color
	Tags        []string
}

// FieldView is a Field with its current value, ready for the form template.
type FieldView struct {
	Field
	Value    string
	Disabled bool
}

// ViewMeta names a management view in templates.
type ViewMeta struct {
	Singular string
	Plural   string
	Base     string
	Empty    string
}

// SplitList splits raw list input on commas and newlines, trims each item
// and drops empty ones. Order is preserved and duplicates are kept.
func SplitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitLines splits raw list input on newlines only, so items may contain
// commas. Items are trimmed and empty lines dropped.
func SplitLines(raw string) []string {
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitList parses raw input for this field. Multiline fields split on
// newlines, the rest on commas and newlines.
func (f Field) SplitList(raw string) []string {
	if f.Multiline {
		return SplitLines(raw)
	}
	return SplitList(raw)
}

// JoinList renders a list the way the field is edited.
func (f Field) JoinList(items []string) string {
	if f.Multiline {
		return strings.Join(items, "\n")
	}
	return strings.Join(items, ", ")
}

func (s Schema[T]) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// keyField is the name of the immutable slug field.
func (s Schema[T]) keyField() string {
	for _, f := range s.Fields {
		if f.Immutable {
			return f.Name
		}
	}
	return ""
}

// join is a helper for Values implementations.
func (s Schema[T]) join(name string, items []string) string {
	f, _ := s.field(name)
	return f.JoinList(items)
}

// split parses the named list field from form values.
func (s Schema[T]) split(v Values, name string) []string {
	f, _ := s.field(name)
	return f.SplitList(v[name])
}

// blank returns form values for a new entity.
func (s Schema[T]) blank() Values {
	v := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v[f.Name] = f.Default
	}
	return v
}

// views pairs each field with its value for rendering.
func (s Schema[T]) views(v Values, editing bool) []FieldView {
	out := make([]FieldView, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, FieldView{
			Field:    f,
			Value:    v[f.Name],
			Disabled: editing && f.Immutable,
		})
	}
	return out
}

// missing returns the label of the first required field left empty, or "".
// Image fields count as filled when a file accompanies the form.
func (s Schema[T]) missing(v Values, files map[string]bool) string {
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if f.Kind == KindImage && files[f.Name] {
			continue
		}
		if strings.TrimSpace(v[f.Name]) == "" {
			return f.Label
		}
	}
	return ""
}

func enumNames[E interface{ String() string }](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
