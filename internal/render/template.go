package render

// Template selects one of the four supported visual styles.
type Template string

const (
	TemplateModern   Template = "modern"
	TemplateClassic  Template = "classic"
	TemplateCreative Template = "creative"
	TemplateMinimal  Template = "minimal"
)

// IsValid checks if the Template is a valid value.
func (t Template) IsValid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateCreative, TemplateMinimal:
		return true
	}
	return false
}

// String returns the string representation of Template.
func (t Template) String() string {
	return string(t)
}

// AllTemplates returns all valid Template values.
func AllTemplates() []Template {
	return []Template{TemplateModern, TemplateClassic, TemplateCreative, TemplateMinimal}
}

// ParseTemplate maps a selector string to a Template. Unrecognized values
// fall back to modern; that is the documented default, not an error.
func ParseTemplate(s string) Template {
	t := Template(s)
	if !t.IsValid() {
		return TemplateModern
	}
	return t
}

// Options carries the optional style parameters. SidebarColor applies only
// to the creative template.
type Options struct {
	SidebarColor string
}
