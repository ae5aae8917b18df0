package render

// Document is the style-agnostic tree of visual nodes produced by Render.
// It carries no business logic and is consumed by both the HTML target and
// the native PDF writer, which must agree on content and ordering and may
// differ only in styling.
type Document struct {
	Template Template
	Theme    Theme
	Header   Header
	// Sidebar holds the sections arranged into the narrow column. It is
	// empty for every template except creative.
	Sidebar []Section
	Main    []Section
}

// Theme holds the resolved accent pair for the document.
type Theme struct {
	Accent      string
	AccentLight string
}

// ContactKind identifies a personal-info contact line.
type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactLocation ContactKind = "location"
	ContactLinkedIn ContactKind = "linkedin"
	ContactWebsite  ContactKind = "website"
)

type Contact struct {
	Kind  ContactKind
	Value string
}

// Header is the personal-info block. It is the only part of the document
// emitted even when every other field of the resume is empty.
type Header struct {
	Name     string
	Contacts []Contact
}

// Section is a named block of content. Exactly one of Text, Chips or
// Entries is populated depending on the backing collection.
type Section struct {
	Title   string
	Text    string
	Chips   []string
	Entries []Entry
}

// Entry is one experience, education or project item.
// Primary/Secondary/Meta map to title/company-style lines; Body carries a
// project description; URL is rendered only when present, with URLLabel as
// its compact display text.
type Entry struct {
	Primary   string
	Secondary string
	Meta      string
	URL       string
	URLLabel  string
	Body      string
	Bullets   []string
	Chips     []string
}

// Sections returns every section in canonical order: sidebar first, then
// main. Both rendering targets walk this order.
func (d *Document) Sections() []Section {
	out := make([]Section, 0, len(d.Sidebar)+len(d.Main))
	out = append(out, d.Sidebar...)
	out = append(out, d.Main...)
	return out
}

// TextContent flattens every piece of rendered text, ignoring arrangement
// and styling. Two documents with equal TextContent render the same words.
func (d *Document) TextContent() []string {
	var out []string
	push := func(s string) {
		if s != "" {
			out = append(out, s)
		}
	}
	push(d.Header.Name)
	for _, c := range d.Header.Contacts {
		push(c.Value)
	}
	for _, s := range d.Sections() {
		push(s.Title)
		push(s.Text)
		out = append(out, s.Chips...)
		for _, e := range s.Entries {
			push(e.Primary)
			push(e.Secondary)
			push(e.Meta)
			push(e.URL)
			push(e.Body)
			out = append(out, e.Bullets...)
			out = append(out, e.Chips...)
		}
	}
	return out
}
