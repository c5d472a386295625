package models

// SectionKind selects the rendering strategy for a section.
type SectionKind int

const (
	// KindChronological renders items in source order as a timeline with
	// connector marks and optional date labels.
	KindChronological SectionKind = iota
	// KindFlat renders label/progress rows.
	KindFlat
)

func (k SectionKind) String() string {
	if k == KindFlat {
		return "flat"
	}
	return "chronological"
}

// KindForName maps a section display name to its kind. The match is exact
// and case-sensitive: only "Skills" selects the flat kind.
func KindForName(name string) SectionKind {
	if name == "Skills" {
		return KindFlat
	}
	return KindChronological
}

// SectionDescriptor ties a section to its data resource. Kind is set once at
// composition time rather than derived from the name on every render.
type SectionDescriptor struct {
	Name     string
	Resource string
	Kind     SectionKind
}
