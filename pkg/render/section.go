package render

import (
	"github.com/Carlosma7/carlosma7-cv/pkg/models"
	"github.com/Carlosma7/carlosma7-cv/pkg/services"
)

// ItemView holds the visual elements of one timeline record. A zero field
// renders nothing; no field is ever defaulted.
type ItemView struct {
	Logo        string
	Title       string
	Description string
	Link        string
	Location    string
	DateLabel   string
	// Connector is the mark drawn after this item, absent after the last
	// one.
	Connector bool
}

// FlatRow is one label/progress row of a flat section.
type FlatRow struct {
	Label    string
	Progress int
}

// SectionView is the template-ready form of one section.
type SectionView struct {
	Name   string
	Kind   models.SectionKind
	Items  []ItemView
	Rows   []FlatRow
	Empty  bool
	Failed bool
}

// Flat reports whether the section renders as label/progress rows.
func (v SectionView) Flat() bool {
	return v.Kind == models.KindFlat
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// BuildItem maps a record's present fields onto their elements. The title
// slot takes title or item, the description slot takes institution,
// experience or description, whichever the record carries.
func BuildItem(rec models.Record) ItemView {
	return ItemView{
		Logo:        rec.Logo,
		Title:       firstNonEmpty(rec.Title, rec.Item),
		Description: firstNonEmpty(rec.Institution, rec.Experience, rec.Description),
		Link:        rec.Link,
		Location:    rec.Location,
		DateLabel:   rec.Dates,
	}
}

// BuildSection renders a descriptor against the store entry for its
// resource. Source order is preserved; nothing here sorts by date. An empty
// collection yields an empty content area with the section label still
// shown.
func BuildSection(desc models.SectionDescriptor, entry services.Entry, surfaceErrors bool) SectionView {
	view := SectionView{Name: desc.Name, Kind: desc.Kind}

	if surfaceErrors && entry.State == services.StateFailed {
		view.Failed = true
	}

	if len(entry.Collection) == 0 {
		view.Empty = true
		return view
	}

	switch desc.Kind {
	case models.KindFlat:
		view.Rows = make([]FlatRow, 0, len(entry.Collection))
		for _, rec := range entry.Collection {
			row := FlatRow{Label: rec.Skill}
			if rec.Progress != nil {
				row.Progress = *rec.Progress
			}
			view.Rows = append(view.Rows, row)
		}
	default:
		view.Items = make([]ItemView, 0, len(entry.Collection))
		for i, rec := range entry.Collection {
			item := BuildItem(rec)
			item.Connector = i < len(entry.Collection)-1
			view.Items = append(view.Items, item)
		}
	}

	return view
}
