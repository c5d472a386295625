package models

// Record is one entry of a collection. Every field is optional; a field
// absent from the source JSON renders nothing.
type Record struct {
	Title       string `json:"title,omitempty"`
	Item        string `json:"item,omitempty"`
	Institution string `json:"institution,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Link        string `json:"link,omitempty"`

	// Asset references. Filenames in the source JSON, rewritten to public
	// URLs by the loader exactly once, at load time.
	Logo  string `json:"logo,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Image string `json:"image,omitempty"`

	Skill    string `json:"skill,omitempty"`
	Progress *int   `json:"progress,omitempty"`

	Project string `json:"project,omitempty"`

	City string   `json:"city,omitempty"`
	Date string   `json:"date,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Collection is an ordered list of records. Order is the source JSON array
// order and is preserved through rendering; nothing here sorts.
type Collection []Record
