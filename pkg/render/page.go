package render

import (
	"bytes"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Carlosma7/carlosma7-cv/pkg/models"
)

// ProjectCard is one entry of the projects grid. The grid is a parallel,
// simpler rendering path; it does not go through BuildSection.
type ProjectCard struct {
	Title       string
	Description string
	Link        string
	Icon        string
}

func BuildProjectCards(collection models.Collection) []ProjectCard {
	cards := make([]ProjectCard, 0, len(collection))
	for _, rec := range collection {
		cards = append(cards, ProjectCard{
			Title:       firstNonEmpty(rec.Project, rec.Title),
			Description: rec.Description,
			Link:        rec.Link,
			Icon:        rec.Icon,
		})
	}
	return cards
}

// Marker is one map point. Coordinates pass through untouched; the map
// widget places the marker exactly where the data says.
type Marker struct {
	City  string  `json:"city,omitempty"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Image string  `json:"image,omitempty"`
	Date  string  `json:"date,omitempty"`
}

// BuildMarkers skips records without coordinates; the loader's validation
// makes those impossible for the locations resource, but the markers API
// accepts any collection.
func BuildMarkers(collection models.Collection) []Marker {
	markers := make([]Marker, 0, len(collection))
	for _, rec := range collection {
		if rec.Lat == nil || rec.Lng == nil {
			continue
		}
		markers = append(markers, Marker{
			City:  rec.City,
			Lat:   *rec.Lat,
			Lng:   *rec.Lng,
			Image: rec.Image,
			Date:  rec.Date,
		})
	}
	return markers
}

// GalleryImage is one photo of the prints gallery.
type GalleryImage struct {
	Title string
	Image string
}

func BuildGallery(collection models.Collection) []GalleryImage {
	images := make([]GalleryImage, 0, len(collection))
	for _, rec := range collection {
		if rec.Image == "" {
			continue
		}
		images = append(images, GalleryImage{
			Title: firstNonEmpty(rec.Title, rec.Item),
			Image: rec.Image,
		})
	}
	return images
}

// Markdown converts an introduction block to embeddable HTML.
func Markdown(src []byte) (template.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// MarshalJS renders v as a JSON literal for embedding in a script block,
// used to hand marker data to the map widget.
func MarshalJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
