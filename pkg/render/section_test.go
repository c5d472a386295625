package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carlosma7/carlosma7-cv/pkg/models"
	"github.com/Carlosma7/carlosma7-cv/pkg/services"
)

func intPtr(v int) *int { return &v }

func chronoDesc(name, resource string) models.SectionDescriptor {
	return models.SectionDescriptor{Name: name, Resource: resource, Kind: models.KindChronological}
}

func loadedEntry(collection models.Collection) services.Entry {
	return services.Entry{State: services.StateLoaded, Collection: collection}
}

func TestBuildItem_FieldPresence(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		item := BuildItem(models.Record{
			Title:       "BSc",
			Institution: "UGR",
			Location:    "Granada",
			Dates:       "2015 - 2019",
			Link:        "https://www.ugr.es",
			Logo:        "/static/img/logos/ugr.svg",
		})
		assert.Equal(t, "BSc", item.Title)
		assert.Equal(t, "UGR", item.Description)
		assert.Equal(t, "Granada", item.Location)
		assert.Equal(t, "2015 - 2019", item.DateLabel)
		assert.Equal(t, "https://www.ugr.es", item.Link)
		assert.Equal(t, "/static/img/logos/ugr.svg", item.Logo)
	})

	t.Run("empty record renders no elements", func(t *testing.T) {
		assert.Equal(t, ItemView{}, BuildItem(models.Record{}))
	})

	t.Run("only present fields produce elements", func(t *testing.T) {
		item := BuildItem(models.Record{Title: "Only title"})
		assert.Equal(t, "Only title", item.Title)
		assert.Empty(t, item.Description)
		assert.Empty(t, item.Location)
		assert.Empty(t, item.DateLabel)
		assert.Empty(t, item.Link)
		assert.Empty(t, item.Logo)
	})

	t.Run("title falls back to item", func(t *testing.T) {
		assert.Equal(t, "Benchy", BuildItem(models.Record{Item: "Benchy"}).Title)
	})

	t.Run("description slot priority", func(t *testing.T) {
		rec := models.Record{Institution: "UGR", Experience: "exp", Description: "desc"}
		assert.Equal(t, "UGR", BuildItem(rec).Description)
		rec.Institution = ""
		assert.Equal(t, "exp", BuildItem(rec).Description)
		rec.Experience = ""
		assert.Equal(t, "desc", BuildItem(rec).Description)
	})
}

func TestBuildSection_Chronological(t *testing.T) {
	collection := models.Collection{
		{Title: "third in time", Dates: "2023"},
		{Title: "first in time", Dates: "2015"},
		{Title: "no date at all"},
	}

	view := BuildSection(chronoDesc("Education", "education"), loadedEntry(collection), false)

	require.Len(t, view.Items, 3)

	// source order, not date order
	assert.Equal(t, "third in time", view.Items[0].Title)
	assert.Equal(t, "first in time", view.Items[1].Title)
	assert.Equal(t, "no date at all", view.Items[2].Title)

	// connector between consecutive items, absent after the last
	assert.True(t, view.Items[0].Connector)
	assert.True(t, view.Items[1].Connector)
	assert.False(t, view.Items[2].Connector)

	// date label only where the record carries one
	assert.Equal(t, "2023", view.Items[0].DateLabel)
	assert.Empty(t, view.Items[2].DateLabel)
}

func TestBuildSection_Flat(t *testing.T) {
	collection := models.Collection{{Skill: "Go", Progress: intPtr(80)}}
	desc := models.SectionDescriptor{Name: "Skills", Resource: "skills", Kind: models.KindFlat}

	view := BuildSection(desc, loadedEntry(collection), false)

	require.True(t, view.Flat())
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Go", view.Rows[0].Label)
	assert.Equal(t, 80, view.Rows[0].Progress)
	assert.Empty(t, view.Items)
}

func TestBuildSection_EmptyCollection(t *testing.T) {
	view := BuildSection(chronoDesc("Education", "education"), loadedEntry(nil), false)

	assert.True(t, view.Empty)
	assert.Equal(t, "Education", view.Name)
	assert.Empty(t, view.Items)
	assert.Empty(t, view.Rows)
}

func TestBuildSection_Idempotent(t *testing.T) {
	collection := models.Collection{
		{Title: "BSc", Dates: "2015", Logo: "/static/img/logos/ugr.svg"},
		{Title: "MSc", Dates: "2019"},
	}
	original := make(models.Collection, len(collection))
	copy(original, collection)

	desc := chronoDesc("Education", "education")
	first := BuildSection(desc, loadedEntry(collection), false)
	second := BuildSection(desc, loadedEntry(collection), false)

	assert.Equal(t, first, second)
	assert.Equal(t, original, collection)
}

func TestBuildSection_FailedState(t *testing.T) {
	entry := services.Entry{State: services.StateFailed}

	t.Run("silent by default", func(t *testing.T) {
		view := BuildSection(chronoDesc("Education", "education"), entry, false)
		assert.False(t, view.Failed)
		assert.True(t, view.Empty)
	})

	t.Run("surfaced when configured", func(t *testing.T) {
		view := BuildSection(chronoDesc("Education", "education"), entry, true)
		assert.True(t, view.Failed)
	})
}
