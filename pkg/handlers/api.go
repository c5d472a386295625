package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Carlosma7/carlosma7-cv/pkg/render"
	"github.com/Carlosma7/carlosma7-cv/pkg/services"
)

// API exposes the loaded collections as JSON for the client-side widgets.
type API struct {
	store   *services.Store
	loaders map[string]*services.Loader
}

func NewAPI(store *services.Store, loaders map[string]*services.Loader) *API {
	return &API{store: store, loaders: loaders}
}

func (a *API) GetCollection(c *gin.Context) {
	name := c.Param("resource")
	if _, ok := a.loaders[name]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown resource"})
		return
	}

	entry := a.store.Get(name)
	c.JSON(http.StatusOK, gin.H{
		"state":   entry.State.String(),
		"records": entry.Collection,
	})
}

// GetMarkers returns the map markers with coordinates exactly as loaded.
func (a *API) GetMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, render.BuildMarkers(a.store.Get("locations").Collection))
}

// Reload invalidates every collection and reloads in the background. Token
// sequencing in the store makes concurrent reloads safe; the last issued
// request wins.
func (a *API) Reload(c *gin.Context) {
	for name, loader := range a.loaders {
		a.store.Invalidate(name)
		go func(l *services.Loader) {
			_ = l.Load(context.Background())
		}(loader)
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloading"})
}
