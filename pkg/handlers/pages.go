package handlers

import (
	"context"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Carlosma7/carlosma7-cv/pkg/config"
	"github.com/Carlosma7/carlosma7-cv/pkg/models"
	"github.com/Carlosma7/carlosma7-cv/pkg/render"
	"github.com/Carlosma7/carlosma7-cv/pkg/services"
)

// homeSections is the fixed composition of the home page, in display order.
// Kind is set here, at composition time.
var homeSections = []models.SectionDescriptor{
	{Name: "Education", Resource: "education", Kind: models.KindChronological},
	{Name: "Experience", Resource: "experience", Kind: models.KindChronological},
	{Name: "Certificates", Resource: "certificates", Kind: models.KindChronological},
	{Name: "Skills", Resource: "skills", Kind: models.KindFlat},
}

// homeResources is everything the home page needs loaded, sections plus the
// map and the prints gallery.
var homeResources = []string{"education", "experience", "certificates", "skills", "locations", "prints"}

// Pages renders the two top-level pages and the resume download.
type Pages struct {
	cfg     config.Config
	meta    config.SiteMeta
	store   *services.Store
	loaders map[string]*services.Loader
	intros  map[string]template.HTML
	log     *zap.Logger
}

func NewPages(cfg config.Config, meta config.SiteMeta, store *services.Store, loaders map[string]*services.Loader, intros map[string]template.HTML, log *zap.Logger) *Pages {
	return &Pages{
		cfg:     cfg,
		meta:    meta,
		store:   store,
		loaders: loaders,
		intros:  intros,
		log:     log,
	}
}

// ensureLoaded triggers loads for every resource not currently loaded or in
// flight. Loads run concurrently and each targets a disjoint resource; one
// failing collection never affects another, so load errors are swallowed
// here and observed through the store.
func (p *Pages) ensureLoaded(ctx context.Context, resources ...string) {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range resources {
		entry := p.store.Get(name)
		if entry.State == services.StateLoaded || entry.State == services.StateLoading {
			continue
		}
		loader, ok := p.loaders[name]
		if !ok {
			p.log.Warn("no loader for resource", zap.String("resource", name))
			continue
		}
		g.Go(func() error {
			_ = loader.Load(ctx)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Pages) Home(c *gin.Context) {
	p.ensureLoaded(c.Request.Context(), homeResources...)

	sections := make([]render.SectionView, 0, len(homeSections))
	for _, desc := range homeSections {
		sections = append(sections, render.BuildSection(desc, p.store.Get(desc.Resource), p.cfg.SurfaceErrors))
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Meta":     p.meta,
		"Intro":    p.intros["home"],
		"Sections": sections,
		"Markers":  render.BuildMarkers(p.store.Get("locations").Collection),
		"Gallery":  render.BuildGallery(p.store.Get("prints").Collection),
	})
}

func (p *Pages) Projects(c *gin.Context) {
	p.ensureLoaded(c.Request.Context(), "projects")

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Meta":     p.meta,
		"Intro":    p.intros["projects"],
		"Projects": render.BuildProjectCards(p.store.Get("projects").Collection),
	})
}

// Resume streams the fixed, pre-placed resume file as a download.
func (p *Pages) Resume(c *gin.Context) {
	c.FileAttachment(p.cfg.ResumeFile, filepath.Base(p.cfg.ResumeFile))
}
