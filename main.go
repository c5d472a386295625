package main

import (
	"context"
	"html/template"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Carlosma7/carlosma7-cv/pkg/config"
	"github.com/Carlosma7/carlosma7-cv/pkg/handlers"
	"github.com/Carlosma7/carlosma7-cv/pkg/render"
	"github.com/Carlosma7/carlosma7-cv/pkg/services"
)

// loadIntros renders the markdown introduction blocks. A missing file just
// means the page has no intro.
func loadIntros(contentDir string, logger *zap.Logger) map[string]template.HTML {
	intros := make(map[string]template.HTML)
	for _, page := range []string{"home", "projects"} {
		src, err := os.ReadFile(filepath.Join(contentDir, page+".md"))
		if err != nil {
			logger.Warn("no introduction block", zap.String("page", page), zap.Error(err))
			continue
		}
		html, err := render.Markdown(src)
		if err != nil {
			logger.Warn("introduction render failed", zap.String("page", page), zap.Error(err))
			continue
		}
		intros[page] = html
	}
	return intros
}

func main() {
	// Initialize config
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	meta, err := config.LoadSiteMeta(".")
	if err != nil {
		logger.Warn("site metadata missing", zap.Error(err))
	}

	resolver, err := services.NewResolver(cfg, logger)
	if err != nil {
		logger.Fatal("asset manifest scan failed", zap.Error(err))
	}

	store := services.NewStore(logger)

	loaders := map[string]*services.Loader{
		"education":    services.NewLoader(cfg, "education", services.CategoryLogos, resolver, store, logger),
		"experience":   services.NewLoader(cfg, "experience", services.CategoryLogos, resolver, store, logger),
		"certificates": services.NewLoader(cfg, "certificates", services.CategoryLogos, resolver, store, logger),
		"skills":       services.NewLoader(cfg, "skills", services.CategoryLogos, resolver, store, logger),
		"locations":    services.NewLoader(cfg, "locations", services.CategoryLocations, resolver, store, logger),
		"prints":       services.NewLoader(cfg, "prints", services.CategoryPrints, resolver, store, logger),
		"projects":     services.NewLoader(cfg, "projects", services.CategoryLogos, resolver, store, logger),
	}

	watcher, err := services.NewWatcher(cfg.DataDir, loaders, store, logger)
	if err != nil {
		logger.Warn("data watcher unavailable", zap.Error(err))
	} else {
		watcher.Start(context.Background())
		defer watcher.Close()
	}

	intros := loadIntros(cfg.ContentDir, logger)

	r := gin.Default()

	// Static Files & Templates
	r.SetFuncMap(template.FuncMap{"json": render.MarshalJS})
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)
	r.Static("/"+cfg.DataDir, "./"+cfg.DataDir) // the loaders fetch collections over HTTP

	pages := handlers.NewPages(cfg, meta, store, loaders, intros, logger)
	api := handlers.NewAPI(store, loaders)

	r.GET("/", pages.Home)
	r.GET("/projects", pages.Projects)
	r.GET("/resume", pages.Resume)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/markers", api.GetMarkers)
		apiGroup.GET("/collections/:resource", api.GetCollection)
		apiGroup.POST("/reload", api.Reload)
	}

	r.Run(cfg.Addr)
}
