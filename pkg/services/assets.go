package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/Carlosma7/carlosma7-cv/pkg/config"
)

// Category names the asset directory a filename resolves against. Which
// category applies is decided by the loader doing the resolution, not by the
// data.
type Category string

const (
	CategoryLogos     Category = "logos"
	CategoryLocations Category = "locations"
	CategoryPrints    Category = "prints"
)

// Resolver maps logical image filenames to public URL paths. The manifest is
// built once at construction by scanning the category directories; lookups
// never touch the filesystem.
type Resolver struct {
	manifest    map[Category]map[string]string
	placeholder string
	log         *zap.Logger
}

func NewResolver(cfg config.Config, log *zap.Logger) (*Resolver, error) {
	r := &Resolver{
		manifest:    make(map[Category]map[string]string),
		placeholder: cfg.Placeholder,
		log:         log,
	}

	dirs := map[Category]string{
		CategoryLogos:     cfg.AssetDirs.Logos,
		CategoryLocations: cfg.AssetDirs.Locations,
		CategoryPrints:    cfg.AssetDirs.Prints,
	}

	for cat, dir := range dirs {
		files := make(map[string]string)
		fullDir := filepath.Join(cfg.StaticDir, "img", dir)

		entries, err := os.ReadDir(fullDir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warn("asset directory missing", zap.String("dir", fullDir))
				r.manifest[cat] = files
				continue
			}
			return nil, err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			mt, err := mimetype.DetectFile(filepath.Join(fullDir, entry.Name()))
			if err != nil || !strings.HasPrefix(mt.String(), "image/") {
				continue
			}
			files[entry.Name()] = "/static/img/" + dir + "/" + entry.Name()
		}
		r.manifest[cat] = files
	}

	return r, nil
}

// Resolve returns the public URL for filename within the category. An
// unknown filename degrades to the placeholder, so one bad reference affects
// a single record rather than its whole collection.
func (r *Resolver) Resolve(cat Category, filename string) string {
	if filename == "" {
		return ""
	}
	if url, ok := r.manifest[cat][filename]; ok {
		return url
	}
	r.log.Warn("unresolvable asset reference",
		zap.String("category", string(cat)),
		zap.String("file", filename))
	return r.placeholder
}
