package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AssetDirs names the image subdirectories under <StaticDir>/img, one per
// content category.
type AssetDirs struct {
	Logos     string
	Locations string
	Prints    string
}

// Config is passed explicitly into the resolver, loaders and handlers; there
// is no package-level state.
type Config struct {
	Addr     string
	BasePath string // deployment root the data files are fetched from
	DataDir  string // subpath under BasePath holding the JSON collections

	StaticDir    string
	ContentDir   string
	TemplateGlob string
	ResumeFile   string

	AssetDirs   AssetDirs
	Placeholder string // URL served when an asset reference cannot be resolved

	// SurfaceErrors makes sections whose load failed render a visible
	// notice instead of an empty content area.
	SurfaceErrors bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	appURL := getEnv("APP_URL", "http://localhost:8080")

	return Config{
		Addr:     getEnv("ADDR", ":8080"),
		BasePath: getEnv("BASE_PATH", appURL),
		DataDir:  getEnv("DATA_DIR", "data"),

		StaticDir:    getEnv("STATIC_DIR", "./static"),
		ContentDir:   getEnv("CONTENT_DIR", "./content"),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "templates/*"),
		ResumeFile:   getEnv("RESUME_FILE", "./static/CV_CarlosMolina.pdf"),

		AssetDirs: AssetDirs{
			Logos:     getEnv("ASSET_DIR_LOGOS", "logos"),
			Locations: getEnv("ASSET_DIR_LOCATIONS", "locations"),
			Prints:    getEnv("ASSET_DIR_PRINTS", "prints"),
		},
		Placeholder: getEnv("ASSET_PLACEHOLDER", "/static/img/placeholder.svg"),

		SurfaceErrors: os.Getenv("SURFACE_ERRORS") == "true",
	}
}

// SiteMeta is the display metadata of the site, read from site.yaml or
// site.toml in the working directory.
type SiteMeta struct {
	Title   string `yaml:"title" toml:"title"`
	Author  string `yaml:"author" toml:"author"`
	Tagline string `yaml:"tagline" toml:"tagline"`
	Footer  string `yaml:"footer" toml:"footer"`
}

// LoadSiteMeta tries site.yaml first, then site.toml.
func LoadSiteMeta(dir string) (SiteMeta, error) {
	var meta SiteMeta

	if content, err := os.ReadFile(filepath.Join(dir, "site.yaml")); err == nil {
		if err := yaml.Unmarshal(content, &meta); err != nil {
			return meta, fmt.Errorf("error unmarshalling site.yaml: %w", err)
		}
		return meta, nil
	}

	if content, err := os.ReadFile(filepath.Join(dir, "site.toml")); err == nil {
		if err := toml.Unmarshal(content, &meta); err != nil {
			return meta, fmt.Errorf("error unmarshalling site.toml: %w", err)
		}
		return meta, nil
	}

	return meta, fmt.Errorf("no site.yaml or site.toml found in %s", dir)
}
