package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/Carlosma7/carlosma7-cv/pkg/config"
	"github.com/Carlosma7/carlosma7-cv/pkg/models"
)

var (
	// ErrResourceUnavailable marks a fetch that failed or returned a
	// non-success status.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrMalformedResource marks a body that is not a valid array of
	// records for its resource.
	ErrMalformedResource = errors.New("malformed resource")
)

// Loader fetches one JSON collection, validates it, rewrites its asset
// references and installs the result in the store. One Loader per
// collection; the loader's category decides which asset directory the
// record filenames resolve against.
type Loader struct {
	resource string
	category Category
	url      string
	client   *http.Client
	resolver *Resolver
	store    *Store
	validate *validator.Validate
	log      *zap.Logger
}

func NewLoader(cfg config.Config, resource string, category Category, resolver *Resolver, store *Store, log *zap.Logger) *Loader {
	return &Loader{
		resource: resource,
		category: category,
		url:      fmt.Sprintf("%s/%s/%s.json", strings.TrimRight(cfg.BasePath, "/"), cfg.DataDir, resource),
		client:   &http.Client{Timeout: 10 * time.Second},
		resolver: resolver,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

// Resource returns the collection name this loader serves.
func (l *Loader) Resource() string {
	return l.resource
}

// Load performs one fetch-validate-enrich cycle. The outcome is observed
// through the store; on any failure the store keeps its previous collection.
// The returned error exists for logging and tests, not for recovery.
func (l *Loader) Load(ctx context.Context) error {
	token := l.store.Begin(l.resource)

	collection, err := l.fetch(ctx)
	if err != nil {
		l.store.Fail(l.resource, token, err)
		l.log.Error("load failed", zap.String("resource", l.resource), zap.Error(err))
		return err
	}

	for i := range collection {
		l.enrich(&collection[i])
	}

	if !l.store.Complete(l.resource, token, collection) {
		l.log.Debug("superseded load discarded", zap.String("resource", l.resource))
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context) (models.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d fetching %s", ErrResourceUnavailable, resp.StatusCode, l.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}

	var collection models.Collection
	if err := json.Unmarshal(body, &collection); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResource, err)
	}

	if err := l.validateRecords(collection); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResource, err)
	}
	return collection, nil
}

// validateRecords enforces the per-resource required fields. Progress range
// is deliberately not checked; out-of-range values pass through to the
// progress widget uninterpreted.
func (l *Loader) validateRecords(collection models.Collection) error {
	for i, rec := range collection {
		switch l.resource {
		case "skills":
			if err := l.validate.Var(rec.Skill, "required"); err != nil {
				return fmt.Errorf("record %d: skill is required", i)
			}
			if rec.Progress == nil {
				return fmt.Errorf("record %d: progress is required", i)
			}
		case "locations":
			if rec.Lat == nil || rec.Lng == nil {
				return fmt.Errorf("record %d: lat and lng are required", i)
			}
		}
		if rec.Link != "" {
			if err := l.validate.Var(rec.Link, "url"); err != nil {
				return fmt.Errorf("record %d: link is not a valid url", i)
			}
		}
	}
	return nil
}

// enrich rewrites asset filenames to resolved URLs, exactly once, at load
// time.
func (l *Loader) enrich(rec *models.Record) {
	if rec.Logo != "" {
		rec.Logo = l.resolver.Resolve(l.category, rec.Logo)
	}
	if rec.Icon != "" {
		rec.Icon = l.resolver.Resolve(l.category, rec.Icon)
	}
	if rec.Image != "" {
		rec.Image = l.resolver.Resolve(l.category, rec.Image)
	}
}
