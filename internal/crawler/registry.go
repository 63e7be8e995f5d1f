package crawler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/khrees2412/jobdesk/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// Platform is one crawl source and the containers its panel renders into.
type Platform struct {
	ID        string
	Label     string
	Endpoint  string
	ResultsID string
	ListID    string
}

// Page is the name of the platform's crawler page.
func (p Platform) Page() string { return p.ID + "-crawler" }

// Registry maps platform ids to their routing. It is read-only after NewRegistry.
type Registry struct {
	platforms []Platform
	byID      map[string]Platform
}

// NewRegistry builds the registry from configuration, filling in default
// labels, endpoint and container ids.
func NewRegistry(cfgs []config.PlatformConfig) (*Registry, error) {
	title := cases.Title(language.Und)
	r := &Registry{byID: make(map[string]Platform, len(cfgs))}

	for _, cfg := range cfgs {
		id := strings.ToLower(strings.TrimSpace(cfg.ID))
		if id == "" {
			return nil, fmt.Errorf("platform id is required")
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("duplicate platform %q", id)
		}

		p := Platform{
			ID:        id,
			Label:     strings.TrimSpace(cfg.Label),
			Endpoint:  strings.TrimSpace(cfg.Endpoint),
			ResultsID: strings.TrimSpace(cfg.ResultsID),
			ListID:    strings.TrimSpace(cfg.ListID),
		}
		if p.Label == "" {
			p.Label = title.String(id)
		}
		if p.Endpoint == "" {
			p.Endpoint = "/crawl"
		}
		if p.ResultsID == "" {
			p.ResultsID = id + "-results"
		}
		if p.ListID == "" {
			p.ListID = id + "-jobs-list"
		}

		r.platforms = append(r.platforms, p)
		r.byID[id] = p
	}
	return r, nil
}

// Lookup returns the platform or ErrUnknownPlatform.
func (r *Registry) Lookup(id string) (Platform, error) {
	p, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Platform{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, id)
	}
	return p, nil
}

// All returns the platforms in configuration order.
func (r *Registry) All() []Platform {
	out := make([]Platform, len(r.platforms))
	copy(out, r.platforms)
	return out
}

// Pages lists the crawler page names in configuration order.
func (r *Registry) Pages() []string {
	pages := make([]string, 0, len(r.platforms))
	for _, p := range r.platforms {
		pages = append(pages, p.Page())
	}
	return pages
}
