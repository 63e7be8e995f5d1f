package pages

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/khrees2412/jobdesk/internal/ui"
)

// Navigator shows one page at a time. Hiding a data page invalidates its
// containers so responses that arrive after the user left are dropped.
type Navigator struct {
	doc     *ui.Document
	loaders *Loaders

	mu       sync.Mutex
	active   string
	extra    []string
	sections []string
}

// NewNavigator starts on the dashboard. extra names show-only pages such as
// crawler panels; their sections are registered in the document.
func NewNavigator(doc *ui.Document, loaders *Loaders, extra ...string) *Navigator {
	n := &Navigator{doc: doc, loaders: loaders, extra: extra}
	for _, p := range All() {
		n.sections = append(n.sections, string(p))
	}
	n.sections = append(n.sections, extra...)

	for _, name := range n.sections {
		c := doc.Register(SectionID(name))
		if name != string(Dashboard) {
			c.Hide()
		}
	}
	n.active = string(Dashboard)
	return n
}

// Pages lists every page in navigation order.
func (n *Navigator) Pages() []string {
	return slices.Clone(n.sections)
}

// Active is the page currently shown.
func (n *Navigator) Active() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// IsDataPage reports whether name has a loader.
func IsDataPage(name string) bool {
	return slices.Contains(All(), Page(name))
}

// Show hides every other page, shows name and runs its loader. Show-only
// pages return a nil Result.
func (n *Navigator) Show(ctx context.Context, name string) (Result, error) {
	if !slices.Contains(n.sections, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	if err := n.switchTo(name); err != nil {
		return nil, err
	}
	if !IsDataPage(name) {
		return nil, nil
	}
	return n.loaders.Load(ctx, Page(name))
}

func (n *Navigator) switchTo(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, other := range n.sections {
		if other == name {
			continue
		}
		section, err := n.doc.Lookup(SectionID(other))
		if err != nil {
			return err
		}
		section.Hide()
		for _, id := range Page(other).Containers() {
			c, err := n.doc.Lookup(id)
			if err != nil {
				return err
			}
			c.Invalidate()
		}
	}

	target, err := n.doc.Lookup(SectionID(name))
	if err != nil {
		return err
	}
	target.Show()
	n.active = name
	return nil
}
