package ui

import (
	"errors"
	"fmt"
	"html/template"
	"sort"
	"sync"
)

// ErrNoContainer is returned when a container id is not registered.
var ErrNoContainer = errors.New("container not found")

// Document is the set of named containers a page is made of.
type Document struct {
	mu         sync.RWMutex
	containers map[string]*Container
}

func NewDocument() *Document {
	return &Document{containers: make(map[string]*Container)}
}

// Register adds a container, or returns the existing one with that id.
func (d *Document) Register(id string) *Container {
	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.containers[id]; ok {
		return c
	}
	c := &Container{id: id}
	d.containers[id] = c
	return c
}

// Lookup returns the container with the given id or ErrNoContainer.
func (d *Document) Lookup(id string) (*Container, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.containers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoContainer, id)
	}
	return c, nil
}

// IDs lists the registered container ids in sorted order.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.containers))
	for id := range d.containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Container holds one replaceable fragment. Every Begin or Invalidate
// advances its generation; writes through an older Ticket are dropped.
type Container struct {
	id string

	mu         sync.Mutex
	generation uint64
	content    template.HTML
	hidden     bool
}

func (c *Container) ID() string { return c.id }

// Begin starts a new request for the container: it shows placeholder and
// returns a ticket for the response.
func (c *Container) Begin(placeholder template.HTML) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.content = placeholder
	return Ticket{c: c, generation: c.generation}
}

// Invalidate abandons any request in flight without touching the content.
func (c *Container) Invalidate() {
	c.mu.Lock()
	c.generation++
	c.mu.Unlock()
}

// Replace sets the content unconditionally and invalidates pending tickets.
func (c *Container) Replace(content template.HTML) {
	c.mu.Lock()
	c.generation++
	c.content = content
	c.mu.Unlock()
}

func (c *Container) Content() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

func (c *Container) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Container) Show() {
	c.mu.Lock()
	c.hidden = false
	c.mu.Unlock()
}

func (c *Container) Hide() {
	c.mu.Lock()
	c.hidden = true
	c.mu.Unlock()
}

func (c *Container) Hidden() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hidden
}

// Ticket is the right to write one response into a container.
type Ticket struct {
	c          *Container
	generation uint64
}

func (t Ticket) Container() *Container { return t.c }

// Current reports whether no newer request has started since the ticket was issued.
func (t Ticket) Current() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	return t.c.generation == t.generation
}

// Commit writes content if the ticket is still current and reports whether it did.
func (t Ticket) Commit(content template.HTML) bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()

	if t.c.generation != t.generation {
		return false
	}
	t.c.content = content
	return true
}
