package ui

import (
	"errors"
	"html/template"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	doc := NewDocument()
	a := doc.Register("jobs-list")
	b := doc.Register("jobs-list")
	assert.Same(t, a, b)
	assert.Equal(t, []string{"jobs-list"}, doc.IDs())
}

func TestLookupMissing(t *testing.T) {
	doc := NewDocument()
	_, err := doc.Lookup("linkedn-jobs-list")
	assert.True(t, errors.Is(err, ErrNoContainer))
	assert.Contains(t, err.Error(), "linkedn-jobs-list")
}

func TestTicketCommit(t *testing.T) {
	doc := NewDocument()
	c := doc.Register("jobs-list")

	ticket := c.Begin("loading")
	assert.Equal(t, template.HTML("loading"), c.Content())
	assert.True(t, ticket.Current())

	assert.True(t, ticket.Commit("rows"))
	assert.Equal(t, template.HTML("rows"), c.Content())
}

func TestStaleTicketIsDropped(t *testing.T) {
	c := NewDocument().Register("linkedin-jobs-list")

	first := c.Begin("loading 1")
	second := c.Begin("loading 2")

	require.True(t, second.Commit("second result"))
	assert.False(t, first.Current())
	assert.False(t, first.Commit("first result"))
	assert.Equal(t, template.HTML("second result"), c.Content())
}

func TestInvalidateKeepsContent(t *testing.T) {
	c := NewDocument().Register("jobs-list")
	ticket := c.Begin("loading")

	c.Invalidate()

	assert.False(t, ticket.Commit("late"))
	assert.Equal(t, template.HTML("loading"), c.Content())
}

func TestReplaceInvalidatesTickets(t *testing.T) {
	c := NewDocument().Register("compare-content")
	ticket := c.Begin("loading")
	c.Replace("fresh")
	assert.False(t, ticket.Commit("late"))
	assert.Equal(t, template.HTML("fresh"), c.Content())
}

func TestVisibility(t *testing.T) {
	c := NewDocument().Register("jobs-page")
	assert.False(t, c.Hidden())
	c.Hide()
	assert.True(t, c.Hidden())
	c.Show()
	assert.False(t, c.Hidden())
}

func TestConcurrentBegin(t *testing.T) {
	c := NewDocument().Register("jobs-list")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket := c.Begin("loading")
			ticket.Commit("done")
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), c.Generation())
}
