package crawler

import (
	"context"
	"errors"
	"html/template"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/internal/ui"
	"github.com/khrees2412/jobdesk/pkg/models"
)

// Controller drives the crawler forms of every registered platform.
type Controller struct {
	registry *Registry
	pipe     *pipeline.Pipeline
	doc      *ui.Document
	testURL  string
	forms    map[string]*Form
}

// NewController registers each platform's results and list containers.
// Results areas start hidden until the first submission.
func NewController(registry *Registry, pipe *pipeline.Pipeline, doc *ui.Document, testURL string) *Controller {
	c := &Controller{
		registry: registry,
		pipe:     pipe,
		doc:      doc,
		testURL:  testURL,
		forms:    make(map[string]*Form),
	}
	for _, p := range registry.All() {
		doc.Register(p.ResultsID).Hide()
		doc.Register(p.ListID)
		c.forms[p.ID] = newForm(p)
	}
	return c
}

func (c *Controller) Registry() *Registry { return c.registry }

// Form returns the form of a platform.
func (c *Controller) Form(platform string) (*Form, error) {
	p, err := c.registry.Lookup(platform)
	if err != nil {
		return nil, err
	}
	return c.forms[p.ID], nil
}

// Submit validates url and runs the crawl into the platform's list
// container. Validation failures leave the form idle and show a notice.
func (c *Controller) Submit(ctx context.Context, platform, url string) (pipeline.Outcome, error) {
	form, err := c.Form(platform)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	p := form.Platform()

	results, err := c.doc.Lookup(p.ResultsID)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	list, err := c.doc.Lookup(p.ListID)
	if err != nil {
		return pipeline.Outcome{}, err
	}

	r := c.pipe.Renderer()
	target, err := Validate(url)
	if err != nil {
		// A disabled control takes no input, so the in-flight crawl keeps the list.
		if busy := form.whileIdle(func() {
			results.Show()
			list.Replace(r.Notice(c.validationMessage(err)))
		}); busy != nil {
			return pipeline.Outcome{}, busy
		}
		return pipeline.Outcome{}, err
	}

	if err := form.begin(target); err != nil {
		return pipeline.Outcome{}, err
	}

	results.Show()
	out := pipeline.Run(ctx, c.pipe, pipeline.Step[models.CrawlResult]{
		Call:     client.Crawl(p.Endpoint, models.CrawlRequest{Platform: p.ID, URL: target}),
		Target:   list,
		Fallback: r.Labels().CrawlFailed,
		Render: func(res models.CrawlResult) (template.HTML, error) {
			if res.Failed() {
				return "", pipeline.Refuse(res.Message)
			}
			return r.JobCards(res.Jobs)
		},
	})
	form.finish(out.OK())
	return out, nil
}

// SubmitTest submits the configured test URL, which the API answers with
// canned postings.
func (c *Controller) SubmitTest(ctx context.Context, platform string) (pipeline.Outcome, error) {
	return c.Submit(ctx, platform, c.testURL)
}

// Crawl runs the same validation and routing as Submit but returns the
// result instead of rendering it.
func (c *Controller) Crawl(ctx context.Context, platform, url string) (models.CrawlResult, error) {
	p, err := c.registry.Lookup(platform)
	if err != nil {
		return models.CrawlResult{}, err
	}
	form := c.forms[p.ID]
	target, err := Validate(url)
	if err != nil {
		if busy := form.whileIdle(func() {}); busy != nil {
			return models.CrawlResult{}, busy
		}
		return models.CrawlResult{}, err
	}

	if err := form.begin(target); err != nil {
		return models.CrawlResult{}, err
	}

	res, err := client.Fetch[models.CrawlResult](ctx, c.pipe.Client(), client.Crawl(p.Endpoint, models.CrawlRequest{Platform: p.ID, URL: target}))
	if err == nil && res.Failed() {
		msg := res.Message
		if msg == "" {
			msg = c.pipe.Renderer().Labels().CrawlFailed
		}
		err = pipeline.Refuse(msg)
	}
	form.finish(err == nil)
	return res, err
}

// TestURL is the URL SubmitTest sends.
func (c *Controller) TestURL() string { return c.testURL }

// Panel returns the current render state of a platform's panel.
func (c *Controller) Panel(platform string) (render.CrawlerPanel, error) {
	p, err := c.registry.Lookup(platform)
	if err != nil {
		return render.CrawlerPanel{}, err
	}
	results, err := c.doc.Lookup(p.ResultsID)
	if err != nil {
		return render.CrawlerPanel{}, err
	}
	list, err := c.doc.Lookup(p.ListID)
	if err != nil {
		return render.CrawlerPanel{}, err
	}
	return render.CrawlerPanel{
		Platform:      p.ID,
		Label:         p.Label,
		ResultsID:     p.ResultsID,
		ListID:        p.ListID,
		ResultsHidden: results.Hidden(),
		Results:       list.Content(),
	}, nil
}

func (c *Controller) validationMessage(err error) string {
	labels := c.pipe.Renderer().Labels()
	if errors.Is(err, ErrEmptyURL) {
		return labels.EmptyURL
	}
	return labels.InvalidURL
}
