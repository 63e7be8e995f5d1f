package pages

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/khrees2412/jobdesk/internal/ui"
	"github.com/khrees2412/jobdesk/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Page names a data page.
type Page string

const (
	Dashboard    Page = "dashboard"
	Jobs         Page = "jobs"
	Resumes      Page = "resumes"
	Applications Page = "applications"
	Feedbacks    Page = "feedbacks"
)

// Container ids
const (
	RecentJobsList   = "recent-jobs-list"
	ApplicationStats = "application-stats"
	RecentFeedbacks  = "recent-feedbacks"
	JobsList         = "jobs-list"
	ResumesList      = "resumes-list"
	ApplicationsList = "applications-list"
	FeedbacksList    = "feedbacks-list"

	JobDetailContent      = "job-detail-content"
	ResumeDetailContent   = "resume-detail-content"
	FeedbackDetailContent = "feedback-detail-content"
	CompareContent        = "compare-content"
)

var ErrUnknownPage = errors.New("unknown page")

// All lists the data pages in navigation order.
func All() []Page {
	return []Page{Dashboard, Jobs, Resumes, Applications, Feedbacks}
}

// Containers returns the data containers a page renders into.
func (p Page) Containers() []string {
	switch p {
	case Dashboard:
		return []string{RecentJobsList, ApplicationStats, RecentFeedbacks}
	case Jobs:
		return []string{JobsList}
	case Resumes:
		return []string{ResumesList}
	case Applications:
		return []string{ApplicationsList}
	case Feedbacks:
		return []string{FeedbacksList}
	}
	return nil
}

// DetailContainers lists the detail panel ids.
func DetailContainers() []string {
	return []string{JobDetailContent, ResumeDetailContent, FeedbackDetailContent, CompareContent}
}

// SectionID is the id of the element wrapping a page.
func SectionID(page string) string { return page + "-page" }

// Limits are the dashboard list sizes.
type Limits struct {
	DashboardJobs      int
	DashboardFeedbacks int
}

// Result maps container ids to the outcome of their load.
type Result map[string]pipeline.Outcome

// Failed lists the containers whose load failed, stale ones excluded.
func (r Result) Failed() []string {
	var ids []string
	for id, o := range r {
		if o.Err != nil && !o.Stale {
			ids = append(ids, id)
		}
	}
	return ids
}

// Loaders bind each page and detail view to its endpoint, renderer and container.
type Loaders struct {
	pipe   *pipeline.Pipeline
	doc    *ui.Document
	limits Limits
}

// NewLoaders registers every page, data and detail container in doc.
func NewLoaders(pipe *pipeline.Pipeline, doc *ui.Document, limits Limits) *Loaders {
	for _, p := range All() {
		doc.Register(SectionID(string(p)))
		for _, id := range p.Containers() {
			doc.Register(id)
		}
	}
	for _, id := range DetailContainers() {
		doc.Register(id)
	}
	return &Loaders{pipe: pipe, doc: doc, limits: limits}
}

func (l *Loaders) container(id string) (*ui.Container, error) {
	return l.doc.Lookup(id)
}

// Load runs the loader of page.
func (l *Loaders) Load(ctx context.Context, page Page) (Result, error) {
	switch page {
	case Dashboard:
		return l.Dashboard(ctx)
	case Jobs:
		return l.single(JobsList, func(c *ui.Container) pipeline.Outcome { return l.jobs(ctx, c) })
	case Resumes:
		return l.single(ResumesList, func(c *ui.Container) pipeline.Outcome { return l.resumes(ctx, c) })
	case Applications:
		return l.single(ApplicationsList, func(c *ui.Container) pipeline.Outcome { return l.applications(ctx, c) })
	case Feedbacks:
		return l.single(FeedbacksList, func(c *ui.Container) pipeline.Outcome { return l.feedbacks(ctx, c) })
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
}

func (l *Loaders) single(id string, run func(*ui.Container) pipeline.Outcome) (Result, error) {
	c, err := l.container(id)
	if err != nil {
		return nil, err
	}
	return Result{id: run(c)}, nil
}

// Dashboard loads recent jobs, the status tally and recent feedback as three
// independent tasks. One failing leaves the other two rendered.
func (l *Loaders) Dashboard(ctx context.Context) (Result, error) {
	jobsC, err := l.container(RecentJobsList)
	if err != nil {
		return nil, err
	}
	statsC, err := l.container(ApplicationStats)
	if err != nil {
		return nil, err
	}
	feedbackC, err := l.container(RecentFeedbacks)
	if err != nil {
		return nil, err
	}

	r := l.pipe.Renderer()
	labels := r.Labels()
	var jobs, stats, feedbacks pipeline.Outcome

	var g errgroup.Group
	g.Go(func() error {
		jobs = pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.JobPosting]]{
			Call:     client.Jobs(l.limits.DashboardJobs),
			Target:   jobsC,
			Fallback: labels.JobsLoadFailed,
			Render:   func(v models.List[models.JobPosting]) (template.HTML, error) { return r.RecentJobs(v) },
		})
		return nil
	})
	g.Go(func() error {
		stats = pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.Application]]{
			Call:     client.Applications(),
			Target:   statsC,
			Fallback: labels.ApplicationsLoadFailed,
			Render:   func(v models.List[models.Application]) (template.HTML, error) { return r.StatusTally(v) },
		})
		return nil
	})
	g.Go(func() error {
		feedbacks = pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.Feedback]]{
			Call:     client.Feedbacks(l.limits.DashboardFeedbacks),
			Target:   feedbackC,
			Fallback: labels.FeedbacksLoadFailed,
			Render:   func(v models.List[models.Feedback]) (template.HTML, error) { return r.RecentFeedbacks(v) },
		})
		return nil
	})
	// tasks report through their outcomes, never through the group
	_ = g.Wait()

	return Result{RecentJobsList: jobs, ApplicationStats: stats, RecentFeedbacks: feedbacks}, nil
}

func (l *Loaders) jobs(ctx context.Context, c *ui.Container) pipeline.Outcome {
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.JobPosting]]{
		Call:     client.Jobs(0),
		Target:   c,
		Fallback: r.Labels().JobsLoadFailed,
		Render:   func(v models.List[models.JobPosting]) (template.HTML, error) { return r.JobRows(v) },
	})
}

func (l *Loaders) resumes(ctx context.Context, c *ui.Container) pipeline.Outcome {
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.Resume]]{
		Call:     client.Resumes(),
		Target:   c,
		Fallback: r.Labels().ResumesLoadFailed,
		Render:   func(v models.List[models.Resume]) (template.HTML, error) { return r.ResumeRows(v) },
	})
}

func (l *Loaders) applications(ctx context.Context, c *ui.Container) pipeline.Outcome {
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.Application]]{
		Call:     client.Applications(),
		Target:   c,
		Fallback: r.Labels().ApplicationsLoadFailed,
		Render:   func(v models.List[models.Application]) (template.HTML, error) { return r.ApplicationRows(v) },
	})
}

func (l *Loaders) feedbacks(ctx context.Context, c *ui.Container) pipeline.Outcome {
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.List[models.Feedback]]{
		Call:     client.Feedbacks(0),
		Target:   c,
		Fallback: r.Labels().FeedbacksLoadFailed,
		Render:   func(v models.List[models.Feedback]) (template.HTML, error) { return r.FeedbackRows(v) },
	})
}
