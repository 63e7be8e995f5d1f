package pages

import (
	"context"
	"html/template"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/khrees2412/jobdesk/pkg/models"
)

// JobDetail loads one saved posting into the job detail panel.
func (l *Loaders) JobDetail(ctx context.Context, id models.ID) (pipeline.Outcome, error) {
	c, err := l.container(JobDetailContent)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.JobPosting]{
		Call:     client.Job(id),
		Target:   c,
		Fallback: r.Labels().DetailLoadFailed,
		Render:   func(v models.JobPosting) (template.HTML, error) { return r.JobDetail(v) },
	}), nil
}

func (l *Loaders) ResumeDetail(ctx context.Context, id models.ID) (pipeline.Outcome, error) {
	c, err := l.container(ResumeDetailContent)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.Resume]{
		Call:     client.Resume(id),
		Target:   c,
		Fallback: r.Labels().DetailLoadFailed,
		Render:   func(v models.Resume) (template.HTML, error) { return r.ResumeDetail(v) },
	}), nil
}

func (l *Loaders) FeedbackDetail(ctx context.Context, id models.ID) (pipeline.Outcome, error) {
	c, err := l.container(FeedbackDetailContent)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.Feedback]{
		Call:     client.Feedback(id),
		Target:   c,
		Fallback: r.Labels().DetailLoadFailed,
		Render:   func(v models.Feedback) (template.HTML, error) { return r.FeedbackDetail(v) },
	}), nil
}

// Compare loads a resume and a posting side by side.
func (l *Loaders) Compare(ctx context.Context, jobID, resumeID models.ID) (pipeline.Outcome, error) {
	c, err := l.container(CompareContent)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	r := l.pipe.Renderer()
	return pipeline.Run(ctx, l.pipe, pipeline.Step[models.Compare]{
		Call:     client.Compare(jobID, resumeID),
		Target:   c,
		Fallback: r.Labels().CompareLoadFailed,
		Render:   func(v models.Compare) (template.HTML, error) { return r.Compare(v) },
	}), nil
}
