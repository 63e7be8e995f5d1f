package pipeline

import (
	"context"
	"errors"
	"html/template"

	"github.com/google/uuid"
	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/internal/ui"
	"github.com/sirupsen/logrus"
)

// Pipeline runs one API call into one container: loading indicator, request,
// then the rendered payload or an error notice.
type Pipeline struct {
	client *client.Client
	render *render.Renderer
	log    logrus.FieldLogger
}

func New(c *client.Client, r *render.Renderer, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{client: c, render: r, log: log}
}

func (p *Pipeline) Renderer() *render.Renderer { return p.render }

func (p *Pipeline) Client() *client.Client { return p.client }

func (p *Pipeline) Logger() logrus.FieldLogger { return p.log }

// Step describes one run. Fallback is shown when the failure carries no
// server message.
type Step[T any] struct {
	Call     client.Call
	Target   *ui.Container
	Fallback string
	Render   func(T) (template.HTML, error)
}

// Outcome reports how a run ended. Stale means a newer request owns the
// container and nothing was written. Content is what this run produced,
// written or not.
type Outcome struct {
	Err     error
	Message string
	Stale   bool
	Content template.HTML
}

func (o Outcome) OK() bool { return o.Err == nil && !o.Stale }

// Refusal is returned by a render func that rejects a well-formed payload.
type Refusal struct {
	Message string
}

func (r *Refusal) Error() string { return "refused: " + r.Message }

// Refuse makes a render func report msg as a notice instead of rendering.
func Refuse(msg string) error { return &Refusal{Message: msg} }

// Run executes the step. It never panics on API or payload errors; every
// failure ends up as a notice in the target container.
func Run[T any](ctx context.Context, p *Pipeline, s Step[T]) Outcome {
	log := p.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     s.Call.Method,
		"path":       s.Call.Path,
		"container":  s.Target.ID(),
	})

	ticket := s.Target.Begin(p.render.Loading())

	payload, err := client.Fetch[T](ctx, p.client, s.Call)
	if err != nil {
		msg := s.Fallback
		var apiErr *client.Error
		switch {
		case errors.As(err, &apiErr):
			if apiErr.Message != "" {
				msg = apiErr.Message
			}
			log.WithField("status", apiErr.StatusCode).Warn("api returned an error")
		case errors.Is(err, context.Canceled):
			log.Debug("request cancelled")
		default:
			log.WithError(err).Error("api request failed")
		}
		return p.fail(ticket, log, msg, err)
	}

	content, err := s.Render(payload)
	if err != nil {
		var refusal *Refusal
		if errors.As(err, &refusal) {
			msg := refusal.Message
			if msg == "" {
				msg = s.Fallback
			}
			return p.fail(ticket, log, msg, err)
		}
		log.WithError(err).Error("render failed")
		return p.fail(ticket, log, s.Fallback, err)
	}

	if !ticket.Commit(content) {
		log.Debug("discarded stale response")
		return Outcome{Stale: true, Content: content}
	}
	return Outcome{Content: content}
}

func (p *Pipeline) fail(ticket ui.Ticket, log logrus.FieldLogger, msg string, err error) Outcome {
	notice := p.render.Notice(msg)
	if !ticket.Commit(notice) {
		log.Debug("discarded stale failure")
		return Outcome{Err: err, Message: msg, Stale: true, Content: notice}
	}
	return Outcome{Err: err, Message: msg, Content: notice}
}
