package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/khrees2412/jobdesk/pkg/models"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

// FeedbackPreviewRunes is how much feedback text the dashboard shows.
const FeedbackPreviewRunes = 150

// Renderer turns API payloads into HTML fragments. It is safe for concurrent use.
type Renderer struct {
	tmpl    *template.Template
	labels  Labels
	tag     language.Tag
	loading template.HTML
}

// New parses the embedded templates for the given locale.
func New(locale string) (*Renderer, error) {
	r := &Renderer{tag: MatchLocale(locale)}
	r.labels = LabelsFor(locale)

	tmpl, err := template.New("render").Funcs(template.FuncMap{
		"orElse":     orElse,
		"trim":       strings.TrimSpace,
		"truncate":   truncate,
		"preview":    func(s string) string { return truncate(FeedbackPreviewRunes, s) },
		"emptyRow":   func(span int, text string) emptyRow { return emptyRow{Span: span, Text: text} },
		"date":       r.date,
		"pathEscape": pathEscape,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.tmpl = tmpl

	r.loading, err = r.execute("loading", struct{ L Labels }{r.labels})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Labels() Labels { return r.labels }

// Lang is the BCP 47 tag of the rendering locale.
func (r *Renderer) Lang() string { return r.tag.String() }

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Loading is the indicator a container shows while its request is in flight.
func (r *Renderer) Loading() template.HTML { return r.loading }

// Notice renders an error notice. It never fails.
func (r *Renderer) Notice(message string) template.HTML {
	out, err := r.execute("notice", struct{ Message string }{message})
	if err != nil {
		return template.HTML(`<div class="alert alert-danger notice" role="alert">` + template.HTMLEscapeString(message) + `</div>`)
	}
	return out
}

// SaveButton is the state of a job card's save action.
type SaveButton struct {
	Payload string // the posting as JSON
	Saved   bool
	Alert   string
}

type saveButtonView struct {
	SaveButton
	L Labels
}

// NewSaveButton returns the initial, enabled button for job.
func NewSaveButton(job models.JobPosting) (SaveButton, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return SaveButton{}, fmt.Errorf("failed to encode job: %w", err)
	}
	return SaveButton{Payload: string(payload)}, nil
}

func (r *Renderer) SaveButton(b SaveButton) (template.HTML, error) {
	return r.execute("save-button", saveButtonView{SaveButton: b, L: r.labels})
}

type jobCard struct {
	Job    models.JobPosting
	Button saveButtonView
}

// JobCards renders crawled postings as cards in server order, each with a
// save action. An empty list renders the no-results notice.
func (r *Renderer) JobCards(jobs []models.JobPosting) (template.HTML, error) {
	cards := make([]jobCard, 0, len(jobs))
	for _, job := range jobs {
		button, err := NewSaveButton(job)
		if err != nil {
			return "", err
		}
		cards = append(cards, jobCard{Job: job, Button: saveButtonView{SaveButton: button, L: r.labels}})
	}
	return r.execute("job-cards", struct {
		L     Labels
		Cards []jobCard
	}{r.labels, cards})
}

func (r *Renderer) RecentJobs(jobs []models.JobPosting) (template.HTML, error) {
	return r.execute("recent-jobs", struct {
		L    Labels
		Jobs []models.JobPosting
	}{r.labels, jobs})
}

// StatusTally renders one card per known status.
func (r *Renderer) StatusTally(apps []models.Application) (template.HTML, error) {
	return r.execute("status-tally", struct {
		L     Labels
		Tally models.StatusTally
	}{r.labels, models.TallyStatuses(apps)})
}

func (r *Renderer) RecentFeedbacks(feedbacks []models.Feedback) (template.HTML, error) {
	return r.execute("recent-feedbacks", struct {
		L         Labels
		Feedbacks []models.Feedback
	}{r.labels, feedbacks})
}

func (r *Renderer) JobRows(jobs []models.JobPosting) (template.HTML, error) {
	return r.execute("job-rows", struct {
		L    Labels
		Jobs []models.JobPosting
	}{r.labels, jobs})
}

func (r *Renderer) ResumeRows(resumes []models.Resume) (template.HTML, error) {
	return r.execute("resume-rows", struct {
		L       Labels
		Resumes []models.Resume
	}{r.labels, resumes})
}

func (r *Renderer) ApplicationRows(apps []models.Application) (template.HTML, error) {
	return r.execute("application-rows", struct {
		L            Labels
		Applications []models.Application
	}{r.labels, apps})
}

func (r *Renderer) FeedbackRows(feedbacks []models.Feedback) (template.HTML, error) {
	return r.execute("feedback-rows", struct {
		L         Labels
		Feedbacks []models.Feedback
	}{r.labels, feedbacks})
}

func (r *Renderer) JobDetail(job models.JobPosting) (template.HTML, error) {
	return r.execute("job-detail", struct {
		L   Labels
		Job models.JobPosting
	}{r.labels, job})
}

func (r *Renderer) ResumeDetail(resume models.Resume) (template.HTML, error) {
	return r.execute("resume-detail", struct {
		L      Labels
		Resume models.Resume
	}{r.labels, resume})
}

func (r *Renderer) FeedbackDetail(feedback models.Feedback) (template.HTML, error) {
	return r.execute("feedback-detail", struct {
		L        Labels
		Feedback models.Feedback
	}{r.labels, feedback})
}

func (r *Renderer) Compare(cmp models.Compare) (template.HTML, error) {
	return r.execute("compare", struct {
		L       Labels
		Compare models.Compare
	}{r.labels, cmp})
}

type emptyRow struct {
	Span int
	Text string
}

func orElse(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func truncate(n int, s string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

func pathEscape(v fmt.Stringer) string {
	return url.PathEscape(v.String())
}

// date formats a timestamp the way the locale writes short dates. Zero and
// missing timestamps render empty.
func (r *Renderer) date(v any) string {
	var t time.Time
	switch ts := v.(type) {
	case models.Timestamp:
		t = ts.Time
	case *models.Timestamp:
		if ts != nil {
			t = ts.Time
		}
	case time.Time:
		t = ts
	}
	if t.IsZero() {
		return ""
	}
	if r.tag == language.English {
		return t.Format("1/2/2006")
	}
	return t.Format("2006. 1. 2.")
}
