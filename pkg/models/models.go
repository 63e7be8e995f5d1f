package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID is a record identifier. The API emits integers, crawl results sometimes strings.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers so the API sees what it sent.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Timestamp decodes the datetime shapes the tracker API produces. Values it
// cannot parse decode to the zero time instead of failing the whole payload.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// ParseTimestamp tries each known layout and returns the zero time when none match.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// JobPosting represents a job posting, crawled or saved
type JobPosting struct {
	ID             ID         `json:"id,omitempty"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Description    string     `json:"description,omitempty"`
	Deadline       string     `json:"deadline,omitempty"`
	Link           string     `json:"link,omitempty"`
	Experience     string     `json:"experience,omitempty"`
	Education      string     `json:"education,omitempty"`
	EmploymentType string     `json:"employment_type,omitempty"`
	Location       string     `json:"location,omitempty"`
	Salary         string     `json:"salary,omitempty"`
	Platform       string     `json:"platform,omitempty"`
	CrawledAt      *Timestamp `json:"crawled_at,omitempty"`
}

// Resume represents an uploaded cover letter / resume text
type Resume struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	TextContent string    `json:"text_content"`
	UploadedAt  Timestamp `json:"uploaded_at"`
}

// Application represents a job application
type Application struct {
	ID          ID                `json:"id"`
	Company     string            `json:"company"`
	JobTitle    string            `json:"job_title"`
	ResumeTitle string            `json:"resume_title"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   Timestamp         `json:"applied_at"`
	JobID       ID                `json:"job_id"`
	ResumeID    ID                `json:"resume_id"`
}

// Feedback represents AI feedback on a resume, optionally against a job
type Feedback struct {
	ID           ID        `json:"id"`
	ResumeTitle  string    `json:"resume_title"`
	FeedbackText string    `json:"feedback_text"`
	CreatedAt    Timestamp `json:"created_at"`
	JobID        ID        `json:"job_id,omitempty"`
}

// HasJob reports whether the feedback was requested against a job posting.
func (f Feedback) HasJob() bool { return f.JobID != "" }

// CrawlRequest is the body of POST /crawl
type CrawlRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// CrawlResult is the response of POST /crawl. Success may be omitted by the server.
type CrawlResult struct {
	Success *bool        `json:"success,omitempty"`
	Jobs    []JobPosting `json:"jobs"`
	Message string       `json:"message,omitempty"`
}

// Failed reports an explicit success:false.
func (r CrawlResult) Failed() bool {
	return r.Success != nil && !*r.Success
}

// Compare is the response of GET /compare
type Compare struct {
	Job    JobPosting `json:"job"`
	Resume Resume     `json:"resume"`
}

// SavedJob is the response of POST /jobs
type SavedJob struct {
	JobID ID `json:"job_id"`
}

// List decodes either a bare JSON array or an object wrapping the array.
type List[T any] []T

var listEnvelopeKeys = []string{"items", "data", "jobs", "resumes", "applications", "feedbacks"}

func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = List[T]{}
		return nil
	}
	if b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	for _, key := range listEnvelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*l = items
		return nil
	}
	return fmt.Errorf("expected a JSON array or a list envelope")
}
