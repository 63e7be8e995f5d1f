package client

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/khrees2412/jobdesk/pkg/models"
)

func withLimit(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

// Jobs lists saved postings. limit <= 0 lists all of them.
func Jobs(limit int) Call {
	return Call{Method: http.MethodGet, Path: "/jobs", Query: withLimit(limit)}
}

func Job(id models.ID) Call {
	return Call{Method: http.MethodGet, Path: "/jobs/" + url.PathEscape(id.String())}
}

// SaveJob posts a full posting to the jobs endpoint.
func SaveJob(job models.JobPosting) Call {
	return Call{Method: http.MethodPost, Path: "/jobs", Body: job}
}

func Resumes() Call {
	return Call{Method: http.MethodGet, Path: "/resumes"}
}

func Resume(id models.ID) Call {
	return Call{Method: http.MethodGet, Path: "/resumes/" + url.PathEscape(id.String())}
}

func Applications() Call {
	return Call{Method: http.MethodGet, Path: "/applications"}
}

// Feedbacks lists feedback entries, newest first as the API returns them.
func Feedbacks(limit int) Call {
	return Call{Method: http.MethodGet, Path: "/feedbacks", Query: withLimit(limit)}
}

func Feedback(id models.ID) Call {
	return Call{Method: http.MethodGet, Path: "/feedbacks/" + url.PathEscape(id.String())}
}

func Compare(jobID, resumeID models.ID) Call {
	return Call{
		Method: http.MethodGet,
		Path:   "/compare",
		Query:  url.Values{"job_id": {jobID.String()}, "resume_id": {resumeID.String()}},
	}
}

// Crawl posts a crawl request to endpoint, normally "/crawl".
func Crawl(endpoint string, req models.CrawlRequest) Call {
	if endpoint == "" {
		endpoint = "/crawl"
	}
	return Call{Method: http.MethodPost, Path: endpoint, Body: req}
}
