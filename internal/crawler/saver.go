package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/sirupsen/logrus"
)

var ErrInvalidPayload = errors.New("invalid job payload")

// Saver performs a job card's save action.
type Saver struct {
	client *client.Client
	labels render.Labels
	log    logrus.FieldLogger
}

func NewSaver(c *client.Client, labels render.Labels, log logrus.FieldLogger) *Saver {
	return &Saver{client: c, labels: labels, log: log}
}

// SaveJob posts a posting to the jobs endpoint.
func (s *Saver) SaveJob(ctx context.Context, job models.JobPosting) (models.SavedJob, error) {
	return client.Fetch[models.SavedJob](ctx, s.client, client.SaveJob(job))
}

// Save decodes a card's data-job payload, saves it and returns the next
// button state: disabled and relabelled on success, enabled with an alert
// on failure.
func (s *Saver) Save(ctx context.Context, payload string) (render.SaveButton, error) {
	button := render.SaveButton{Payload: payload}
	log := s.log.WithField("request_id", uuid.NewString())

	var job models.JobPosting
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		log.WithError(err).Warn("invalid job payload")
		button.Alert = s.labels.SaveFailed
		return button, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	saved, err := s.SaveJob(ctx, job)
	if err != nil {
		button.Alert = s.labels.SaveFailed
		var apiErr *client.Error
		if errors.As(err, &apiErr) {
			if apiErr.Message != "" {
				button.Alert = apiErr.Message
			}
			log.WithField("status", apiErr.StatusCode).Warn("save job rejected")
		} else {
			log.WithError(err).Error("save job failed")
		}
		return button, err
	}

	log.WithField("job_id", saved.JobID.String()).Info("job saved")
	button.Saved = true
	return button, nil
}
