package crawler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyURL   = errors.New("url is required")
	ErrInvalidURL = errors.New("url must be an absolute http or https URL")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate is the single check every crawl entry point runs. It returns the
// trimmed URL.
func Validate(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", ErrEmptyURL
	}
	if err := validate.Var(u, "url"); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, u)
	}

	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, u)
	}
	return u, nil
}
