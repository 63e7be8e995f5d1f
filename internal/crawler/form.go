package crawler

import (
	"errors"
	"sync"
)

var ErrBusy = errors.New("a crawl is already running for this platform")

// State of a crawler form.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Form tracks one platform's submit control. Only one submission per form
// runs at a time.
type Form struct {
	platform Platform

	mu    sync.Mutex
	state State
	last  State
	url   string
}

func newForm(p Platform) *Form {
	return &Form{platform: p}
}

func (f *Form) Platform() Platform { return f.platform }

// State is the live state: Idle or Submitting.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Last is the terminal state of the most recent submission, Idle if none finished.
func (f *Form) Last() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// LastURL is the URL of the most recent submission.
func (f *Form) LastURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.url
}

// Disabled reports whether the submit control is disabled.
func (f *Form) Disabled() bool { return f.State() == Submitting }

func (f *Form) begin(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Submitting {
		return ErrBusy
	}
	f.state = Submitting
	f.url = url
	return nil
}

// whileIdle runs fn unless a submission is in flight.
func (f *Form) whileIdle(fn func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Submitting {
		return ErrBusy
	}
	fn()
	return nil
}

// finish passes through the terminal state and re-enables the control.
func (f *Form) finish(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ok {
		f.last = Succeeded
	} else {
		f.last = Failed
	}
	f.state = Idle
}
