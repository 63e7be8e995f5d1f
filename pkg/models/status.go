package models

// ApplicationStatus is the server's display string for an application stage.
type ApplicationStatus string

const (
	StatusApplied         ApplicationStatus = "지원 완료"
	StatusDocumentPassed  ApplicationStatus = "서류 합격"
	StatusInterviewPassed ApplicationStatus = "면접 합격"
	StatusFinalPassed     ApplicationStatus = "최종 합격"
	StatusRejected        ApplicationStatus = "불합격"
)

// Statuses lists the known statuses in pipeline order.
func Statuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusApplied,
		StatusDocumentPassed,
		StatusInterviewPassed,
		StatusFinalPassed,
		StatusRejected,
	}
}

// Known reports whether s is one of the five tracked statuses.
func (s ApplicationStatus) Known() bool {
	switch s {
	case StatusApplied, StatusDocumentPassed, StatusInterviewPassed, StatusFinalPassed, StatusRejected:
		return true
	}
	return false
}

// BadgeClass is the dashboard card colour for the status.
func (s ApplicationStatus) BadgeClass() string {
	switch s {
	case StatusApplied:
		return "bg-info"
	case StatusDocumentPassed:
		return "bg-primary"
	case StatusInterviewPassed:
		return "bg-warning"
	case StatusFinalPassed:
		return "bg-success"
	case StatusRejected:
		return "bg-danger"
	}
	return "bg-secondary"
}

// RowClass is the status badge class used in the applications table.
func (s ApplicationStatus) RowClass() string {
	switch s {
	case StatusApplied:
		return "status-applied"
	case StatusDocumentPassed:
		return "status-document-passed"
	case StatusInterviewPassed:
		return "status-interview-passed"
	case StatusFinalPassed:
		return "status-final-passed"
	case StatusRejected:
		return "status-failed"
	}
	return ""
}

// StatusCount is one bucket of a StatusTally.
type StatusCount struct {
	Status ApplicationStatus
	Count  int
}

// StatusTally holds one bucket per known status, in Statuses() order.
type StatusTally []StatusCount

// Count returns the bucket size for status, zero for unknown statuses.
func (t StatusTally) Count(status ApplicationStatus) int {
	for _, b := range t {
		if b.Status == status {
			return b.Count
		}
	}
	return 0
}

// Total is the number of applications that landed in a bucket.
func (t StatusTally) Total() int {
	n := 0
	for _, b := range t {
		n += b.Count
	}
	return n
}

// TallyStatuses groups applications by status. Unrecognised statuses are ignored.
func TallyStatuses(apps []Application) StatusTally {
	statuses := Statuses()
	tally := make(StatusTally, len(statuses))
	index := make(map[ApplicationStatus]int, len(statuses))
	for i, s := range statuses {
		tally[i] = StatusCount{Status: s}
		index[s] = i
	}

	for _, app := range apps {
		if i, ok := index[app.Status]; ok {
			tally[i].Count++
		}
	}
	return tally
}
