package render

import (
	"golang.org/x/text/language"
)

// Labels is the fixed UI text for one locale.
type Labels struct {
	AppTitle string
	Loading  string

	Unspecified   string
	NoDescription string
	NoDeadline    string
	Save          string
	Saved         string

	NoCrawledJobs  string
	NoJobs         string
	NoResumes      string
	NoApplications string
	NoFeedbacks    string

	CrawlFailed            string
	EmptyURL               string
	InvalidURL             string
	Busy                   string
	SaveFailed             string
	JobsLoadFailed         string
	ResumesLoadFailed      string
	ApplicationsLoadFailed string
	FeedbacksLoadFailed    string
	DetailLoadFailed       string
	CompareLoadFailed      string

	Dashboard        string
	Jobs             string
	Resumes          string
	Applications     string
	Feedbacks        string
	RecentJobs       string
	ApplicationStats string
	RecentFeedbacks  string
	CrawlerNav       string // printf format, platform label

	Title          string
	Company        string
	Deadline       string
	Experience     string
	Education      string
	EmploymentType string
	Location       string
	Salary         string
	Link           string
	CrawledAt      string
	UploadedAt     string
	JobTitle       string
	ResumeTitle    string
	Status         string
	AppliedAt      string
	CreatedAt      string
	JobAttached    string
	Actions        string

	Yes            string
	No             string
	ViewDetail     string
	Detail         string
	Compare        string
	JobDescription string
	ResumeContent  string
	FeedbackFor    string // printf format, resume title

	URLPlaceholder string
	Crawl          string
	TestCrawl      string
}

var korean = Labels{
	AppTitle: "자소서 · 채용 공고 관리",
	Loading:  "로딩 중...",

	Unspecified:   "미정",
	NoDescription: "상세 설명 없음",
	NoDeadline:    "마감일 없음",
	Save:          "저장",
	Saved:         "저장됨",

	NoCrawledJobs:  "크롤링된 채용 공고가 없습니다.",
	NoJobs:         "등록된 채용 공고가 없습니다.",
	NoResumes:      "등록된 자소서가 없습니다.",
	NoApplications: "등록된 지원 결과가 없습니다.",
	NoFeedbacks:    "등록된 피드백이 없습니다.",

	CrawlFailed:            "크롤링 중 오류가 발생했습니다.",
	EmptyURL:               "URL을 입력해주세요.",
	InvalidURL:             "올바른 URL을 입력해주세요. (http 또는 https)",
	Busy:                   "이미 크롤링이 진행 중입니다.",
	SaveFailed:             "채용 공고 저장 중 오류가 발생했습니다.",
	JobsLoadFailed:         "채용 공고 목록을 불러오는 중 오류가 발생했습니다.",
	ResumesLoadFailed:      "자소서 목록을 불러오는 중 오류가 발생했습니다.",
	ApplicationsLoadFailed: "지원 현황을 불러오는 중 오류가 발생했습니다.",
	FeedbacksLoadFailed:    "피드백 목록을 불러오는 중 오류가 발생했습니다.",
	DetailLoadFailed:       "상세 정보를 불러오는 중 오류가 발생했습니다.",
	CompareLoadFailed:      "자소서와 채용 공고 비교 중 오류가 발생했습니다.",

	Dashboard:        "대시보드",
	Jobs:             "채용 공고",
	Resumes:          "자소서",
	Applications:     "지원 현황",
	Feedbacks:        "피드백",
	RecentJobs:       "최근 채용 공고",
	ApplicationStats: "지원 통계",
	RecentFeedbacks:  "최근 피드백",
	CrawlerNav:       "%s 크롤링",

	Title:          "제목",
	Company:        "회사",
	Deadline:       "마감일",
	Experience:     "경력",
	Education:      "학력",
	EmploymentType: "고용 형태",
	Location:       "근무 지역",
	Salary:         "급여",
	Link:           "링크",
	CrawledAt:      "수집일",
	UploadedAt:     "업로드",
	JobTitle:       "채용 공고",
	ResumeTitle:    "자소서",
	Status:         "상태",
	AppliedAt:      "지원일",
	CreatedAt:      "생성",
	JobAttached:    "채용 공고 연결",
	Actions:        "관리",

	Yes:            "있음",
	No:             "없음",
	ViewDetail:     "자세히 보기",
	Detail:         "상세",
	Compare:        "비교",
	JobDescription: "채용 공고 내용",
	ResumeContent:  "자소서 내용",
	FeedbackFor:    "%s에 대한 피드백",

	URLPlaceholder: "채용 공고 URL",
	Crawl:          "크롤링",
	TestCrawl:      "테스트",
}

var english = Labels{
	AppTitle: "Resume & Job Tracker",
	Loading:  "Loading...",

	Unspecified:   "unspecified",
	NoDescription: "no description",
	NoDeadline:    "no deadline",
	Save:          "save",
	Saved:         "saved",

	NoCrawledJobs:  "No job postings were crawled.",
	NoJobs:         "No saved job postings.",
	NoResumes:      "No resumes uploaded.",
	NoApplications: "No applications yet.",
	NoFeedbacks:    "No feedback yet.",

	CrawlFailed:            "An error occurred while crawling.",
	EmptyURL:               "Please enter a URL.",
	InvalidURL:             "Please enter a valid http or https URL.",
	Busy:                   "A crawl is already running.",
	SaveFailed:             "An error occurred while saving the job posting.",
	JobsLoadFailed:         "Could not load job postings.",
	ResumesLoadFailed:      "Could not load resumes.",
	ApplicationsLoadFailed: "Could not load applications.",
	FeedbacksLoadFailed:    "Could not load feedback.",
	DetailLoadFailed:       "Could not load details.",
	CompareLoadFailed:      "Could not compare the resume with the job posting.",

	Dashboard:        "Dashboard",
	Jobs:             "Jobs",
	Resumes:          "Resumes",
	Applications:     "Applications",
	Feedbacks:        "Feedback",
	RecentJobs:       "Recent jobs",
	ApplicationStats: "Application status",
	RecentFeedbacks:  "Recent feedback",
	CrawlerNav:       "%s crawler",

	Title:          "Title",
	Company:        "Company",
	Deadline:       "Deadline",
	Experience:     "Experience",
	Education:      "Education",
	EmploymentType: "Employment type",
	Location:       "Location",
	Salary:         "Salary",
	Link:           "Link",
	CrawledAt:      "Crawled",
	UploadedAt:     "Uploaded",
	JobTitle:       "Job",
	ResumeTitle:    "Resume",
	Status:         "Status",
	AppliedAt:      "Applied",
	CreatedAt:      "Created",
	JobAttached:    "Job attached",
	Actions:        "Actions",

	Yes:            "yes",
	No:             "no",
	ViewDetail:     "View details",
	Detail:         "Details",
	Compare:        "Compare",
	JobDescription: "Job description",
	ResumeContent:  "Resume",
	FeedbackFor:    "Feedback on %s",

	URLPlaceholder: "Job posting URL",
	Crawl:          "Crawl",
	TestCrawl:      "Test",
}

var matcher = language.NewMatcher([]language.Tag{language.Korean, language.English})

// MatchLocale picks the supported locale closest to the requested one.
// Anything unrecognised falls back to Korean.
func MatchLocale(locale string) language.Tag {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	if base.String() == "en" {
		return language.English
	}
	return language.Korean
}

// LabelsFor returns the labels of the locale MatchLocale picks.
func LabelsFor(locale string) Labels {
	if MatchLocale(locale) == language.English {
		return english
	}
	return korean
}
