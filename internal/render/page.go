package render

import (
	"fmt"
	"html/template"
)

// CrawlerPanel is one platform's crawl form and its results area.
type CrawlerPanel struct {
	Platform      string
	Label         string
	ResultsID     string
	ListID        string
	ResultsHidden bool
	Results       template.HTML
}

// PageView is one page section. Contents maps container ids to their
// current fragments; Crawler is set for crawler pages.
type PageView struct {
	Name     string
	Hidden   bool
	Contents map[string]template.HTML
	Crawler  *CrawlerPanel
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Page   string
	Title  string
	Active bool
}

// Shell is everything the full page needs.
type Shell struct {
	Nav      []NavItem
	Sections []PageView
	Details  map[string]template.HTML
}

type sectionView struct {
	PageView
	L    Labels
	Body template.HTML
}

func (r *Renderer) section(v PageView) (sectionView, error) {
	name := "page-" + v.Name
	if v.Crawler != nil {
		name = "page-crawler"
	}
	if r.tmpl.Lookup(name) == nil {
		return sectionView{}, fmt.Errorf("render: no template for page %q", v.Name)
	}
	body, err := r.execute(name, sectionView{PageView: v, L: r.labels})
	if err != nil {
		return sectionView{}, err
	}
	return sectionView{PageView: v, L: r.labels, Body: body}, nil
}

// Main renders every page section, hidden ones included, as the content
// of the main element.
func (r *Renderer) Main(pages []PageView) (template.HTML, error) {
	sections := make([]sectionView, 0, len(pages))
	for _, p := range pages {
		s, err := r.section(p)
		if err != nil {
			return "", err
		}
		sections = append(sections, s)
	}
	return r.execute("main", sections)
}

// CrawlResults renders a crawler results area with its list container.
func (r *Renderer) CrawlResults(p CrawlerPanel) (template.HTML, error) {
	return r.execute("crawl-results", p)
}

// Page renders the full HTML document.
func (r *Renderer) Page(s Shell) (template.HTML, error) {
	main, err := r.Main(s.Sections)
	if err != nil {
		return "", err
	}
	return r.execute("shell", struct {
		Shell
		L    Labels
		Lang string
		Main template.HTML
	}{s, r.labels, r.Lang(), main})
}
