package web

import (
	"fmt"
	"html/template"

	"github.com/khrees2412/jobdesk/internal/pages"
	"github.com/khrees2412/jobdesk/internal/render"
)

func (h *HTTPHandler) pageTitle(page string) string {
	l := h.Render.Labels()
	switch pages.Page(page) {
	case pages.Dashboard:
		return l.Dashboard
	case pages.Jobs:
		return l.Jobs
	case pages.Resumes:
		return l.Resumes
	case pages.Applications:
		return l.Applications
	case pages.Feedbacks:
		return l.Feedbacks
	}
	for _, p := range h.Crawler.Registry().All() {
		if p.Page() == page {
			return fmt.Sprintf(l.CrawlerNav, p.Label)
		}
	}
	return page
}

func (h *HTTPHandler) contents(ids []string) (map[string]template.HTML, error) {
	out := make(map[string]template.HTML, len(ids))
	for _, id := range ids {
		c, err := h.Doc.Lookup(id)
		if err != nil {
			return nil, err
		}
		out[id] = c.Content()
	}
	return out, nil
}

// sections snapshots every page section from the document.
func (h *HTTPHandler) sections() ([]render.PageView, error) {
	crawlerPages := make(map[string]string)
	for _, p := range h.Crawler.Registry().All() {
		crawlerPages[p.Page()] = p.ID
	}

	var views []render.PageView
	for _, name := range h.Nav.Pages() {
		section, err := h.Doc.Lookup(pages.SectionID(name))
		if err != nil {
			return nil, err
		}
		view := render.PageView{Name: name, Hidden: section.Hidden()}

		if platform, ok := crawlerPages[name]; ok {
			panel, err := h.Crawler.Panel(platform)
			if err != nil {
				return nil, err
			}
			view.Crawler = &panel
		} else {
			view.Contents, err = h.contents(pages.Page(name).Containers())
			if err != nil {
				return nil, err
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (h *HTTPHandler) shell() (render.Shell, error) {
	sections, err := h.sections()
	if err != nil {
		return render.Shell{}, err
	}
	details, err := h.contents(pages.DetailContainers())
	if err != nil {
		return render.Shell{}, err
	}

	active := h.Nav.Active()
	nav := make([]render.NavItem, 0, len(sections))
	for _, s := range sections {
		nav = append(nav, render.NavItem{Page: s.Name, Title: h.pageTitle(s.Name), Active: s.Name == active})
	}
	return render.Shell{Nav: nav, Sections: sections, Details: details}, nil
}
