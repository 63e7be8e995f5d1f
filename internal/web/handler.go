package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khrees2412/jobdesk/internal/crawler"
	"github.com/khrees2412/jobdesk/internal/pages"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/internal/ui"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/sirupsen/logrus"
)

// HTTPHandler serves the shell page and the htmx fragments.
type HTTPHandler struct {
	Doc     *ui.Document
	Render  *render.Renderer
	Nav     *pages.Navigator
	Loaders *pages.Loaders
	Crawler *crawler.Controller
	Saver   *crawler.Saver
	Log     logrus.FieldLogger
}

// NewHTTPHandler registers every route on router.
func NewHTTPHandler(router *gin.Engine, h *HTTPHandler) {
	router.GET("/", h.Index)
	router.GET("/health", h.Health)

	fragments := router.Group("/ui")
	fragments.GET("/pages/:page", h.ShowPage)
	fragments.GET("/containers/:id", h.Container)
	fragments.POST("/crawl/:platform", h.Crawl)
	fragments.POST("/crawl/:platform/test", h.CrawlTest)
	fragments.POST("/jobs/save", h.SaveJob)
	fragments.GET("/jobs/:id", h.JobDetail)
	fragments.GET("/resumes/:id", h.ResumeDetail)
	fragments.GET("/feedbacks/:id", h.FeedbackDetail)
	fragments.GET("/compare", h.Compare)
}

func (h *HTTPHandler) fragment(c *gin.Context, status int, content template.HTML) {
	c.Data(status, "text/html; charset=utf-8", []byte(content))
}

func (h *HTTPHandler) notice(c *gin.Context, status int, msg string) {
	h.fragment(c, status, h.Render.Notice(msg))
}

func (h *HTTPHandler) renderFailed(c *gin.Context, err error) {
	h.Log.WithError(err).WithField("path", c.Request.URL.Path).Error("render failed")
	h.notice(c, http.StatusInternalServerError, h.Render.Labels().DetailLoadFailed)
}

// Index loads the active page and serves the full document.
func (h *HTTPHandler) Index(c *gin.Context) {
	if _, err := h.Nav.Show(c.Request.Context(), h.Nav.Active()); err != nil {
		h.renderFailed(c, err)
		return
	}

	shell, err := h.shell()
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	out, err := h.Render.Page(shell)
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	h.fragment(c, http.StatusOK, out)
}

func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ShowPage switches pages and returns every section with its visibility.
func (h *HTTPHandler) ShowPage(c *gin.Context) {
	page := c.Param("page")
	res, err := h.Nav.Show(c.Request.Context(), page)
	if errors.Is(err, pages.ErrUnknownPage) {
		h.notice(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	if failed := res.Failed(); len(failed) > 0 {
		h.Log.WithFields(logrus.Fields{"page": page, "containers": failed}).Info("page loaded with failures")
	}

	sections, err := h.sections()
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	out, err := h.Render.Main(sections)
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	h.fragment(c, http.StatusOK, out)
}

func (h *HTTPHandler) Container(c *gin.Context) {
	container, err := h.Doc.Lookup(c.Param("id"))
	if err != nil {
		h.notice(c, http.StatusNotFound, err.Error())
		return
	}
	h.fragment(c, http.StatusOK, container.Content())
}

func (h *HTTPHandler) Crawl(c *gin.Context) {
	platform := c.Param("platform")
	_, err := h.Crawler.Submit(c.Request.Context(), platform, c.PostForm("url"))
	h.crawlResponse(c, platform, err)
}

func (h *HTTPHandler) CrawlTest(c *gin.Context) {
	platform := c.Param("platform")
	_, err := h.Crawler.SubmitTest(c.Request.Context(), platform)
	h.crawlResponse(c, platform, err)
}

func (h *HTTPHandler) crawlResponse(c *gin.Context, platform string, err error) {
	status := http.StatusOK
	switch {
	case errors.Is(err, crawler.ErrUnknownPlatform):
		h.notice(c, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, crawler.ErrEmptyURL), errors.Is(err, crawler.ErrInvalidURL):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, crawler.ErrBusy):
		h.notice(c, http.StatusConflict, h.Render.Labels().Busy)
		return
	case err != nil:
		h.renderFailed(c, err)
		return
	}

	panel, err := h.Crawler.Panel(platform)
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	out, err := h.Render.CrawlResults(panel)
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	h.fragment(c, status, out)
}

// SaveJob handles a card's save button and returns the replacement button.
func (h *HTTPHandler) SaveJob(c *gin.Context) {
	payload := strings.TrimSpace(c.PostForm("job"))
	if payload == "" {
		h.notice(c, http.StatusUnprocessableEntity, h.Render.Labels().SaveFailed)
		return
	}

	status := http.StatusOK
	button, err := h.Saver.Save(c.Request.Context(), payload)
	if errors.Is(err, crawler.ErrInvalidPayload) {
		status = http.StatusUnprocessableEntity
	}

	out, err := h.Render.SaveButton(button)
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	h.fragment(c, status, out)
}

func (h *HTTPHandler) JobDetail(c *gin.Context) {
	out, err := h.Loaders.JobDetail(c.Request.Context(), models.ID(c.Param("id")))
	h.detailResponse(c, pages.JobDetailContent, out, err)
}

func (h *HTTPHandler) ResumeDetail(c *gin.Context) {
	out, err := h.Loaders.ResumeDetail(c.Request.Context(), models.ID(c.Param("id")))
	h.detailResponse(c, pages.ResumeDetailContent, out, err)
}

func (h *HTTPHandler) FeedbackDetail(c *gin.Context) {
	out, err := h.Loaders.FeedbackDetail(c.Request.Context(), models.ID(c.Param("id")))
	h.detailResponse(c, pages.FeedbackDetailContent, out, err)
}

func (h *HTTPHandler) Compare(c *gin.Context) {
	var query struct {
		JobID    string `form:"job_id" binding:"required"`
		ResumeID string `form:"resume_id" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.notice(c, http.StatusUnprocessableEntity, h.Render.Labels().CompareLoadFailed)
		return
	}

	out, err := h.Loaders.Compare(c.Request.Context(), models.ID(query.JobID), models.ID(query.ResumeID))
	h.detailResponse(c, pages.CompareContent, out, err)
}

func (h *HTTPHandler) detailResponse(c *gin.Context, id string, out pipeline.Outcome, err error) {
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	container, err := h.Doc.Lookup(id)
	if err != nil {
		h.renderFailed(c, err)
		return
	}
	if out.Stale {
		h.Log.WithField("container", id).Debug("detail superseded by a newer request")
		h.fragment(c, http.StatusOK, out.Content)
		return
	}
	h.fragment(c, http.StatusOK, container.Content())
}
