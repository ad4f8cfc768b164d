package handlers

import (
	"net/http"
	"strings"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/services"
	"github.com/Zachkp/portfolio/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicHandler serves the portfolio page and its contact form.
type PublicHandler struct {
	responder
	svc      *services.Services
	defaults models.PortfolioData
}

// NewPublicHandler shows defaults for any profile or contact field the
// owner has not filled in.
func NewPublicHandler(svc *services.Services, defaults models.PortfolioData, log *zap.SugaredLogger) *PublicHandler {
	return &PublicHandler{responder: responder{log: log}, svc: svc, defaults: defaults}
}

func (h *PublicHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.POST("/contact", h.contact)
	r.GET("/resume", h.resume)
	r.GET("/healthz", h.healthz)
}

func (h *PublicHandler) index(c *gin.Context) {
	ctx := c.Request.Context()
	var content views.PublicContent
	var err error

	if content.Data, _, err = h.svc.Profile.Get(ctx); err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/")
		return
	}
	if content.Education, err = h.svc.Education.List(ctx); err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/")
		return
	}
	if content.Skills, err = h.svc.Skills.List(ctx); err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/")
		return
	}
	if content.Projects, err = h.svc.Projects.List(ctx); err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/")
		return
	}
	if content.Appearance, err = h.svc.Appearance.Get(ctx); err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/")
		return
	}

	page := views.NewPublicPage(content, h.defaults)
	c.HTML(http.StatusOK, "index.html", views.NewPublicView(page, notify.Pop(c)))
}

func (h *PublicHandler) contact(c *gin.Context) {
	var in services.MessageInput
	if err := c.ShouldBind(&in); err != nil {
		h.redirect(c, "/#contact", notify.New(notify.Error, "Please fill in all fields"), nil)
		return
	}
	n, err := h.svc.Messages.Send(c.Request.Context(), in)
	h.redirect(c, "/#contact", n, err)
}

// resume sends visitors to the configured CV, if there is one.
func (h *PublicHandler) resume(c *gin.Context) {
	data, _, err := h.svc.Profile.Get(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/")
		return
	}
	url := strings.TrimSpace(data.ResumeURL)
	if url == "" || url == "#" {
		url = h.defaults.ResumeURL
	}
	if url == "" || url == "#" {
		notify.Set(c, notify.New(notify.Info, "CV download will be available soon! Please contact me directly."))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.Redirect(http.StatusFound, url)
}

func (h *PublicHandler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
