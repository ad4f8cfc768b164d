package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
	"github.com/Zachkp/portfolio/internal/services"
	"github.com/Zachkp/portfolio/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImportSize bounds an uploaded backup file.
const maxImportSize = 10 << 20

// AdminHandler serves the admin panel.
type AdminHandler struct {
	responder
	svc *services.Services
	now func() time.Time
}

func NewAdminHandler(svc *services.Services, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{responder: responder{log: log}, svc: svc, now: time.Now}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.dashboard)
	rg.GET("/api/stats", h.stats)

	rg.GET("/profile", h.showProfile)
	rg.POST("/profile", h.saveProfile)
	rg.POST("/profile/image", h.uploadImage)
	rg.POST("/profile/image/reset", h.resetImage)
	rg.GET("/contact", h.showContact)
	rg.POST("/contact", h.saveContact)

	rg.GET("/education", h.showEducation)
	rg.POST("/education", h.submitEducation)
	rg.GET("/education/:id/edit", h.editEducation)
	rg.POST("/education/:id/delete", h.deleteEducation)

	rg.GET("/skills", h.showSkills)
	rg.POST("/skills", h.submitSkill)
	rg.GET("/skills/:id/edit", h.editSkill)
	rg.POST("/skills/:id/delete", h.deleteSkill)

	rg.GET("/projects", h.showProjects)
	rg.POST("/projects", h.submitProject)
	rg.GET("/projects/:id/edit", h.editProject)
	rg.POST("/projects/:id/delete", h.deleteProject)

	rg.GET("/messages", h.showMessages)
	rg.POST("/messages/:id/delete", h.deleteMessage)

	rg.GET("/appearance", h.showAppearance)
	rg.POST("/appearance", h.applyAppearance)

	rg.GET("/data", h.showData)
	rg.GET("/export", h.export)
	rg.GET("/export/:scope", h.export)
	rg.POST("/import", h.importData)
	rg.POST("/clear/:scope", h.clear)
}

func (h *AdminHandler) page(c *gin.Context, section string, notice *notify.Notification, body any) {
	if notice == nil {
		notice = notify.Pop(c)
	}
	c.HTML(http.StatusOK, "admin.html", views.NewAdminPage(section, notice, body))
}

func (h *AdminHandler) dashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return
	}
	h.page(c, views.SectionDashboard, nil, views.NewDashboard(*stats, h.now()))
}

func (h *AdminHandler) stats(c *gin.Context) {
	stats, err := h.svc.Dashboard.Stats(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to load admin stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Profile and contact.

func (h *AdminHandler) portfolio(c *gin.Context) (*models.PortfolioData, bool) {
	data, _, err := h.svc.Profile.Get(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return nil, false
	}
	return data, true
}

func (h *AdminHandler) showProfile(c *gin.Context) {
	if data, ok := h.portfolio(c); ok {
		h.page(c, views.SectionProfile, nil, views.NewProfilePanel(data))
	}
}

func (h *AdminHandler) saveProfile(c *gin.Context) {
	var in services.ProfileInput
	if !h.bind(c, &in, "/admin/profile") {
		return
	}
	n, err := h.svc.Profile.SaveProfile(c.Request.Context(), in)
	h.redirect(c, "/admin/profile", n, err)
}

func (h *AdminHandler) uploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		h.redirect(c, "/admin/profile", notify.New(notify.Error, "Please select a valid image file"), nil)
		return
	}
	f, err := header.Open()
	if err != nil {
		h.redirect(c, "/admin/profile", notify.Notification{}, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, services.MaxImageSize+1))
	if err != nil {
		h.redirect(c, "/admin/profile", notify.Notification{}, err)
		return
	}
	n, err := h.svc.Profile.UploadImage(c.Request.Context(), header.Header.Get("Content-Type"), data)
	h.redirect(c, "/admin/profile", n, err)
}

func (h *AdminHandler) resetImage(c *gin.Context) {
	n, err := h.svc.Profile.ResetImage(c.Request.Context())
	h.redirect(c, "/admin/profile", n, err)
}

func (h *AdminHandler) showContact(c *gin.Context) {
	if data, ok := h.portfolio(c); ok {
		h.page(c, views.SectionContact, nil, services.ContactForm(data))
	}
}

func (h *AdminHandler) saveContact(c *gin.Context) {
	var in services.ContactInput
	if !h.bind(c, &in, "/admin/contact") {
		return
	}
	n, err := h.svc.Profile.SaveContact(c.Request.Context(), in)
	h.redirect(c, "/admin/contact", n, err)
}

// Education.

func (h *AdminHandler) renderEducation(c *gin.Context, form services.EducationInput, notice *notify.Notification) {
	records, err := h.svc.Education.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return
	}
	h.page(c, views.SectionEducation, notice, views.NewEducationPanel(form, records))
}

func (h *AdminHandler) showEducation(c *gin.Context) {
	h.renderEducation(c, services.EducationInput{}, nil)
}

func (h *AdminHandler) submitEducation(c *gin.Context) {
	var in services.EducationInput
	if !h.bind(c, &in, "/admin/education") {
		return
	}
	n, err := h.svc.Education.Submit(c.Request.Context(), in)
	h.redirect(c, "/admin/education", n, err)
}

func (h *AdminHandler) editEducation(c *gin.Context) {
	id, ok := h.id(c, "/admin/education")
	if !ok {
		return
	}
	form, n, err := h.svc.Education.Edit(c.Request.Context(), id)
	if err != nil {
		h.missing(c, "/admin/education", "Education record no longer exists", err)
		return
	}
	h.renderEducation(c, form, &n)
}

func (h *AdminHandler) deleteEducation(c *gin.Context) {
	id, ok := h.id(c, "/admin/education")
	if !ok {
		return
	}
	n, err := h.svc.Education.Delete(c.Request.Context(), id)
	h.redirect(c, "/admin/education", n, err)
}

// Skills.

func (h *AdminHandler) renderSkills(c *gin.Context, form services.SkillInput, notice *notify.Notification) {
	records, err := h.svc.Skills.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return
	}
	h.page(c, views.SectionSkills, notice, views.NewSkillPanel(form, records, c.Query("category")))
}

func (h *AdminHandler) showSkills(c *gin.Context) {
	h.renderSkills(c, services.NewSkillInput(), nil)
}

func (h *AdminHandler) submitSkill(c *gin.Context) {
	var in services.SkillInput
	if !h.bind(c, &in, "/admin/skills") {
		return
	}
	n, err := h.svc.Skills.Submit(c.Request.Context(), in)
	h.redirect(c, "/admin/skills", n, err)
}

func (h *AdminHandler) editSkill(c *gin.Context) {
	id, ok := h.id(c, "/admin/skills")
	if !ok {
		return
	}
	form, n, err := h.svc.Skills.Edit(c.Request.Context(), id)
	if err != nil {
		h.missing(c, "/admin/skills", "Skill no longer exists", err)
		return
	}
	h.renderSkills(c, form, &n)
}

func (h *AdminHandler) deleteSkill(c *gin.Context) {
	id, ok := h.id(c, "/admin/skills")
	if !ok {
		return
	}
	n, err := h.svc.Skills.Delete(c.Request.Context(), id)
	h.redirect(c, "/admin/skills", n, err)
}

// Projects.

func (h *AdminHandler) renderProjects(c *gin.Context, form services.ProjectInput, notice *notify.Notification) {
	records, err := h.svc.Projects.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return
	}
	h.page(c, views.SectionProjects, notice, views.NewProjectPanel(form, records))
}

func (h *AdminHandler) showProjects(c *gin.Context) {
	h.renderProjects(c, services.ProjectInput{}, nil)
}

func (h *AdminHandler) submitProject(c *gin.Context) {
	var in services.ProjectInput
	if !h.bind(c, &in, "/admin/projects") {
		return
	}
	n, err := h.svc.Projects.Submit(c.Request.Context(), in)
	h.redirect(c, "/admin/projects", n, err)
}

func (h *AdminHandler) editProject(c *gin.Context) {
	id, ok := h.id(c, "/admin/projects")
	if !ok {
		return
	}
	form, n, err := h.svc.Projects.Edit(c.Request.Context(), id)
	if err != nil {
		h.missing(c, "/admin/projects", "Project no longer exists", err)
		return
	}
	h.renderProjects(c, form, &n)
}

func (h *AdminHandler) deleteProject(c *gin.Context) {
	id, ok := h.id(c, "/admin/projects")
	if !ok {
		return
	}
	n, err := h.svc.Projects.Delete(c.Request.Context(), id)
	h.redirect(c, "/admin/projects", n, err)
}

// Messages and appearance.

func (h *AdminHandler) showMessages(c *gin.Context) {
	msgs, err := h.svc.Messages.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return
	}
	h.page(c, views.SectionMessages, nil, views.MessagesList(msgs))
}

func (h *AdminHandler) deleteMessage(c *gin.Context) {
	n, err := h.svc.Messages.Delete(c.Request.Context(), c.Param("id"))
	h.redirect(c, "/admin/messages", n, err)
}

func (h *AdminHandler) showAppearance(c *gin.Context) {
	settings, err := h.svc.Appearance.Get(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin")
		return
	}
	h.page(c, views.SectionAppearance, nil, views.NewAppearancePanel(settings))
}

func (h *AdminHandler) applyAppearance(c *gin.Context) {
	var in services.AppearanceInput
	if !h.bind(c, &in, "/admin/appearance") {
		return
	}
	n, err := h.svc.Appearance.Apply(c.Request.Context(), in)
	h.redirect(c, "/admin/appearance", n, err)
}

// Import, export and clear.

func (h *AdminHandler) showData(c *gin.Context) {
	h.page(c, views.SectionData, nil, views.NewDataPanel())
}

func (h *AdminHandler) export(c *gin.Context) {
	scope := c.Param("scope")
	if scope == "" {
		scope = services.ScopeAll
	}
	data, filename, err := h.svc.Backup.Export(c.Request.Context(), scope)
	if errors.Is(err, services.ErrUnknownScope) {
		h.fail(c, http.StatusNotFound, err, "/admin/data")
		return
	}
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err, "/admin/data")
		return
	}
	h.log.Infow("data exported", "scope", scope)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *AdminHandler) importData(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.redirect(c, "/admin/data", notify.New(notify.Error, "Please choose a backup file to import"), nil)
		return
	}
	f, err := header.Open()
	if err != nil {
		h.redirect(c, "/admin/data", notify.Notification{}, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportSize))
	if err != nil {
		h.redirect(c, "/admin/data", notify.Notification{}, err)
		return
	}
	n, err := h.svc.Backup.Import(c.Request.Context(), data)
	h.redirect(c, "/admin/data", n, err)
}

func (h *AdminHandler) clear(c *gin.Context) {
	n, err := h.svc.Backup.Clear(c.Request.Context(), c.Param("scope"))
	if errors.Is(err, services.ErrUnknownScope) {
		h.redirect(c, "/admin/data", notify.New(notify.Error, "Unknown data section"), nil)
		return
	}
	h.redirect(c, "/admin/data", n, err)
}

// Helpers.

func (h *AdminHandler) bind(c *gin.Context, dst any, back string) bool {
	if err := c.ShouldBind(dst); err != nil {
		h.log.Debugw("invalid form", "path", c.Request.URL.Path, "error", err)
		h.redirect(c, back, notify.New(notify.Error, "Please check the form and try again"), nil)
		return false
	}
	return true
}

func (h *AdminHandler) id(c *gin.Context, back string) (int64, bool) {
	id, err := parseID(c)
	if err != nil {
		h.redirect(c, back, notify.New(notify.Error, "Invalid record id"), nil)
		return 0, false
	}
	return id, true
}

// missing redirects with a warning when err is a not-found, and fails the
// request otherwise.
func (h *AdminHandler) missing(c *gin.Context, back, message string, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		h.redirect(c, back, notify.New(notify.Warning, message), nil)
		return
	}
	h.redirect(c, back, notify.Notification{}, err)
}
