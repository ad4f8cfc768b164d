package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/handlers"
	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/services"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	router *gin.Engine
	store  *storage.MemoryStore
	svc    *services.Services
}

var testDefaults = models.PortfolioData{
	Profile:     models.Profile{Name: "Default Owner", Title: "Student", Location: "Earth", About: "About me"},
	ContactInfo: models.ContactInfo{Email: "owner@example.com", LinkedIn: "#"},
}

// setupApp builds the full router over an in-memory store.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	log := zap.NewNop().Sugar()
	svc := services.New(storage.NewGateway(store), services.Options{Logger: log})

	tmpl, err := views.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	tracker := handlers.NewVisitorTracker(svc.Analytics, "test-salt")
	handlers.NewPublicHandler(svc, testDefaults, log).RegisterRoutes(r.Group("/", tracker.Middleware()))
	handlers.NewAdminHandler(svc, log).RegisterRoutes(r.Group("/admin"))

	return &testApp{router: r, store: store, svc: svc}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return a.do(req)
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *testApp) postFile(t *testing.T, path, field, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.do(req)
}

// follow replays the redirect of w, carrying its flash cookie.
func (a *testApp) follow(t *testing.T, w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, w.Code)
	return a.get(w.Header().Get("Location"), w.Result().Cookies()...)
}

func TestPublicIndex(t *testing.T) {
	app := setupApp(t)

	w := app.get("/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Default Owner - Portfolio")
	assert.Contains(t, w.Body.String(), "mailto:owner@example.com")
	assert.NotContains(t, w.Body.String(), `href="#"`)
}

func TestVisitorTracking(t *testing.T) {
	app := setupApp(t)

	app.get("/")
	app.get("/")
	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	app.do(dnt)
	app.get("/admin")

	events, err := app.svc.Analytics.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "page_view", events[0].Action)
	assert.Len(t, events[0].Label, 16)
	assert.Equal(t, events[0].Label, events[1].Label)
}

func TestHashIP(t *testing.T) {
	a := handlers.NewVisitorTracker(nil, "salt-a")
	b := handlers.NewVisitorTracker(nil, "salt-b")

	assert.Equal(t, a.HashIP("10.0.0.1"), a.HashIP("10.0.0.1"))
	assert.NotEqual(t, a.HashIP("10.0.0.1"), a.HashIP("10.0.0.2"))
	assert.NotEqual(t, a.HashIP("10.0.0.1"), b.HashIP("10.0.0.1"))

	salt, err := handlers.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 64)
}

func TestEducationFlow(t *testing.T) {
	app := setupApp(t)
	ctx := context.Background()
	form := url.Values{"degree": {" B.Sc. "}, "institution": {"X University"}, "status": {"completed"}}

	w := app.postForm("/admin/education", form)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/education", w.Header().Get("Location"))

	page := app.follow(t, w)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Education record added successfully!")
	assert.Contains(t, page.Body.String(), "B.Sc.")

	app.postForm("/admin/education", form)
	items, err := app.svc.Education.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Edit keeps the record until resubmitted.
	id := items[0].ID
	edit := app.get("/admin/education/" + itoa(id) + "/edit")
	assert.Equal(t, http.StatusOK, edit.Code)
	assert.Contains(t, edit.Body.String(), `name="id" value="`+itoa(id)+`"`)
	assert.Contains(t, edit.Body.String(), "Education loaded for editing.")
	items, err = app.svc.Education.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	app.postForm("/admin/education", url.Values{"id": {itoa(id)}, "degree": {"M.Sc."}, "status": {"pursuing"}})
	items, err = app.svc.Education.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "M.Sc.", items[0].Degree)

	w = app.postForm("/admin/education/"+itoa(id)+"/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	items, err = app.svc.Education.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotEqual(t, id, items[0].ID)
}

func TestEducationValidationLeavesStorageAlone(t *testing.T) {
	app := setupApp(t)

	w := app.postForm("/admin/education", url.Values{"degree": {"  "}, "status": {"completed"}})
	page := app.follow(t, w)

	assert.Contains(t, page.Body.String(), "Please fill in degree and status fields")
	assert.Contains(t, page.Body.String(), "No education records added yet.")
	_, err := app.store.Get(context.Background(), storage.KeyEducation)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEditMissingRecordWarns(t *testing.T) {
	app := setupApp(t)

	w := app.get("/admin/projects/12345/edit")
	page := app.follow(t, w)

	assert.Contains(t, page.Body.String(), "Project no longer exists")
}

func TestSkillsDuplicateAndFilter(t *testing.T) {
	app := setupApp(t)
	app.postForm("/admin/skills", url.Values{"skillName": {"Go"}, "skillCategory": {"programming"}, "skillLevel": {"80"}, "skillStatus": {"learning"}})
	app.postForm("/admin/skills", url.Values{"skillName": {"Git"}, "skillCategory": {"tools"}, "skillLevel": {"60"}, "skillStatus": {"completed"}})

	w := app.postForm("/admin/skills", url.Values{"skillName": {"GO"}, "skillCategory": {"programming"}, "skillLevel": {"10"}, "skillStatus": {"planned"}})
	page := app.follow(t, w)
	assert.Contains(t, page.Body.String(), "This skill already exists in the same category")

	filtered := app.get("/admin/skills?category=tools")
	assert.Contains(t, filtered.Body.String(), "Git")
	assert.NotContains(t, filtered.Body.String(), "<h4>Go</h4>")
}

func TestProjectsRejectBlankTechnologies(t *testing.T) {
	app := setupApp(t)

	w := app.postForm("/admin/projects", url.Values{
		"projectTitle": {"Site"}, "projectDescription": {"Mine"}, "projectTech": {" , , "},
		"projectCategory": {"web"}, "projectStatus": {"completed"},
	})
	page := app.follow(t, w)

	assert.Contains(t, page.Body.String(), "Please add at least one technology")
	items, err := app.svc.Projects.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProfileImageUpload(t *testing.T) {
	app := setupApp(t)

	w := app.postFile(t, "/admin/profile/image", "image", "me.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	page := app.follow(t, w)
	assert.Contains(t, page.Body.String(), "Image uploaded successfully!")
	assert.Contains(t, page.Body.String(), "data:image/png;base64,iVBORw==")

	w = app.postFile(t, "/admin/profile/image", "image", "notes.txt", "text/plain", []byte("hi"))
	page = app.follow(t, w)
	assert.Contains(t, page.Body.String(), "Please select a valid image file")
}

func TestExportImport(t *testing.T) {
	app := setupApp(t)
	app.postForm("/admin/education", url.Values{"degree": {"B.Sc."}, "status": {"completed"}})

	w := app.get("/admin/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=portfolio-backup.json", w.Header().Get("Content-Disposition"))
	var backup map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &backup))
	assert.Contains(t, string(backup["education"]), "B.Sc.")

	scoped := app.get("/admin/export/skills")
	assert.Equal(t, "attachment; filename=skills-data.json", scoped.Header().Get("Content-Disposition"))
	assert.JSONEq(t, `[]`, scoped.Body.String())

	assert.Equal(t, http.StatusNotFound, app.get("/admin/export/secrets").Code)

	bad := app.postFile(t, "/admin/import", "file", "backup.json", "application/json", []byte("{oops"))
	page := app.follow(t, bad)
	assert.Contains(t, page.Body.String(), "Invalid JSON file. Please check the file format.")

	good := app.postFile(t, "/admin/import", "file", "backup.json", "application/json", []byte(`{"education": []}`))
	page = app.follow(t, good)
	assert.Contains(t, page.Body.String(), "Data imported successfully!")
	items, err := app.svc.Education.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearScopes(t *testing.T) {
	app := setupApp(t)
	app.postForm("/admin/education", url.Values{"degree": {"B.Sc."}, "status": {"completed"}})

	page := app.follow(t, app.postForm("/admin/clear/education", nil))
	assert.Contains(t, page.Body.String(), "All education records cleared!")

	page = app.follow(t, app.postForm("/admin/clear/everything", nil))
	assert.Contains(t, page.Body.String(), "Unknown data section")
}

func TestStatsAPI(t *testing.T) {
	app := setupApp(t)
	app.postForm("/admin/education", url.Values{"degree": {"B.Sc."}, "status": {"completed"}})

	w := app.get("/admin/api/stats")

	require.Equal(t, http.StatusOK, w.Code)
	var stats models.AdminStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalEducation)
	assert.Equal(t, 1, stats.TotalEvents)
}

func TestContactForm(t *testing.T) {
	app := setupApp(t)

	w := app.postForm("/contact", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}})
	assert.Equal(t, "/#contact", w.Header().Get("Location"))

	page := app.get("/", w.Result().Cookies()...)
	assert.Contains(t, page.Body.String(), "Message sent successfully!")

	inbox := app.get("/admin/messages")
	assert.Contains(t, inbox.Body.String(), "ada@example.com")
}

func TestCorruptStorageRendersErrorPage(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, app.store.Put(context.Background(), storage.KeyEducation, []byte("{not json")))

	w := app.get("/admin/education")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")

	post := app.postForm("/admin/education", url.Values{"degree": {"B.Sc."}, "status": {"completed"}})
	assert.Equal(t, http.StatusSeeOther, post.Code)
	raw, err := app.store.Get(context.Background(), storage.KeyEducation)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestResumeAndHealth(t *testing.T) {
	app := setupApp(t)

	w := app.get("/resume")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	app.postForm("/admin/contact", url.Values{"email": {"me@example.com"}, "phone": {"1"}, "resume": {"https://example.com/cv.pdf"}})
	w = app.get("/resume")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/cv.pdf", w.Header().Get("Location"))

	health := app.get("/healthz")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
