package portfolio

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return Render(c, a.Views.AdminDashboard(a.Config, a.dashboardView(), CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	email := c.FormValue("email")
	pass := c.FormValue("password")
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.Config.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1
	if emailOK && passOK {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// dashboardView snapshots the controller state for rendering.
func (a *App) dashboardView() DashboardView {
	v := DashboardView{
		Skills:   a.Dash.Skills(),
		Projects: a.Dash.Projects(),
		Posts:    a.Dash.Posts(),
		Messages: a.Dash.Messages(),
		Notice:   a.Dash.Notifications(),
	}
	if h, ok := a.Dash.Hero(); ok {
		v.Hero = &h
	}
	if ab, ok := a.Dash.About(); ok {
		v.About = &ab
	}
	if st, ok := a.Dash.Settings(); ok {
		v.Settings = &st
	}
	return v
}

// --- Singletons ---

func (a *App) handleHeroGet(c echo.Context) error {
	h, ok := a.Dash.Hero()
	if !ok {
		return jsonData(c, nil)
	}
	return jsonData(c, h)
}

func (a *App) handleHeroSave(c echo.Context) error {
	var h HeroData
	if err := c.Bind(&h); err != nil {
		return jsonError(c, Validationf("invalid hero payload"))
	}
	if err := a.Dash.SaveHero(c.Request().Context(), h); err != nil {
		return jsonError(c, err)
	}
	h, _ = a.Dash.Hero()
	return jsonData(c, h)
}

func (a *App) handleAboutGet(c echo.Context) error {
	ab, ok := a.Dash.About()
	if !ok {
		return jsonData(c, nil)
	}
	return jsonData(c, ab)
}

func (a *App) handleAboutSave(c echo.Context) error {
	var ab AboutData
	if err := c.Bind(&ab); err != nil {
		return jsonError(c, Validationf("invalid about payload"))
	}
	if err := a.Dash.SaveAbout(c.Request().Context(), ab); err != nil {
		return jsonError(c, err)
	}
	ab, _ = a.Dash.About()
	return jsonData(c, ab)
}

func (a *App) handleSettingsGet(c echo.Context) error {
	st, ok := a.Dash.Settings()
	if !ok {
		return jsonData(c, nil)
	}
	return jsonData(c, st)
}

func (a *App) handleSettingsSave(c echo.Context) error {
	var st SiteSettings
	if err := c.Bind(&st); err != nil {
		return jsonError(c, Validationf("invalid settings payload"))
	}
	if err := a.Dash.SaveSettings(c.Request().Context(), st); err != nil {
		return jsonError(c, err)
	}
	st, _ = a.Dash.Settings()
	return jsonData(c, st)
}

// --- Skills ---

func (a *App) handleSkillList(c echo.Context) error {
	return jsonData(c, a.Dash.Skills())
}

func (a *App) handleSkillAdd(c echo.Context) error {
	var sk Skill
	if err := c.Bind(&sk); err != nil {
		return jsonError(c, Validationf("invalid skill payload"))
	}
	created, err := a.Dash.AddSkill(c.Request().Context(), sk)
	if err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, created)
}

func (a *App) handleSkillUpdate(c echo.Context) error {
	var p SkillPatch
	if err := c.Bind(&p); err != nil {
		return jsonError(c, Validationf("invalid skill payload"))
	}
	if err := a.Dash.UpdateSkill(c.Request().Context(), c.Param("id"), p); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Skills())
}

func (a *App) handleSkillDelete(c echo.Context) error {
	if err := a.Dash.DeleteSkill(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Skills())
}

// --- Projects ---

func (a *App) handleProjectList(c echo.Context) error {
	return jsonData(c, a.Dash.Projects())
}

func (a *App) handleProjectAdd(c echo.Context) error {
	var p Project
	if err := c.Bind(&p); err != nil {
		return jsonError(c, Validationf("invalid project payload"))
	}
	created, err := a.Dash.AddProject(c.Request().Context(), p)
	if err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, created)
}

func (a *App) handleProjectUpdate(c echo.Context) error {
	var patch ProjectPatch
	if err := c.Bind(&patch); err != nil {
		return jsonError(c, Validationf("invalid project payload"))
	}
	if err := a.Dash.UpdateProject(c.Request().Context(), c.Param("id"), patch); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Projects())
}

func (a *App) handleProjectDelete(c echo.Context) error {
	if err := a.Dash.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Projects())
}

// --- Blog posts ---

func (a *App) handlePostList(c echo.Context) error {
	return jsonData(c, a.Dash.Posts())
}

func (a *App) handlePostAdd(c echo.Context) error {
	var p BlogPost
	if err := c.Bind(&p); err != nil {
		return jsonError(c, Validationf("invalid post payload"))
	}
	created, err := a.Dash.AddPost(c.Request().Context(), p)
	if err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, created)
}

func (a *App) handlePostUpdate(c echo.Context) error {
	var patch BlogPostPatch
	if err := c.Bind(&patch); err != nil {
		return jsonError(c, Validationf("invalid post payload"))
	}
	if err := a.Dash.UpdatePost(c.Request().Context(), c.Param("id"), patch); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Posts())
}

func (a *App) handlePostDelete(c echo.Context) error {
	if err := a.Dash.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Posts())
}

// --- Contact messages ---

func (a *App) handleMessageList(c echo.Context) error {
	return jsonData(c, a.Dash.Messages())
}

func (a *App) handleMessageRead(c echo.Context) error {
	if err := a.Dash.MarkMessageRead(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Messages())
}

func (a *App) handleMessageReplied(c echo.Context) error {
	if err := a.Dash.MarkMessageReplied(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Messages())
}

func (a *App) handleMessageDelete(c echo.Context) error {
	if err := a.Dash.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.Dash.Messages())
}

// --- Files ---

func (a *App) handleFileUpload(c echo.Context) error {
	feature := c.FormValue("feature")
	subfolder := c.FormValue("subfolder")
	if feature == "" {
		return jsonError(c, Validationf("feature is required"))
	}
	if subfolder == "" {
		subfolder = "general"
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, Validationf("file is required"))
	}
	if fh.Size > maxUploadSize {
		return jsonError(c, Validationf("file exceeds the %dMB limit", maxUploadSize/(1<<20)))
	}
	src, err := fh.Open()
	if err != nil {
		return jsonError(c, classify("open upload", err))
	}
	defer src.Close()

	path := ObjectPath(feature, subfolder, fh.Filename)
	url, err := a.Files.Upload(c.Request().Context(), src, path)
	if err != nil {
		a.Notify.Error("Failed to upload file")
		return jsonError(c, classify("upload file", err))
	}
	a.Notify.Success("File uploaded successfully")
	return jsonData(c, StoredFile{Name: fh.Filename, Path: path, URL: url})
}

func (a *App) handleFileList(c echo.Context) error {
	files, err := a.Files.List(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return jsonError(c, classify("list files", err))
	}
	return jsonData(c, files)
}

func (a *App) handleFileDelete(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return jsonError(c, Validationf("path is required"))
	}
	if err := a.Files.Delete(c.Request().Context(), path); err != nil {
		return jsonError(c, classify("delete file", err))
	}
	return jsonData(c, "deleted")
}

// --- Dashboard state ---

func (a *App) handleNotifications(c echo.Context) error {
	return jsonData(c, a.Dash.Notifications())
}

func (a *App) handleReload(c echo.Context) error {
	if err := a.Dash.LoadAll(c.Request().Context()); err != nil {
		return jsonError(c, err)
	}
	return jsonData(c, a.dashboardView())
}
