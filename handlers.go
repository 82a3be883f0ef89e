package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	tag := c.QueryParam("tag")
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	content := HomeContent{ActiveTag: tag}
	var err error
	if content.Hero, _, err = a.Cache.Hero(ctx); err != nil {
		return err
	}
	if content.About, _, err = a.Cache.About(ctx); err != nil {
		return err
	}
	if content.Settings, _, err = a.Cache.Settings(ctx); err != nil {
		return err
	}
	if content.Skills, err = a.Cache.Skills(ctx); err != nil {
		return err
	}
	if content.Projects, err = a.Cache.Projects(ctx); err != nil {
		return err
	}
	posts, err := a.Cache.Posts(ctx, tag)
	if err != nil {
		return err
	}
	if content.Tags, err = a.Cache.Tags(ctx); err != nil {
		return err
	}
	content.Posts, content.HasMore = PaginatePosts(posts, offset, a.Config.BlogPageSize)
	content.NextOffset = offset + len(content.Posts)

	if c.Request().Header.Get("HX-Request") == "true" {
		switch c.QueryParam("partial") {
		case "blog":
			return Render(c, a.Views.BlogSection(content.Posts, tag, content.Tags, content.HasMore, content.NextOffset))
		case "home":
			return Render(c, a.Views.HomePartial(a.Config, content))
		}
	}
	return Render(c, a.Views.Home(a.Config, content))
}

func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	post, err := a.Cache.PostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	if err := a.Svc.Blog.RecordView(ctx, post.ID); err != nil {
		c.Logger().Warnf("record view for %s: %v", slug, err)
	}
	all, err := a.Cache.Posts(ctx, "")
	if err != nil {
		return err
	}
	related := FilterRelatedPosts(post, all)
	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "post" {
		return Render(c, a.Views.PostPartial(a.Config, post, related))
	}
	return Render(c, a.Views.Post(a.Config, post, related))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	var sub ContactSubmission
	if err := formDecoder.Decode(&sub, c.Request().PostForm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if _, err := a.Svc.Contact.Submit(c.Request().Context(), sub); err != nil {
		if err.Kind == KindValidation {
			return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.ContactResult(false, err.Message))
		}
		c.Logger().Errorf("contact submit: %v", err)
		return RenderStatus(c, http.StatusBadGateway, a.Views.ContactResult(false, "Something went wrong. Please try again later."))
	}
	return Render(c, a.Views.ContactResult(true, "Thanks for reaching out. I'll get back to you soon."))
}

func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	posts, err := a.Cache.Posts(ctx, "")
	if err != nil {
		return err
	}
	projects, err := a.Cache.Projects(ctx)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts, projects)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
