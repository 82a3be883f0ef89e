package portfolio

import (
	"context"
	"sync"
	"time"
)

// publicContent is one coherent snapshot of everything the public pages
// render: published posts and projects, the full skills grid, singleton
// sections and the derived tag list.
type publicContent struct {
	hero     *HeroData
	about    *AboutData
	settings *SiteSettings
	skills   []Skill
	projects []Project
	posts    []BlogPost
	tags     []string
}

// ContentCache is an in-memory TTL cache of the published public view of the
// store. Admin mutations invalidate it so the next public request reloads.
type ContentCache struct {
	mu      sync.RWMutex
	content *publicContent
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.content != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.content = nil
	c.mu.Unlock()
}

func (c *ContentCache) load(ctx context.Context) (*publicContent, error) {
	content := &publicContent{}

	hero, ok, err := c.store.GetHero(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		content.hero = &hero
	}
	about, ok, err := c.store.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		content.about = &about
	}
	settings, ok, err := c.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		content.settings = &settings
	}
	skills, err := c.store.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	content.skills = skills

	projects, err := c.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.Status == StatusPublished {
			content.projects = append(content.projects, p)
		}
	}

	posts, err := c.store.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.Status == StatusPublished {
			content.posts = append(content.posts, p)
		}
	}
	content.tags = CollectTags(content.posts)
	return content, nil
}

// ensureLoaded returns the cached snapshot after ensuring freshness. It
// tries a read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) ensureLoaded(ctx context.Context) (*publicContent, error) {
	c.mu.RLock()
	if c.valid() {
		content := c.content
		c.mu.RUnlock()
		return content, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.content, nil
	}
	content, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.content = content
	c.fetched = time.Now()
	return content, nil
}

// Hero returns the published hero section, if any.
func (c *ContentCache) Hero(ctx context.Context) (HeroData, bool, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil || content.hero == nil {
		return HeroData{}, false, err
	}
	return *content.hero, true, nil
}

// About returns the published about section, if any.
func (c *ContentCache) About(ctx context.Context) (AboutData, bool, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil || content.about == nil {
		return AboutData{}, false, err
	}
	return *content.about, true, nil
}

// Settings returns the site settings, if any.
func (c *ContentCache) Settings(ctx context.Context) (SiteSettings, bool, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil || content.settings == nil {
		return SiteSettings{}, false, err
	}
	return *content.settings, true, nil
}

// Skills returns the full skills grid ordered by display order.
func (c *ContentCache) Skills(ctx context.Context) ([]Skill, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return content.skills, nil
}

// Projects returns published projects ordered by display order.
func (c *ContentCache) Projects(ctx context.Context) ([]Project, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return content.projects, nil
}

// Posts returns published posts newest-first, optionally filtered by tag.
func (c *ContentCache) Posts(ctx context.Context, tag string) ([]BlogPost, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPostsByTag(content.posts, tag), nil
}

// PostBySlug returns a published post by slug.
func (c *ContentCache) PostBySlug(ctx context.Context, slug string) (BlogPost, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range content.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Tags returns the deduplicated tags across published posts.
func (c *ContentCache) Tags(ctx context.Context) ([]string, error) {
	content, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return content.tags, nil
}
