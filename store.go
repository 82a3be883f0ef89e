package portfolio

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by store lookups when a document does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding the portfolio document collections:
// hero, about, skills, projects, blog, contact and settings. It assigns
// document ids and server timestamps; nothing above the resource services
// touches it directly.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hero (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			cta_text TEXT NOT NULL DEFAULT '',
			cta_link TEXT NOT NULL DEFAULT '',
			background_image TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS about (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			resume_url TEXT NOT NULL DEFAULT '',
			experience TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			availability TEXT NOT NULL DEFAULT '',
			highlights TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL DEFAULT 0,
			icon TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			ord INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			long_description TEXT NOT NULL DEFAULT '',
			technologies TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '',
			live_url TEXT NOT NULL DEFAULT '',
			github_url TEXT NOT NULL DEFAULT '',
			featured INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'draft',
			ord INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS blog (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL DEFAULT '',
			excerpt TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			cover_image TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			featured INTEGER NOT NULL DEFAULT 0,
			reading_time INTEGER NOT NULL DEFAULT 0,
			views INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			published_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS contact (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			read INTEGER NOT NULL DEFAULT 0,
			replied INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id TEXT PRIMARY KEY,
			site_name TEXT NOT NULL DEFAULT '',
			site_description TEXT NOT NULL DEFAULT '',
			social_github TEXT NOT NULL DEFAULT '',
			social_linkedin TEXT NOT NULL DEFAULT '',
			social_twitter TEXT NOT NULL DEFAULT '',
			social_email TEXT NOT NULL DEFAULT '',
			social_website TEXT NOT NULL DEFAULT '',
			meta_title TEXT NOT NULL DEFAULT '',
			meta_description TEXT NOT NULL DEFAULT '',
			keywords TEXT NOT NULL DEFAULT '',
			og_image TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- Hero (singleton) ---

// GetHero returns the hero document. ok is false when no hero document has
// been written yet, which is distinct from an empty record.
func (s *Store) GetHero(ctx context.Context) (HeroData, bool, error) {
	var h HeroData
	var updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT title, subtitle, description, cta_text, cta_link, background_image, updated_at FROM hero LIMIT 1`).
		Scan(&h.Title, &h.Subtitle, &h.Description, &h.CTAText, &h.CTALink, &h.BackgroundImage, &updated)
	if err == sql.ErrNoRows {
		return HeroData{}, false, nil
	}
	if err != nil {
		return HeroData{}, false, err
	}
	h.UpdatedAt = parseTime(updated)
	return h, true, nil
}

// UpsertHero updates the single hero document, creating it on first write.
// It never creates a second document.
func (s *Store) UpsertHero(ctx context.Context, h HeroData) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE hero SET title=?, subtitle=?, description=?, cta_text=?, cta_link=?, background_image=?, updated_at=?`,
		h.Title, h.Subtitle, h.Description, h.CTAText, h.CTALink, h.BackgroundImage, formatTime(now))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO hero (id, title, subtitle, description, cta_text, cta_link, background_image, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		newID(), h.Title, h.Subtitle, h.Description, h.CTAText, h.CTALink, h.BackgroundImage, formatTime(now))
	return err
}

// --- About (singleton) ---

// GetAbout returns the about document; ok is false when absent.
func (s *Store) GetAbout(ctx context.Context) (AboutData, bool, error) {
	var a AboutData
	var highlights, updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT title, description, image, resume_url, experience, location, availability, highlights, updated_at FROM about LIMIT 1`).
		Scan(&a.Title, &a.Description, &a.Image, &a.ResumeURL, &a.Experience, &a.Location, &a.Availability, &highlights, &updated)
	if err == sql.ErrNoRows {
		return AboutData{}, false, nil
	}
	if err != nil {
		return AboutData{}, false, err
	}
	a.Highlights = splitLines(highlights)
	a.UpdatedAt = parseTime(updated)
	return a, true, nil
}

// UpsertAbout updates the single about document, creating it on first write.
func (s *Store) UpsertAbout(ctx context.Context, a AboutData) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE about SET title=?, description=?, image=?, resume_url=?, experience=?, location=?, availability=?, highlights=?, updated_at=?`,
		a.Title, a.Description, a.Image, a.ResumeURL, a.Experience, a.Location, a.Availability, joinLines(a.Highlights), formatTime(now))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO about (id, title, description, image, resume_url, experience, location, availability, highlights, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		newID(), a.Title, a.Description, a.Image, a.ResumeURL, a.Experience, a.Location, a.Availability, joinLines(a.Highlights), formatTime(now))
	return err
}

// --- Skills ---

// ListSkills returns all skills ordered ascending by their display order.
func (s *Store) ListSkills(ctx context.Context) ([]Skill, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, level, icon, color, ord FROM skills ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var sk Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &sk.Icon, &sk.Color, &sk.Order); err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// GetSkill returns one skill by id.
func (s *Store) GetSkill(ctx context.Context, id string) (Skill, error) {
	var sk Skill
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, category, level, icon, color, ord FROM skills WHERE id = ?`, id).
		Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &sk.Icon, &sk.Color, &sk.Order)
	return sk, err
}

// AddSkill inserts a skill and returns the assigned id.
func (s *Store) AddSkill(ctx context.Context, sk Skill) (string, error) {
	id := newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO skills (id, name, category, level, icon, color, ord) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, sk.Name, sk.Category, sk.Level, sk.Icon, sk.Color, sk.Order)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateSkill applies a partial patch to a skill by id.
func (s *Store) UpdateSkill(ctx context.Context, id string, p SkillPatch) error {
	sk, err := s.GetSkill(ctx, id)
	if err != nil {
		return err
	}
	if p.Name != nil {
		sk.Name = *p.Name
	}
	if p.Category != nil {
		sk.Category = *p.Category
	}
	if p.Level != nil {
		sk.Level = *p.Level
	}
	if p.Icon != nil {
		sk.Icon = *p.Icon
	}
	if p.Color != nil {
		sk.Color = *p.Color
	}
	if p.Order != nil {
		sk.Order = *p.Order
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE skills SET name=?, category=?, level=?, icon=?, color=?, ord=? WHERE id=?`,
		sk.Name, sk.Category, sk.Level, sk.Icon, sk.Color, sk.Order, id)
	return err
}

// DeleteSkill removes a skill. Deleting an absent id returns ErrNotFound.
func (s *Store) DeleteSkill(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "skills", id)
}

// --- Projects ---

// ListProjects returns all projects ordered ascending by display order.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, long_description, technologies, images, live_url, github_url, featured, status, ord, created_at, updated_at
		 FROM projects ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, id string) (Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, long_description, technologies, images, live_url, github_url, featured, status, ord, created_at, updated_at
		 FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// AddProject inserts a project, stamping created_at and updated_at, and
// returns the assigned id.
func (s *Store) AddProject(ctx context.Context, p Project) (string, error) {
	id := newID()
	now := formatTime(time.Now().UTC())
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, long_description, technologies, images, live_url, github_url, featured, status, ord, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.Description, p.LongDescription, encodeTags(p.Technologies), joinLines(p.Images),
		p.LiveURL, p.GithubURL, boolInt(p.Featured), p.Status, p.Order, now, now)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateProject applies a partial patch and refreshes updated_at.
func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) error {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.LongDescription != nil {
		p.LongDescription = *patch.LongDescription
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.LiveURL != nil {
		p.LiveURL = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = *patch.GithubURL
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE projects SET title=?, description=?, long_description=?, technologies=?, images=?, live_url=?, github_url=?, featured=?, status=?, ord=?, updated_at=? WHERE id=?`,
		p.Title, p.Description, p.LongDescription, encodeTags(p.Technologies), joinLines(p.Images),
		p.LiveURL, p.GithubURL, boolInt(p.Featured), p.Status, p.Order, formatTime(time.Now().UTC()), id)
	return err
}

// DeleteProject removes a project. Deleting an absent id returns ErrNotFound.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "projects", id)
}

// --- Blog ---

// ListBlogPosts returns all posts (any status) ordered by creation time,
// newest first.
func (s *Store) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, slug, excerpt, content, cover_image, tags, status, featured, reading_time, views, created_at, updated_at, published_at
		 FROM blog ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetBlogPost returns one post by id.
func (s *Store) GetBlogPost(ctx context.Context, id string) (BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, slug, excerpt, content, cover_image, tags, status, featured, reading_time, views, created_at, updated_at, published_at
		 FROM blog WHERE id = ?`, id)
	return scanBlogPost(row)
}

// AddBlogPost inserts a post with zero views, stamping timestamps. Posts
// saved as published also get a published_at stamp.
func (s *Store) AddBlogPost(ctx context.Context, p BlogPost) (string, error) {
	id := newID()
	now := time.Now().UTC()
	publishedAt := ""
	if p.Status == StatusPublished {
		publishedAt = formatTime(now)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blog (id, title, slug, excerpt, content, cover_image, tags, status, featured, reading_time, views, created_at, updated_at, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		id, p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImage, encodeTags(p.Tags), p.Status,
		boolInt(p.Featured), p.ReadingTime, formatTime(now), formatTime(now), publishedAt)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateBlogPost applies a partial patch and refreshes updated_at. The first
// transition to published stamps published_at.
func (s *Store) UpdateBlogPost(ctx context.Context, id string, patch BlogPostPatch) error {
	p, err := s.GetBlogPost(ctx, id)
	if err != nil {
		return err
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
		p.ReadingTime = ReadingTime(p.Content)
	}
	if patch.CoverImage != nil {
		p.CoverImage = *patch.CoverImage
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	now := time.Now().UTC()
	publishedAt := ""
	if p.PublishedAt != nil {
		publishedAt = formatTime(*p.PublishedAt)
	}
	if patch.Status != nil {
		if *patch.Status == StatusPublished && p.Status != StatusPublished && publishedAt == "" {
			publishedAt = formatTime(now)
		}
		p.Status = *patch.Status
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE blog SET title=?, slug=?, excerpt=?, content=?, cover_image=?, tags=?, status=?, featured=?, reading_time=?, updated_at=?, published_at=? WHERE id=?`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImage, encodeTags(p.Tags), p.Status,
		boolInt(p.Featured), p.ReadingTime, formatTime(now), publishedAt, id)
	return err
}

// IncrementViews bumps the view counter for a post.
func (s *Store) IncrementViews(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE blog SET views = views + 1 WHERE id = ?`, id)
	return err
}

// DeleteBlogPost removes a post. Deleting an absent id returns ErrNotFound.
func (s *Store) DeleteBlogPost(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "blog", id)
}

// --- Contact ---

// ListContactSubmissions returns all submissions, newest first.
func (s *Store) ListContactSubmissions(ctx context.Context) ([]ContactSubmission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, read, replied, created_at FROM contact ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []ContactSubmission
	for rows.Next() {
		var c ContactSubmission
		var read, replied int
		var created string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &read, &replied, &created); err != nil {
			return nil, err
		}
		c.Read = read == 1
		c.Replied = replied == 1
		c.CreatedAt = parseTime(created)
		subs = append(subs, c)
	}
	return subs, rows.Err()
}

// AddContactSubmission inserts a new unread submission and returns its id.
func (s *Store) AddContactSubmission(ctx context.Context, c ContactSubmission) (string, error) {
	id := newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact (id, name, email, subject, message, read, replied, created_at) VALUES (?, ?, ?, ?, ?, 0, 0, ?)`,
		id, c.Name, c.Email, c.Subject, c.Message, formatTime(time.Now().UTC()))
	if err != nil {
		return "", err
	}
	return id, nil
}

// MarkContactRead sets read on a submission.
func (s *Store) MarkContactRead(ctx context.Context, id string) error {
	return s.execOnID(ctx, `UPDATE contact SET read = 1 WHERE id = ?`, id)
}

// MarkContactReplied sets replied on a submission. Read is set as well so
// the replied-implies-read invariant holds no matter how the caller got here.
func (s *Store) MarkContactReplied(ctx context.Context, id string) error {
	return s.execOnID(ctx, `UPDATE contact SET read = 1, replied = 1 WHERE id = ?`, id)
}

// DeleteContactSubmission removes a submission. Absent ids return ErrNotFound.
func (s *Store) DeleteContactSubmission(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "contact", id)
}

// --- Settings (singleton) ---

// GetSettings returns the settings document; ok is false when absent.
func (s *Store) GetSettings(ctx context.Context) (SiteSettings, bool, error) {
	var st SiteSettings
	var keywords, updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT site_name, site_description, social_github, social_linkedin, social_twitter, social_email, social_website,
		        meta_title, meta_description, keywords, og_image, updated_at FROM settings LIMIT 1`).
		Scan(&st.SiteName, &st.SiteDescription, &st.Social.Github, &st.Social.Linkedin, &st.Social.Twitter,
			&st.Social.Email, &st.Social.Website, &st.SEO.MetaTitle, &st.SEO.MetaDescription, &keywords,
			&st.SEO.OGImage, &updated)
	if err == sql.ErrNoRows {
		return SiteSettings{}, false, nil
	}
	if err != nil {
		return SiteSettings{}, false, err
	}
	st.SEO.Keywords = ParseTags(keywords)
	st.UpdatedAt = parseTime(updated)
	return st, true, nil
}

// UpsertSettings updates the single settings document, creating it on first
// write.
func (s *Store) UpsertSettings(ctx context.Context, st SiteSettings) error {
	now := formatTime(time.Now().UTC())
	res, err := s.db.ExecContext(ctx,
		`UPDATE settings SET site_name=?, site_description=?, social_github=?, social_linkedin=?, social_twitter=?, social_email=?, social_website=?, meta_title=?, meta_description=?, keywords=?, og_image=?, updated_at=?`,
		st.SiteName, st.SiteDescription, st.Social.Github, st.Social.Linkedin, st.Social.Twitter,
		st.Social.Email, st.Social.Website, st.SEO.MetaTitle, st.SEO.MetaDescription,
		encodeTags(st.SEO.Keywords), st.SEO.OGImage, now)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (id, site_name, site_description, social_github, social_linkedin, social_twitter, social_email, social_website, meta_title, meta_description, keywords, og_image, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		newID(), st.SiteName, st.SiteDescription, st.Social.Github, st.Social.Linkedin, st.Social.Twitter,
		st.Social.Email, st.Social.Website, st.SEO.MetaTitle, st.SEO.MetaDescription,
		encodeTags(st.SEO.Keywords), st.SEO.OGImage, now)
	return err
}

// --- Row helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var technologies, images, created, updated string
	var featured int
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.LongDescription, &technologies, &images,
		&p.LiveURL, &p.GithubURL, &featured, &p.Status, &p.Order, &created, &updated)
	if err != nil {
		return Project{}, err
	}
	p.Technologies = ParseTags(technologies)
	p.Images = splitLines(images)
	p.Featured = featured == 1
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return p, nil
}

func scanBlogPost(row rowScanner) (BlogPost, error) {
	var p BlogPost
	var tags, created, updated, published string
	var featured int
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverImage, &tags,
		&p.Status, &featured, &p.ReadingTime, &p.Views, &created, &updated, &published)
	if err != nil {
		return BlogPost{}, err
	}
	p.Tags = ParseTags(tags)
	p.Featured = featured == 1
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	if published != "" {
		t := parseTime(published)
		p.PublishedAt = &t
	}
	return p, nil
}

func (s *Store) deleteByID(ctx context.Context, table, id string) error {
	return s.execOnID(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
}

// execOnID runs a statement keyed on a document id and converts "nothing
// matched" into ErrNotFound.
func (s *Store) execOnID(ctx context.Context, query, id string) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Encoding helpers ---

func newID() string {
	return uuid.NewString()
}

// encodeTags stores a list as ",a,b," so individual values can be matched
// with instr() if needed.
func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	normalized := make([]string, len(tags))
	for i, t := range tags {
		normalized[i] = strings.TrimSpace(t)
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// joinLines encodes ordered free-text lists (highlights, image URLs) with
// newline separators, which unlike commas never occur inside the values.
func joinLines(vals []string) string {
	return strings.Join(vals, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timeLayout is RFC3339 with fixed-width nanoseconds so stored timestamps
// sort lexicographically in query order-by clauses.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
