package portfolio

import (
	"context"
	"strings"
)

// Services bundles the per-entity resource services. Each service translates
// a CRUD intent into exactly one store call and normalizes the outcome: every
// failure comes back as a typed *Error, never a raw store error.
type Services struct {
	Hero     *HeroService
	About    *AboutService
	Skills   *SkillsService
	Projects *ProjectsService
	Blog     *BlogService
	Contact  *ContactService
	Settings *SettingsService
}

// NewServices wires all resource services onto one store.
func NewServices(store *Store) *Services {
	return &Services{
		Hero:     &HeroService{store: store},
		About:    &AboutService{store: store},
		Skills:   &SkillsService{store: store},
		Projects: &ProjectsService{store: store},
		Blog:     &BlogService{store: store},
		Contact:  &ContactService{store: store},
		Settings: &SettingsService{store: store},
	}
}

// HeroService manages the singleton hero document.
type HeroService struct {
	store *Store
}

// Get returns the hero document; ok reports whether one exists yet.
func (s *HeroService) Get(ctx context.Context) (HeroData, bool, *Error) {
	h, ok, err := s.store.GetHero(ctx)
	if err != nil {
		return HeroData{}, false, classify("get hero", err)
	}
	return h, ok, nil
}

// Upsert writes the hero document, creating it on first write.
func (s *HeroService) Upsert(ctx context.Context, h HeroData) *Error {
	if strings.TrimSpace(h.Title) == "" {
		return Validationf("hero title is required")
	}
	return classify("save hero", s.store.UpsertHero(ctx, h))
}

// AboutService manages the singleton about document.
type AboutService struct {
	store *Store
}

func (s *AboutService) Get(ctx context.Context) (AboutData, bool, *Error) {
	a, ok, err := s.store.GetAbout(ctx)
	if err != nil {
		return AboutData{}, false, classify("get about", err)
	}
	return a, ok, nil
}

func (s *AboutService) Upsert(ctx context.Context, a AboutData) *Error {
	if strings.TrimSpace(a.Title) == "" {
		return Validationf("about title is required")
	}
	return classify("save about", s.store.UpsertAbout(ctx, a))
}

// SkillsService manages the skills collection.
type SkillsService struct {
	store *Store
}

// List returns all skills ordered ascending by display order. It fails open:
// on error the slice is empty and the error is non-nil.
func (s *SkillsService) List(ctx context.Context) ([]Skill, *Error) {
	skills, err := s.store.ListSkills(ctx)
	if err != nil {
		return nil, classify("list skills", err)
	}
	return skills, nil
}

func (s *SkillsService) Get(ctx context.Context, id string) (Skill, *Error) {
	sk, err := s.store.GetSkill(ctx, id)
	if err != nil {
		return Skill{}, classify("get skill", err)
	}
	return sk, nil
}

// Add validates and inserts a skill, returning the store-assigned id only.
// Callers merge the id back into the submitted fields themselves.
func (s *SkillsService) Add(ctx context.Context, sk Skill) (string, *Error) {
	if err := validateSkill(sk.Name, sk.Level); err != nil {
		return "", err
	}
	id, err := s.store.AddSkill(ctx, sk)
	if err != nil {
		return "", classify("add skill", err)
	}
	return id, nil
}

func (s *SkillsService) Update(ctx context.Context, id string, p SkillPatch) *Error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return Validationf("skill name is required")
	}
	if p.Level != nil && (*p.Level < 0 || *p.Level > 100) {
		return Validationf("skill level must be between 0 and 100")
	}
	return classify("update skill", s.store.UpdateSkill(ctx, id, p))
}

func (s *SkillsService) Delete(ctx context.Context, id string) *Error {
	return classify("delete skill", s.store.DeleteSkill(ctx, id))
}

func validateSkill(name string, level int) *Error {
	if strings.TrimSpace(name) == "" {
		return Validationf("skill name is required")
	}
	if level < 0 || level > 100 {
		return Validationf("skill level must be between 0 and 100")
	}
	return nil
}

// ProjectsService manages the projects collection.
type ProjectsService struct {
	store *Store
}

func (s *ProjectsService) List(ctx context.Context) ([]Project, *Error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, classify("list projects", err)
	}
	return projects, nil
}

func (s *ProjectsService) Get(ctx context.Context, id string) (Project, *Error) {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return Project{}, classify("get project", err)
	}
	return p, nil
}

func (s *ProjectsService) Add(ctx context.Context, p Project) (string, *Error) {
	if strings.TrimSpace(p.Title) == "" {
		return "", Validationf("project title is required")
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if err := validateProjectStatus(p.Status); err != nil {
		return "", err
	}
	id, err := s.store.AddProject(ctx, p)
	if err != nil {
		return "", classify("add project", err)
	}
	return id, nil
}

func (s *ProjectsService) Update(ctx context.Context, id string, patch ProjectPatch) *Error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Validationf("project title is required")
	}
	if patch.Status != nil {
		if err := validateProjectStatus(*patch.Status); err != nil {
			return err
		}
	}
	return classify("update project", s.store.UpdateProject(ctx, id, patch))
}

func (s *ProjectsService) Delete(ctx context.Context, id string) *Error {
	return classify("delete project", s.store.DeleteProject(ctx, id))
}

func validateProjectStatus(status string) *Error {
	switch status {
	case StatusPublished, StatusDraft, StatusArchived:
		return nil
	}
	return Validationf("invalid project status %q", status)
}

// BlogService manages the blog collection.
type BlogService struct {
	store *Store
}

func (s *BlogService) List(ctx context.Context) ([]BlogPost, *Error) {
	posts, err := s.store.ListBlogPosts(ctx)
	if err != nil {
		return nil, classify("list posts", err)
	}
	return posts, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (BlogPost, *Error) {
	p, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		return BlogPost{}, classify("get post", err)
	}
	return p, nil
}

// Add validates and inserts a post. The slug is derived from the title when
// empty and the reading time is computed from the content.
func (s *BlogService) Add(ctx context.Context, p BlogPost) (string, *Error) {
	if strings.TrimSpace(p.Title) == "" {
		return "", Validationf("post title is required")
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if err := validatePostStatus(p.Status); err != nil {
		return "", err
	}
	p.ReadingTime = ReadingTime(p.Content)
	id, err := s.store.AddBlogPost(ctx, p)
	if err != nil {
		return "", classify("add post", err)
	}
	return id, nil
}

func (s *BlogService) Update(ctx context.Context, id string, patch BlogPostPatch) *Error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Validationf("post title is required")
	}
	if patch.Status != nil {
		if err := validatePostStatus(*patch.Status); err != nil {
			return err
		}
	}
	return classify("update post", s.store.UpdateBlogPost(ctx, id, patch))
}

// RecordView bumps the view counter. Failures are classified but callers on
// the public path typically just log them.
func (s *BlogService) RecordView(ctx context.Context, id string) *Error {
	return classify("record view", s.store.IncrementViews(ctx, id))
}

func (s *BlogService) Delete(ctx context.Context, id string) *Error {
	return classify("delete post", s.store.DeleteBlogPost(ctx, id))
}

func validatePostStatus(status string) *Error {
	switch status {
	case StatusPublished, StatusDraft:
		return nil
	}
	return Validationf("invalid post status %q", status)
}

// ContactService manages contact submissions.
type ContactService struct {
	store *Store
}

func (s *ContactService) List(ctx context.Context) ([]ContactSubmission, *Error) {
	subs, err := s.store.ListContactSubmissions(ctx)
	if err != nil {
		return nil, classify("list messages", err)
	}
	return subs, nil
}

// Submit records a new message from the public contact form.
func (s *ContactService) Submit(ctx context.Context, c ContactSubmission) (string, *Error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Message) == "" {
		return "", Validationf("name, email and message are required")
	}
	id, err := s.store.AddContactSubmission(ctx, c)
	if err != nil {
		return "", classify("submit message", err)
	}
	return id, nil
}

func (s *ContactService) MarkAsRead(ctx context.Context, id string) *Error {
	return classify("mark message read", s.store.MarkContactRead(ctx, id))
}

// MarkAsReplied marks a message replied. The store also sets read, so the
// replied-implies-read invariant cannot be violated through this path.
func (s *ContactService) MarkAsReplied(ctx context.Context, id string) *Error {
	return classify("mark message replied", s.store.MarkContactReplied(ctx, id))
}

func (s *ContactService) Delete(ctx context.Context, id string) *Error {
	return classify("delete message", s.store.DeleteContactSubmission(ctx, id))
}

// SettingsService manages the singleton settings document.
type SettingsService struct {
	store *Store
}

func (s *SettingsService) Get(ctx context.Context) (SiteSettings, bool, *Error) {
	st, ok, err := s.store.GetSettings(ctx)
	if err != nil {
		return SiteSettings{}, false, classify("get settings", err)
	}
	return st, ok, nil
}

func (s *SettingsService) Upsert(ctx context.Context, st SiteSettings) *Error {
	return classify("save settings", s.store.UpsertSettings(ctx, st))
}
