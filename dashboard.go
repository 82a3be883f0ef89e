package portfolio

import (
	"context"
	"sync"
	"time"
)

// Operation keys for in-flight tracking. One key per mutation so pending
// work on one resource never blocks edits to another.
const (
	OpHeroSave       = "hero.save"
	OpAboutSave      = "about.save"
	OpSettingsSave   = "settings.save"
	OpSkillAdd       = "skills.add"
	OpSkillUpdate    = "skills.update"
	OpSkillDelete    = "skills.delete"
	OpProjectAdd     = "projects.add"
	OpProjectUpdate  = "projects.update"
	OpProjectDelete  = "projects.delete"
	OpPostAdd        = "blog.add"
	OpPostUpdate     = "blog.update"
	OpPostDelete     = "blog.delete"
	OpMessageRead    = "contact.read"
	OpMessageReplied = "contact.replied"
	OpMessageDelete  = "contact.delete"
	OpLoadAll        = "loadAll"
)

// Dashboard is the in-memory source of truth the admin views render from.
// It keeps local copies of every collection and mutates them in lockstep
// with successful service calls: apply-after-success, never before, and
// never on failure, so no rollback path exists.
type Dashboard struct {
	services   *Services
	notify     *NotificationCenter
	invalidate func()

	mu       sync.RWMutex
	hero     *HeroData
	about    *AboutData
	settings *SiteSettings
	skills   []Skill
	projects []Project
	posts    []BlogPost
	messages []ContactSubmission

	inFlight map[string]bool
}

// NewDashboard creates a controller over the given services. onMutate, if
// non-nil, runs after every successful mutation (used to invalidate the
// public content cache).
func NewDashboard(services *Services, notify *NotificationCenter, onMutate func()) *Dashboard {
	inval := onMutate
	if inval == nil {
		inval = func() {}
	}
	return &Dashboard{
		services:   services,
		notify:     notify,
		invalidate: inval,
		inFlight:   make(map[string]bool),
	}
}

// begin marks an operation in flight, rejecting duplicate submissions of
// the same operation key.
func (d *Dashboard) begin(key string) *Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inFlight[key] {
		return Validationf("%s is already in progress", key)
	}
	d.inFlight[key] = true
	return nil
}

func (d *Dashboard) end(key string) {
	d.mu.Lock()
	delete(d.inFlight, key)
	d.mu.Unlock()
}

// InFlight reports whether the given operation key is pending.
func (d *Dashboard) InFlight(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inFlight[key]
}

// AnyInFlight reports whether any operation is pending.
func (d *Dashboard) AnyInFlight() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.inFlight) > 0
}

// Notifications returns the current banner state.
func (d *Dashboard) Notifications() Notifications {
	return d.notify.Current()
}

// LoadAll fetches every collection concurrently. Each result assigns into
// its own slice independently, so partial failure is tolerated; only the
// last error observed surfaces in the banner.
func (d *Dashboard) LoadAll(ctx context.Context) *Error {
	if err := d.begin(OpLoadAll); err != nil {
		return err
	}
	defer d.end(OpLoadAll)

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var lastErr *Error

	record := func(err *Error) {
		if err == nil {
			return
		}
		errMu.Lock()
		lastErr = err
		errMu.Unlock()
	}

	wg.Add(7)
	go func() {
		defer wg.Done()
		h, ok, err := d.services.Hero.Get(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			if ok {
				d.hero = &h
			} else {
				d.hero = nil
			}
			d.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		a, ok, err := d.services.About.Get(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			if ok {
				d.about = &a
			} else {
				d.about = nil
			}
			d.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		st, ok, err := d.services.Settings.Get(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			if ok {
				d.settings = &st
			} else {
				d.settings = nil
			}
			d.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		skills, err := d.services.Skills.List(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			d.skills = skills
			d.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		projects, err := d.services.Projects.List(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			d.projects = projects
			d.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		posts, err := d.services.Blog.List(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			d.posts = posts
			d.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		messages, err := d.services.Contact.List(ctx)
		record(err)
		if err == nil {
			d.mu.Lock()
			d.messages = messages
			d.mu.Unlock()
		}
	}()
	wg.Wait()

	if lastErr != nil {
		d.notify.Error("Failed to load some dashboard data")
		return lastErr
	}
	return nil
}

// --- Snapshot accessors (copies; callers never see live state) ---

func (d *Dashboard) Hero() (HeroData, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.hero == nil {
		return HeroData{}, false
	}
	return *d.hero, true
}

func (d *Dashboard) About() (AboutData, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.about == nil {
		return AboutData{}, false
	}
	return *d.about, true
}

func (d *Dashboard) Settings() (SiteSettings, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.settings == nil {
		return SiteSettings{}, false
	}
	return *d.settings, true
}

func (d *Dashboard) Skills() []Skill {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Skill, len(d.skills))
	copy(out, d.skills)
	return out
}

func (d *Dashboard) Projects() []Project {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Project, len(d.projects))
	copy(out, d.projects)
	return out
}

func (d *Dashboard) Posts() []BlogPost {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]BlogPost, len(d.posts))
	copy(out, d.posts)
	return out
}

func (d *Dashboard) Messages() []ContactSubmission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]ContactSubmission, len(d.messages))
	copy(out, d.messages)
	return out
}

// --- Singleton mutations ---

// SaveHero upserts the hero document and mirrors it locally on success.
func (d *Dashboard) SaveHero(ctx context.Context, h HeroData) *Error {
	if err := d.begin(OpHeroSave); err != nil {
		return err
	}
	defer d.end(OpHeroSave)

	if err := d.services.Hero.Upsert(ctx, h); err != nil {
		d.notify.Error("Failed to update hero section")
		return err
	}
	h.UpdatedAt = time.Now().UTC()
	d.mu.Lock()
	d.hero = &h
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Hero section updated successfully")
	return nil
}

// SaveAbout upserts the about document and mirrors it locally on success.
func (d *Dashboard) SaveAbout(ctx context.Context, a AboutData) *Error {
	if err := d.begin(OpAboutSave); err != nil {
		return err
	}
	defer d.end(OpAboutSave)

	if err := d.services.About.Upsert(ctx, a); err != nil {
		d.notify.Error("Failed to update about section")
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	d.mu.Lock()
	d.about = &a
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("About section updated successfully")
	return nil
}

// SaveSettings upserts the settings document and mirrors it locally on success.
func (d *Dashboard) SaveSettings(ctx context.Context, st SiteSettings) *Error {
	if err := d.begin(OpSettingsSave); err != nil {
		return err
	}
	defer d.end(OpSettingsSave)

	if err := d.services.Settings.Upsert(ctx, st); err != nil {
		d.notify.Error("Failed to update site settings")
		return err
	}
	st.UpdatedAt = time.Now().UTC()
	d.mu.Lock()
	d.settings = &st
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Site settings updated successfully")
	return nil
}

// --- Skills ---

// AddSkill adds a skill. On success the local collection gains the submitted
// fields merged with the id the store assigned.
func (d *Dashboard) AddSkill(ctx context.Context, sk Skill) (Skill, *Error) {
	if err := d.begin(OpSkillAdd); err != nil {
		return Skill{}, err
	}
	defer d.end(OpSkillAdd)

	id, err := d.services.Skills.Add(ctx, sk)
	if err != nil {
		d.notify.Error("Failed to add skill")
		return Skill{}, err
	}
	sk.ID = id
	d.mu.Lock()
	d.skills = append(d.skills, sk)
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Skill added successfully")
	return sk, nil
}

// UpdateSkill patches a skill. On success the local record has every field
// of the patch overwritten and all other fields unchanged.
func (d *Dashboard) UpdateSkill(ctx context.Context, id string, p SkillPatch) *Error {
	if err := d.begin(OpSkillUpdate); err != nil {
		return err
	}
	defer d.end(OpSkillUpdate)

	if err := d.services.Skills.Update(ctx, id, p); err != nil {
		d.notify.Error("Failed to update skill")
		return err
	}
	d.mu.Lock()
	for i := range d.skills {
		if d.skills[i].ID != id {
			continue
		}
		if p.Name != nil {
			d.skills[i].Name = *p.Name
		}
		if p.Category != nil {
			d.skills[i].Category = *p.Category
		}
		if p.Level != nil {
			d.skills[i].Level = *p.Level
		}
		if p.Icon != nil {
			d.skills[i].Icon = *p.Icon
		}
		if p.Color != nil {
			d.skills[i].Color = *p.Color
		}
		if p.Order != nil {
			d.skills[i].Order = *p.Order
		}
		break
	}
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Skill updated successfully")
	return nil
}

// DeleteSkill removes a skill. On failure (including an already-absent id)
// the local collection is untouched.
func (d *Dashboard) DeleteSkill(ctx context.Context, id string) *Error {
	if err := d.begin(OpSkillDelete); err != nil {
		return err
	}
	defer d.end(OpSkillDelete)

	if err := d.services.Skills.Delete(ctx, id); err != nil {
		d.notify.Error("Failed to delete skill")
		return err
	}
	d.mu.Lock()
	d.skills = filterSkills(d.skills, id)
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Skill deleted successfully")
	return nil
}

// --- Projects ---

func (d *Dashboard) AddProject(ctx context.Context, p Project) (Project, *Error) {
	if err := d.begin(OpProjectAdd); err != nil {
		return Project{}, err
	}
	defer d.end(OpProjectAdd)

	id, err := d.services.Projects.Add(ctx, p)
	if err != nil {
		d.notify.Error("Failed to add project")
		return Project{}, err
	}
	p.ID = id
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = StatusDraft
	}
	d.mu.Lock()
	d.projects = append(d.projects, p)
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Project added successfully")
	return p, nil
}

func (d *Dashboard) UpdateProject(ctx context.Context, id string, patch ProjectPatch) *Error {
	if err := d.begin(OpProjectUpdate); err != nil {
		return err
	}
	defer d.end(OpProjectUpdate)

	if err := d.services.Projects.Update(ctx, id, patch); err != nil {
		d.notify.Error("Failed to update project")
		return err
	}
	d.mu.Lock()
	for i := range d.projects {
		if d.projects[i].ID != id {
			continue
		}
		applyProjectPatch(&d.projects[i], patch)
		d.projects[i].UpdatedAt = time.Now().UTC()
		break
	}
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Project updated successfully")
	return nil
}

func (d *Dashboard) DeleteProject(ctx context.Context, id string) *Error {
	if err := d.begin(OpProjectDelete); err != nil {
		return err
	}
	defer d.end(OpProjectDelete)

	if err := d.services.Projects.Delete(ctx, id); err != nil {
		d.notify.Error("Failed to delete project")
		return err
	}
	d.mu.Lock()
	kept := d.projects[:0]
	for _, p := range d.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	d.projects = kept
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Project deleted successfully")
	return nil
}

// --- Blog ---

func (d *Dashboard) AddPost(ctx context.Context, p BlogPost) (BlogPost, *Error) {
	if err := d.begin(OpPostAdd); err != nil {
		return BlogPost{}, err
	}
	defer d.end(OpPostAdd)

	id, err := d.services.Blog.Add(ctx, p)
	if err != nil {
		d.notify.Error("Failed to add blog post")
		return BlogPost{}, err
	}
	p.ID = id
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	p.ReadingTime = ReadingTime(p.Content)
	p.Views = 0
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == StatusPublished {
		p.PublishedAt = &now
	}
	d.mu.Lock()
	// Blog lists newest-first; prepend to keep local order consistent with a
	// fresh list() call.
	d.posts = append([]BlogPost{p}, d.posts...)
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Blog post added successfully")
	return p, nil
}

func (d *Dashboard) UpdatePost(ctx context.Context, id string, patch BlogPostPatch) *Error {
	if err := d.begin(OpPostUpdate); err != nil {
		return err
	}
	defer d.end(OpPostUpdate)

	if err := d.services.Blog.Update(ctx, id, patch); err != nil {
		d.notify.Error("Failed to update blog post")
		return err
	}
	d.mu.Lock()
	for i := range d.posts {
		if d.posts[i].ID != id {
			continue
		}
		applyPostPatch(&d.posts[i], patch)
		d.posts[i].UpdatedAt = time.Now().UTC()
		break
	}
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Blog post updated successfully")
	return nil
}

func (d *Dashboard) DeletePost(ctx context.Context, id string) *Error {
	if err := d.begin(OpPostDelete); err != nil {
		return err
	}
	defer d.end(OpPostDelete)

	if err := d.services.Blog.Delete(ctx, id); err != nil {
		d.notify.Error("Failed to delete blog post")
		return err
	}
	d.mu.Lock()
	kept := d.posts[:0]
	for _, p := range d.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	d.posts = kept
	d.mu.Unlock()
	d.invalidate()
	d.notify.Success("Blog post deleted successfully")
	return nil
}

// --- Contact ---

func (d *Dashboard) MarkMessageRead(ctx context.Context, id string) *Error {
	if err := d.begin(OpMessageRead); err != nil {
		return err
	}
	defer d.end(OpMessageRead)

	if err := d.services.Contact.MarkAsRead(ctx, id); err != nil {
		d.notify.Error("Failed to mark message as read")
		return err
	}
	d.mu.Lock()
	for i := range d.messages {
		if d.messages[i].ID == id {
			d.messages[i].Read = true
			break
		}
	}
	d.mu.Unlock()
	return nil
}

// MarkMessageReplied marks a message replied; read is set alongside so the
// local mirror honors the same invariant the store enforces.
func (d *Dashboard) MarkMessageReplied(ctx context.Context, id string) *Error {
	if err := d.begin(OpMessageReplied); err != nil {
		return err
	}
	defer d.end(OpMessageReplied)

	if err := d.services.Contact.MarkAsReplied(ctx, id); err != nil {
		d.notify.Error("Failed to mark message as replied")
		return err
	}
	d.mu.Lock()
	for i := range d.messages {
		if d.messages[i].ID == id {
			d.messages[i].Read = true
			d.messages[i].Replied = true
			break
		}
	}
	d.mu.Unlock()
	d.notify.Success("Message marked as replied")
	return nil
}

func (d *Dashboard) DeleteMessage(ctx context.Context, id string) *Error {
	if err := d.begin(OpMessageDelete); err != nil {
		return err
	}
	defer d.end(OpMessageDelete)

	if err := d.services.Contact.Delete(ctx, id); err != nil {
		d.notify.Error("Failed to delete message")
		return err
	}
	d.mu.Lock()
	kept := d.messages[:0]
	for _, m := range d.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	d.messages = kept
	d.mu.Unlock()
	d.notify.Success("Message deleted successfully")
	return nil
}

// --- Patch application (local mirrors of the store's field-merge) ---

func filterSkills(skills []Skill, id string) []Skill {
	kept := skills[:0]
	for _, sk := range skills {
		if sk.ID != id {
			kept = append(kept, sk)
		}
	}
	return kept
}

func applyProjectPatch(p *Project, patch ProjectPatch) {
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
}

func applyPostPatch(p *BlogPost, patch BlogPostPatch) {
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
	if patch.Status != nil {
		if *patch.Status == StatusPublished && p.Status != StatusPublished && p.PublishedAt == nil {
			now := time.Now().UTC()
			p.PublishedAt = &now
		}
		p.Status = *patch.Status
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}
