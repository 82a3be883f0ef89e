package portfolio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test_portfolio.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHeroSingletonUpsert(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, ok, err := s.GetHero(ctx)
	if err != nil {
		t.Fatalf("GetHero failed: %v", err)
	}
	if ok {
		t.Fatal("hero should be absent before first upsert")
	}

	if err := s.UpsertHero(ctx, HeroData{Title: "Hello", Subtitle: "World", CTAText: "Hire me", CTALink: "#contact"}); err != nil {
		t.Fatalf("UpsertHero failed: %v", err)
	}
	if err := s.UpsertHero(ctx, HeroData{Title: "Updated", Subtitle: "World"}); err != nil {
		t.Fatalf("second UpsertHero failed: %v", err)
	}

	got, ok, err := s.GetHero(ctx)
	if err != nil {
		t.Fatalf("GetHero failed: %v", err)
	}
	if !ok {
		t.Fatal("hero should exist after upsert")
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %q, want %q", got.Title, "Updated")
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped")
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM hero`).Scan(&count); err != nil {
		t.Fatalf("count hero rows: %v", err)
	}
	if count != 1 {
		t.Errorf("hero rows = %d, want 1 (upsert must never create a second document)", count)
	}
}

func TestAboutHighlightsRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	highlights := []string{"10 years of experience", "Open source maintainer", "Speaker"}
	if err := s.UpsertAbout(ctx, AboutData{Title: "About me", Highlights: highlights}); err != nil {
		t.Fatalf("UpsertAbout failed: %v", err)
	}

	got, ok, err := s.GetAbout(ctx)
	if err != nil || !ok {
		t.Fatalf("GetAbout = ok %v, err %v", ok, err)
	}
	if len(got.Highlights) != 3 {
		t.Fatalf("Highlights count = %d, want 3", len(got.Highlights))
	}
	for i, h := range highlights {
		if got.Highlights[i] != h {
			t.Errorf("Highlights[%d] = %q, want %q (order must be preserved)", i, got.Highlights[i], h)
		}
	}
}

func TestSkillsOrdering(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, sk := range []Skill{
		{Name: "Docker", Category: "Tools", Level: 70, Order: 3},
		{Name: "Go", Category: "Backend", Level: 90, Order: 1},
		{Name: "SQL", Category: "Backend", Level: 80, Order: 2},
	} {
		if _, err := s.AddSkill(ctx, sk); err != nil {
			t.Fatalf("AddSkill failed: %v", err)
		}
	}

	got, err := s.ListSkills(ctx)
	if err != nil {
		t.Fatalf("ListSkills failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListSkills count = %d, want 3", len(got))
	}
	for i, want := range []string{"Go", "SQL", "Docker"} {
		if got[i].Name != want {
			t.Errorf("ListSkills[%d] = %q, want %q (ascending order)", i, got[i].Name, want)
		}
	}
	if got[0].ID == "" {
		t.Error("store should assign ids")
	}
}

func TestUpdateSkillPartialPatch(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddSkill(ctx, Skill{Name: "Go", Category: "Backend", Level: 80, Icon: "go.svg", Order: 1})
	if err != nil {
		t.Fatalf("AddSkill failed: %v", err)
	}

	level := 95
	if err := s.UpdateSkill(ctx, id, SkillPatch{Level: &level}); err != nil {
		t.Fatalf("UpdateSkill failed: %v", err)
	}

	got, err := s.GetSkill(ctx, id)
	if err != nil {
		t.Fatalf("GetSkill failed: %v", err)
	}
	if got.Level != 95 {
		t.Errorf("Level = %d, want 95", got.Level)
	}
	// Untouched fields keep their stored values.
	if got.Name != "Go" || got.Category != "Backend" || got.Icon != "go.svg" || got.Order != 1 {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}

func TestDeleteSkillAbsent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.DeleteSkill(ctx, "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSkill on absent id = %v, want ErrNotFound", err)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddProject(ctx, Project{
		Title:        "Portfolio Engine",
		Description:  "This site",
		Technologies: []string{"Go", "Echo", "SQLite"},
		Images:       []string{"/uploads/projects/main/1_a.jpg", "/uploads/projects/main/2_b.jpg"},
		Featured:     true,
		Status:       StatusPublished,
		Order:        1,
	})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}

	got, err := s.GetProject(ctx, id)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if got.Title != "Portfolio Engine" || !got.Featured || got.Status != StatusPublished {
		t.Errorf("project fields wrong: %+v", got)
	}
	if len(got.Technologies) != 3 || got.Technologies[0] != "Go" {
		t.Errorf("Technologies = %v", got.Technologies)
	}
	if len(got.Images) != 2 || got.Images[1] != "/uploads/projects/main/2_b.jpg" {
		t.Errorf("Images = %v (order must be preserved)", got.Images)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be stamped on insert")
	}
}

func TestUpdateProjectRefreshesUpdatedAt(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddProject(ctx, Project{Title: "Old", Status: StatusDraft})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	before, _ := s.GetProject(ctx, id)

	status := StatusPublished
	if err := s.UpdateProject(ctx, id, ProjectPatch{Status: &status}); err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	after, err := s.GetProject(ctx, id)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if after.Status != StatusPublished {
		t.Errorf("Status = %q, want published", after.Status)
	}
	if after.Title != "Old" {
		t.Errorf("Title changed on partial patch: %q", after.Title)
	}
	if after.UpdatedAt.Before(before.UpdatedAt) {
		t.Error("UpdatedAt should move forward on update")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("CreatedAt must be immutable")
	}
}

func TestBlogPostsNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.AddBlogPost(ctx, BlogPost{Title: title, Slug: title, Status: StatusPublished}); err != nil {
			t.Fatalf("AddBlogPost failed: %v", err)
		}
	}

	got, err := s.ListBlogPosts(ctx)
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListBlogPosts count = %d, want 3", len(got))
	}
	for i, want := range []string{"third", "second", "first"} {
		if got[i].Slug != want {
			t.Errorf("ListBlogPosts[%d] = %q, want %q (newest first)", i, got[i].Slug, want)
		}
	}
}

func TestBlogPublishedAtStamping(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// Drafts get no published_at.
	draftID, err := s.AddBlogPost(ctx, BlogPost{Title: "Draft", Slug: "draft", Status: StatusDraft})
	if err != nil {
		t.Fatalf("AddBlogPost failed: %v", err)
	}
	draft, _ := s.GetBlogPost(ctx, draftID)
	if draft.PublishedAt != nil {
		t.Error("draft should have no PublishedAt")
	}

	// First transition to published stamps it.
	status := StatusPublished
	if err := s.UpdateBlogPost(ctx, draftID, BlogPostPatch{Status: &status}); err != nil {
		t.Fatalf("UpdateBlogPost failed: %v", err)
	}
	published, _ := s.GetBlogPost(ctx, draftID)
	if published.PublishedAt == nil {
		t.Fatal("publishing should stamp PublishedAt")
	}
	first := *published.PublishedAt

	// Re-publishing after unpublish keeps the original stamp.
	statusDraft := StatusDraft
	if err := s.UpdateBlogPost(ctx, draftID, BlogPostPatch{Status: &statusDraft}); err != nil {
		t.Fatalf("UpdateBlogPost failed: %v", err)
	}
	if err := s.UpdateBlogPost(ctx, draftID, BlogPostPatch{Status: &status}); err != nil {
		t.Fatalf("UpdateBlogPost failed: %v", err)
	}
	again, _ := s.GetBlogPost(ctx, draftID)
	if again.PublishedAt == nil || !again.PublishedAt.Equal(first) {
		t.Errorf("PublishedAt = %v, want original stamp %v", again.PublishedAt, first)
	}
}

func TestBlogContentPatchRecomputesReadingTime(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddBlogPost(ctx, BlogPost{Title: "Post", Slug: "post", Content: "short", ReadingTime: 1})
	if err != nil {
		t.Fatalf("AddBlogPost failed: %v", err)
	}

	long := ""
	for i := 0; i < 450; i++ {
		long += "word "
	}
	if err := s.UpdateBlogPost(ctx, id, BlogPostPatch{Content: &long}); err != nil {
		t.Fatalf("UpdateBlogPost failed: %v", err)
	}

	got, _ := s.GetBlogPost(ctx, id)
	if got.ReadingTime != 3 {
		t.Errorf("ReadingTime = %d, want 3 (450 words at 200wpm)", got.ReadingTime)
	}
}

func TestIncrementViews(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddBlogPost(ctx, BlogPost{Title: "Post", Slug: "post", Status: StatusPublished})
	if err != nil {
		t.Fatalf("AddBlogPost failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.IncrementViews(ctx, id); err != nil {
			t.Fatalf("IncrementViews failed: %v", err)
		}
	}
	got, _ := s.GetBlogPost(ctx, id)
	if got.Views != 3 {
		t.Errorf("Views = %d, want 3", got.Views)
	}
}

func TestContactRepliedImpliesRead(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddContactSubmission(ctx, ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("AddContactSubmission failed: %v", err)
	}

	if err := s.MarkContactReplied(ctx, id); err != nil {
		t.Fatalf("MarkContactReplied failed: %v", err)
	}

	subs, err := s.ListContactSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListContactSubmissions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("count = %d, want 1", len(subs))
	}
	if !subs[0].Replied {
		t.Error("Replied should be set")
	}
	if !subs[0].Read {
		t.Error("Read must be set whenever Replied is set")
	}
}

func TestDeleteContactAbsent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.DeleteContactSubmission(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteContactSubmission on absent id = %v, want ErrNotFound", err)
	}
}

func TestSettingsKeywordsRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	st := SiteSettings{
		SiteName: "My Site",
		Social:   SocialLinks{Github: "https://github.com/me"},
		SEO:      SEOSettings{MetaTitle: "Me", Keywords: []string{"go", "portfolio", "web"}},
	}
	if err := s.UpsertSettings(ctx, st); err != nil {
		t.Fatalf("UpsertSettings failed: %v", err)
	}

	got, ok, err := s.GetSettings(ctx)
	if err != nil || !ok {
		t.Fatalf("GetSettings = ok %v, err %v", ok, err)
	}
	if got.Social.Github != "https://github.com/me" {
		t.Errorf("Social.Github = %q", got.Social.Github)
	}
	if len(got.SEO.Keywords) != 3 || got.SEO.Keywords[1] != "portfolio" {
		t.Errorf("Keywords = %v", got.SEO.Keywords)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{",", nil},
		{",go,", []string{"go"}},
		{",go,web,", []string{"go", "web"}},
		{",go, web ,rust,", []string{"go", "web", "rust"}},
	}

	for _, tt := range tests {
		got := ParseTags(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
