package portfolio

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces  Around  ", "spaces-around"},
		{"Go 1.24 Release Notes!", "go-1-24-release-notes"},
		{"UPPER case", "upper-case"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"blog", "my-post"}, "https://example.com/blog/my-post/"},
		{"https://example.com/", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com", nil, "https://example.com"},
	}

	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime(""); got != 0 {
		t.Errorf("empty content = %d, want 0", got)
	}
	if got := ReadingTime("just a few words"); got != 1 {
		t.Errorf("short content = %d, want 1", got)
	}
	if got := ReadingTime(strings.Repeat("word ", 401)); got != 3 {
		t.Errorf("401 words = %d, want 3", got)
	}
}

func TestFilterPostsByTag(t *testing.T) {
	posts := []BlogPost{
		{ID: "1", Tags: []string{"Go", "web"}},
		{ID: "2", Tags: []string{"rust"}},
		{ID: "3", Tags: []string{"go"}},
	}

	got := FilterPostsByTag(posts, "go")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("FilterPostsByTag = %+v, want posts 1 and 3 (case-insensitive)", got)
	}

	if got := FilterPostsByTag(posts, ""); len(got) != 3 {
		t.Errorf("empty tag should return all posts, got %d", len(got))
	}
}

func TestPaginatePosts(t *testing.T) {
	posts := make([]BlogPost, 5)
	for i := range posts {
		posts[i].ID = string(rune('a' + i))
	}

	page, hasMore := PaginatePosts(posts, 0, 2)
	if len(page) != 2 || !hasMore {
		t.Errorf("first page = %d entries, hasMore %v; want 2, true", len(page), hasMore)
	}

	page, hasMore = PaginatePosts(posts, 4, 2)
	if len(page) != 1 || hasMore {
		t.Errorf("last page = %d entries, hasMore %v; want 1, false", len(page), hasMore)
	}

	page, hasMore = PaginatePosts(posts, 10, 2)
	if page != nil || hasMore {
		t.Errorf("out-of-range offset = %v, %v; want nil, false", page, hasMore)
	}

	page, hasMore = PaginatePosts(posts, -3, 2)
	if len(page) != 2 || !hasMore {
		t.Errorf("negative offset should clamp to zero, got %d entries", len(page))
	}

	page, hasMore = PaginatePosts(posts, 1, 0)
	if len(page) != 4 || hasMore {
		t.Errorf("zero limit should return the rest, got %d entries, hasMore %v", len(page), hasMore)
	}
}

func TestFilterRelatedPosts(t *testing.T) {
	current := BlogPost{ID: "1", Tags: []string{"go", "web"}}
	posts := []BlogPost{
		{ID: "1", Tags: []string{"go"}},
		{ID: "2", Tags: []string{"GO"}},
		{ID: "3", Tags: []string{"rust"}},
		{ID: "4", Tags: []string{"web", "rust"}},
	}

	got := FilterRelatedPosts(current, posts)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "4" {
		t.Errorf("FilterRelatedPosts = %+v, want posts 2 and 4 (self excluded, tags case-insensitive)", got)
	}
}

func TestGroupSkillsByCategory(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Category: "Backend"},
		{Name: "CSS", Category: "Frontend"},
		{Name: "SQL", Category: "Backend"},
	}

	categories, grouped := GroupSkillsByCategory(skills)
	if len(categories) != 2 || categories[0] != "Backend" || categories[1] != "Frontend" {
		t.Errorf("categories = %v, want first-seen order", categories)
	}
	if len(grouped["Backend"]) != 2 || grouped["Backend"][1].Name != "SQL" {
		t.Errorf("Backend group = %+v, want Go then SQL", grouped["Backend"])
	}
}

func TestCollectTags(t *testing.T) {
	posts := []BlogPost{
		{Tags: []string{"Go", "web"}},
		{Tags: []string{"go", "rust", " "}},
	}

	got := CollectTags(posts)
	if len(got) != 3 || got[0] != "go" || got[1] != "web" || got[2] != "rust" {
		t.Errorf("CollectTags = %v, want [go web rust]", got)
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("go, web , ,rust")
	if len(got) != 3 || got[0] != "go" || got[1] != "web" || got[2] != "rust" {
		t.Errorf("SplitTags = %v", got)
	}
}

func TestBlogPostingJsonLDContainsURL(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com", Author: "Ada"}
	post := BlogPost{Title: "My Post", Slug: "my-post", Excerpt: "An excerpt", Tags: []string{"go"}}

	got := BlogPostingJsonLD(post, cfg)
	if !strings.Contains(got, `"https://example.com/blog/my-post/"`) {
		t.Errorf("missing post URL in %s", got)
	}
	if !strings.Contains(got, `"BlogPosting"`) || !strings.Contains(got, `"My Post"`) {
		t.Errorf("missing schema fields in %s", got)
	}
}
