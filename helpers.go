package portfolio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ReadingTime estimates minutes to read content at ~200 words per minute,
// with a minimum of one minute for non-empty content.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// FilterPostsByTag returns the posts carrying the given tag. An empty tag
// returns the input unchanged.
func FilterPostsByTag(posts []BlogPost, tag string) []BlogPost {
	if tag == "" {
		return posts
	}
	normalized := normalizeTag(tag)
	var filtered []BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// PaginatePosts slices posts for a "load more" page: the window starting at
// offset with at most limit entries, plus whether more remain after it.
func PaginatePosts(posts []BlogPost, offset, limit int) (page []BlogPost, hasMore bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(posts) {
		return nil, false
	}
	end := offset + limit
	if limit <= 0 || end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], end < len(posts)
}

// FilterRelatedPosts finds posts that share at least one tag with current.
func FilterRelatedPosts(current BlogPost, posts []BlogPost) []BlogPost {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		if tag := normalizeTag(t); tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []BlogPost
	for _, p := range posts {
		if p.ID == current.ID {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// GroupSkillsByCategory buckets skills per category, preserving the incoming
// (order-sorted) sequence inside each bucket. Category names come back in
// first-seen order.
func GroupSkillsByCategory(skills []Skill) (categories []string, grouped map[string][]Skill) {
	grouped = make(map[string][]Skill)
	for _, sk := range skills {
		if _, seen := grouped[sk.Category]; !seen {
			categories = append(categories, sk.Category)
		}
		grouped[sk.Category] = append(grouped[sk.Category], sk)
	}
	return categories, grouped
}

// CollectTags returns the sorted-by-first-use, deduplicated tag list across
// the given posts, normalized to lowercase.
func CollectTags(posts []BlogPost) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			tag := normalizeTag(t)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// JoinTags joins tags with ", " for form fields.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// SplitTags parses a comma-separated form field into a clean tag slice.
func SplitTags(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// PersonJsonLD returns a JSON-LD string for a Person schema describing the
// site owner, used on the home page head.
func PersonJsonLD(cfg SiteConfig, social SocialLinks) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     cfg.Author,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	var sameAs []string
	for _, link := range []string{social.Github, social.Linkedin, social.Twitter, social.Website} {
		if link != "" {
			sameAs = append(sameAs, link)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post BlogPost, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Excerpt,
		"url":         postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.PublishedAt != nil {
		data["datePublished"] = post.PublishedAt.Format("2006-01-02")
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
