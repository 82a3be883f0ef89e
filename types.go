package portfolio

import "time"

// Project and blog post lifecycle states.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
)

// HeroData is the singleton hero-section document. Absent is a valid state
// distinct from an empty record.
type HeroData struct {
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	Description     string    `json:"description"`
	CTAText         string    `json:"ctaText"`
	CTALink         string    `json:"ctaLink"`
	BackgroundImage string    `json:"backgroundImage,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AboutData is the singleton about-section document.
type AboutData struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image,omitempty"`
	ResumeURL    string    `json:"resumeUrl,omitempty"`
	Experience   string    `json:"experience"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	Highlights   []string  `json:"highlights"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Skill is one entry in the skills grid, grouped by Category for display.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"` // 0-100
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Order    int    `json:"order"`
}

// Project is a portfolio project. Order defines display sequence and is not
// guaranteed unique.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	Technologies    []string  `json:"technologies"`
	Images          []string  `json:"images"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	GithubURL       string    `json:"githubUrl,omitempty"`
	Featured        bool      `json:"featured"`
	Status          string    `json:"status"` // published, draft or archived
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BlogPost is a blog entry. Views counts public post-page hits.
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"` // published or draft
	Featured    bool       `json:"featured"`
	ReadingTime int        `json:"readingTime"`
	Views       int        `json:"views"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// ContactSubmission is a message from the public contact form.
// State machine: new -> read -> replied.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" schema:"name"`
	Email     string    `json:"email" schema:"email"`
	Subject   string    `json:"subject" schema:"subject"`
	Message   string    `json:"message" schema:"message"`
	Read      bool      `json:"read" schema:"-"`
	Replied   bool      `json:"replied" schema:"-"`
	CreatedAt time.Time `json:"createdAt" schema:"-"`
}

// SocialLinks holds the outbound profile links shown in the footer and SEO blocks.
type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
}

// SEOSettings holds meta-tag defaults for the public pages.
type SEOSettings struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OGImage         string   `json:"ogImage,omitempty"`
}

// SiteSettings is the singleton settings document.
type SiteSettings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	Social          SocialLinks `json:"socialLinks"`
	SEO             SEOSettings `json:"seo"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Patch types carry partial updates. Nil fields are left untouched; set
// fields overwrite the stored value verbatim.

// SkillPatch is a partial update to a Skill.
type SkillPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Level    *int    `json:"level,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Color    *string `json:"color,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// ProjectPatch is a partial update to a Project.
type ProjectPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LongDescription *string   `json:"longDescription,omitempty"`
	Technologies    *[]string `json:"technologies,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	LiveURL         *string   `json:"liveUrl,omitempty"`
	GithubURL       *string   `json:"githubUrl,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	Status          *string   `json:"status,omitempty"`
	Order           *int      `json:"order,omitempty"`
}

// BlogPostPatch is a partial update to a BlogPost.
type BlogPostPatch struct {
	Title      *string   `json:"title,omitempty"`
	Slug       *string   `json:"slug,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Content    *string   `json:"content,omitempty"`
	CoverImage *string   `json:"coverImage,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Status     *string   `json:"status,omitempty"`
	Featured   *bool     `json:"featured,omitempty"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
