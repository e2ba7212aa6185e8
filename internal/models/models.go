package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Identity is the authenticated user as reported by the external identity
// provider. It is never stored directly; the Author row mirrors it.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
}

type Project struct {
	ProjectID      string         `json:"projectId" db:"project_id"`
	Name           string         `json:"name" db:"name"`
	APIKey         string         `json:"apiKey" db:"api_key"`
	AllowedDomains pq.StringArray `json:"allowedDomains" db:"allowed_domains"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

type Author struct {
	AuthorID  string `json:"authorId" db:"author_id"`
	Email     string `json:"email" db:"email"`
	FullName  string `json:"fullName" db:"full_name"`
	AvatarURL string `json:"avatarUrl" db:"avatar_url"`
	Role      string `json:"role" db:"role"`
}

// Post statuses. A post starts as an unsaved draft (no PostID), is inserted on
// first save and updated in place on every save after that.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Post struct {
	PostID          string          `json:"postId" db:"post_id"`
	ProjectID       string          `json:"projectId" db:"project_id"`
	AuthorID        string          `json:"authorId" db:"author_id"`
	IdempotencyKey  *string         `json:"idempotencyKey,omitempty" db:"idempotency_key"`
	Title           string          `json:"title" db:"title"`
	Slug            string          `json:"slug" db:"slug"`
	Content         json.RawMessage `json:"content" db:"content"`
	Excerpt         string          `json:"excerpt" db:"excerpt"`
	SEOTitle        string          `json:"seoTitle" db:"seo_title"`
	SEODescription  string          `json:"seoDescription" db:"seo_description"`
	FeaturedImageID *string         `json:"featuredImageId" db:"featured_image_id"`
	Status          string          `json:"status" db:"status"`
	PublishedAt     *time.Time      `json:"publishedAt" db:"published_at"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`

	Tags       []Tag      `json:"tags,omitempty" db:"-"`
	Categories []Category `json:"categories,omitempty" db:"-"`
}

type Tag struct {
	TagID     string  `json:"tagId" db:"tag_id"`
	ProjectID string  `json:"projectId" db:"project_id"`
	Name      string  `json:"name" db:"name"`
	Slug      string  `json:"slug" db:"slug"`
	Color     *string `json:"color" db:"color"`
}

type Category struct {
	CategoryID string `json:"categoryId" db:"category_id"`
	ProjectID  string `json:"projectId" db:"project_id"`
	Name       string `json:"name" db:"name"`
	Slug       string `json:"slug" db:"slug"`
}

type MediaAsset struct {
	MediaID     string    `json:"mediaId" db:"media_id"`
	ProjectID   string    `json:"projectId" db:"project_id"`
	UploaderID  string    `json:"uploaderId" db:"uploader_id"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	FileName    string    `json:"fileName" db:"file_name"`
	MimeType    string    `json:"mimeType" db:"mime_type"`
	SizeBytes   int64     `json:"sizeBytes" db:"size_bytes"`
	Width       int       `json:"width" db:"width"`
	Height      int       `json:"height" db:"height"`
	AltText     string    `json:"altText" db:"alt_text"`
	Title       string    `json:"title" db:"title"`
	Caption     string    `json:"caption" db:"caption"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// PublicPost is the shape returned by the public read API: the published
// subset of a post plus the joined featured image.
type PublicPost struct {
	PostID           string          `json:"postId" db:"post_id"`
	Title            string          `json:"title" db:"title"`
	Slug             string          `json:"slug" db:"slug"`
	Excerpt          string          `json:"excerpt" db:"excerpt"`
	Content          json.RawMessage `json:"content" db:"content"`
	SEOTitle         string          `json:"seoTitle" db:"seo_title"`
	SEODescription   string          `json:"seoDescription" db:"seo_description"`
	PublishedAt      *time.Time      `json:"publishedAt" db:"published_at"`
	FeaturedImageURL *string         `json:"featuredImageUrl" db:"featured_image_url"`
	FeaturedImageAlt *string         `json:"featuredImageAlt" db:"featured_image_alt"`
}
