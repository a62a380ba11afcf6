package models

import (
	"encoding/json"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/markup"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Article is a blog post / buying guide. Content is written in the store's
// bracket markup ([title], [p], [list]...).
type Article struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string         `json:"title" gorm:"not null"`
	Slug          string         `json:"slug" gorm:"not null;uniqueIndex"`
	Excerpt       string         `json:"excerpt" gorm:"type:text"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	CoverImageURL *string        `json:"cover_image_url,omitempty"`
	Published     bool           `json:"published" gorm:"default:false;index"`
	PublishedAt   *time.Time     `json:"published_at,omitempty" gorm:"index"`
	Tags          datatypes.JSON `json:"tags" swaggertype:"array,string"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if len(a.Tags) == 0 {
		a.Tags = datatypes.JSON("[]")
	}
	return nil
}

func (Article) TableName() string {
	return "articles"
}

// TagList decodes Tags, returning an empty slice on bad data.
func (a *Article) TagList() []string {
	tags := []string{}
	if len(a.Tags) > 0 {
		_ = json.Unmarshal(a.Tags, &tags)
	}
	return tags
}

// EncodeTags is the inverse of TagList.
func EncodeTags(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return datatypes.JSON(b)
}

type ArticleRequest struct {
	Title         string   `json:"title" binding:"required" example:"Cómo elegir tu saco de dormir"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" binding:"required" example:"[title]Sacos[/title][p]Texto[/p]"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	Published     bool     `json:"published"`
	Tags          []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	CoverImageURL *string   `json:"cover_image_url"`
	Published     *bool     `json:"published"`
	Tags          *[]string `json:"tags"`
}

type ArticlePreviewRequest struct {
	Content string `json:"content" binding:"required"`
}

// ArticleRendered is what readers (and the admin preview) get: the parsed
// blocks plus sanitised HTML.
type ArticleRendered struct {
	Blocks []markup.Block `json:"blocks"`
	HTML   string         `json:"html"`
	Text   string         `json:"text"`
}

type ArticleSummary struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Tags          []string   `json:"tags"`
}

type ArticleDetail struct {
	ArticleSummary
	ArticleRendered
}

// RenderArticle parses markup source.
func RenderArticle(src string) ArticleRendered {
	doc := markup.Parse(src)
	blocks := doc.Blocks
	if blocks == nil {
		blocks = []markup.Block{}
	}
	return ArticleRendered{Blocks: blocks, HTML: doc.HTML(), Text: doc.Text()}
}

func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:            a.ID,
		Title:         a.Title,
		Slug:          a.Slug,
		Excerpt:       a.Excerpt,
		CoverImageURL: a.CoverImageURL,
		PublishedAt:   a.PublishedAt,
		Tags:          a.TagList(),
	}
}

func (a *Article) Detail() ArticleDetail {
	return ArticleDetail{ArticleSummary: a.Summary(), ArticleRendered: RenderArticle(a.Content)}
}
