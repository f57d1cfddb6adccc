package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report represents one indexed video/article item.
// Collection: reports
//
// video_id is the stable natural key assigned by the producer pipeline;
// indexed_at is server-assigned on first insert and never rewritten.
type Report struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	VideoID         string             `bson:"video_id" json:"video_id"`
	Title           string             `bson:"title" json:"title"`
	ChannelName     string             `bson:"channel_name" json:"channel_name"`
	CanonicalURL    string             `bson:"canonical_url" json:"canonical_url"`
	ThumbnailURL    string             `bson:"thumbnail_url" json:"thumbnail_url"`
	DurationSeconds int                `bson:"duration_seconds" json:"duration_seconds"`
	PublishedAt     time.Time          `bson:"published_at" json:"published_at"`
	IndexedAt       time.Time          `bson:"indexed_at" json:"indexed_at"`
	Language        string             `bson:"language" json:"language"`
	ContentType     string             `bson:"content_type" json:"content_type"`
	ComplexityLevel string             `bson:"complexity_level" json:"complexity_level"`
	HasAudio        bool               `bson:"has_audio" json:"has_audio"`
	Categories      []CategoryGroup    `bson:"categories" json:"categories"`
	Topics          []string           `bson:"topics" json:"topics"`

	// Denormalized fields kept for indexing (same pattern as the category
	// and published_year secondary keys the list/facet queries run against).
	CategoryNames []string `bson:"category_names" json:"-"`
	PublishedYear int      `bson:"published_year" json:"-"`

	// Display is the resolved-variant snapshot maintained by the ingest path.
	// Display.Variant == "" means the report has no presentable variant and
	// must stay invisible to readers.
	Display DisplaySummary `bson:"display" json:"display"`
}

// CategoryGroup is the canonical category shape: one category with its
// (possibly empty) subcategories.
type CategoryGroup struct {
	Category      string   `bson:"category" json:"category"`
	Subcategories []string `bson:"subcategories" json:"subcategories"`
}

// DisplaySummary is a denormalized snapshot of the variant chosen by the
// precedence policy, stored under reports.display.
type DisplaySummary struct {
	Variant     string    `bson:"variant" json:"variant"`
	Text        string    `bson:"text" json:"text"`
	HTML        string    `bson:"html" json:"html"`
	Revision    int       `bson:"revision" json:"revision"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}

// Presentable reports whether the snapshot points at a real variant.
func (d DisplaySummary) Presentable() bool {
	return d.Variant != ""
}

// FacetCount is one value of a filterable dimension together with the number
// of visible reports carrying it. Derived per query, never persisted.
type FacetCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}
