package dto

import (
	"time"

	"clip-letter/models"
)

// ReportDTO exposes the reader-facing fields of a report together with the
// resolved summary variant. Internal bookkeeping (revision history, index
// fields) stays hidden.
type ReportDTO struct {
	ID              string                 `json:"id"`
	VideoID         string                 `json:"video_id"`
	Title           string                 `json:"title"`
	ChannelName     string                 `json:"channel_name"`
	CanonicalURL    string                 `json:"canonical_url"`
	ThumbnailURL    string                 `json:"thumbnail_url"`
	DurationSeconds int                    `json:"duration_seconds"`
	PublishedAt     time.Time              `json:"published_at"`
	IndexedAt       time.Time              `json:"indexed_at"`
	Language        string                 `json:"language"`
	ContentType     string                 `json:"content_type"`
	ComplexityLevel string                 `json:"complexity_level"`
	HasAudio        bool                   `json:"has_audio"`
	Categories      []models.CategoryGroup `json:"categories"`
	Topics          []string               `json:"topics"`
	Summary         SummaryDTO             `json:"summary"`
}

// SummaryDTO is the resolved variant presented for a report.
type SummaryDTO struct {
	Variant     string    `json:"variant"`
	Text        string    `json:"text"`
	HTML        string    `json:"html"`
	Revision    int       `json:"revision"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReportDTO constructs ReportDTO from models.Report
func NewReportDTO(p models.Report) ReportDTO {
	categories := p.Categories
	if categories == nil {
		categories = []models.CategoryGroup{}
	}
	topics := p.Topics
	if topics == nil {
		topics = []string{}
	}
	return ReportDTO{
		ID:              p.ID.Hex(),
		VideoID:         p.VideoID,
		Title:           p.Title,
		ChannelName:     p.ChannelName,
		CanonicalURL:    p.CanonicalURL,
		ThumbnailURL:    p.ThumbnailURL,
		DurationSeconds: p.DurationSeconds,
		PublishedAt:     p.PublishedAt,
		IndexedAt:       p.IndexedAt,
		Language:        p.Language,
		ContentType:     p.ContentType,
		ComplexityLevel: p.ComplexityLevel,
		HasAudio:        p.HasAudio,
		Categories:      categories,
		Topics:          topics,
		Summary: SummaryDTO{
			Variant:     p.Display.Variant,
			Text:        p.Display.Text,
			HTML:        p.Display.HTML,
			Revision:    p.Display.Revision,
			GeneratedAt: p.Display.GeneratedAt,
		},
	}
}
