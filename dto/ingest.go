package dto

import (
	"time"

	"clip-letter/models"
)

// IngestReportRequest is the payload the producer pipeline posts to
// /ingest/report and publishes to the Kafka ingest topic. Both transports
// share the same shape so a replayed Kafka message and an HTTP retry are
// interchangeable.
type IngestReportRequest struct {
	VideoID         string                  `json:"video_id"`
	Title           string                  `json:"title"`
	ChannelName     string                  `json:"channel_name"`
	CanonicalURL    string                  `json:"canonical_url"`
	ThumbnailURL    string                  `json:"thumbnail_url"`
	DurationSeconds int                     `json:"duration_seconds"`
	PublishedAt     time.Time               `json:"published_at"`
	Language        string                  `json:"language"`
	ContentType     string                  `json:"content_type"`
	ComplexityLevel string                  `json:"complexity_level"`
	Categories      models.CategoryList     `json:"categories"`
	Topics          []string                `json:"topics"`
	Summaries       []SummaryVariantPayload `json:"summary_variants"`
}

// SummaryVariantPayload is one summary variant in an ingest request.
// HTML is a pointer so the producer can distinguish "no markup" (null)
// from an empty string; variants without markup are stored but never
// presented.
type SummaryVariantPayload struct {
	Variant     string     `json:"variant"`
	Text        string     `json:"text"`
	HTML        *string    `json:"html"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}

// IngestReportResponse reports what the idempotent write actually changed.
// Upserted is 1 when the call changed content (a new report, or at least one
// new revision) and 0 on an identical resend; a report-added event goes out
// under the same condition. SummariesUpserted counts the revisions written.
type IngestReportResponse struct {
	Upserted          int `json:"upserted"`
	SummariesUpserted int `json:"summaries_upserted"`
}

// AudioUploadResponse returns where the stored narration file is served from.
type AudioUploadResponse struct {
	Saved     bool   `json:"saved"`
	PublicURL string `json:"public_url"`
}
