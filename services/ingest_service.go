package services

import (
	"context"
	"fmt"
	"time"

	"clip-letter/dto"
	"clip-letter/events"
	"clip-letter/internal/logger"
	"clip-letter/models"
	"clip-letter/parser"
	"clip-letter/resolver"
)

// ReportStore is the subset of the report repository the ingest path needs.
type ReportStore interface {
	Upsert(ctx context.Context, p *models.Report) (bool, error)
	FindByVideoID(ctx context.Context, videoID string) (*models.Report, error)
	UpdateDisplay(ctx context.Context, videoID string, d models.DisplaySummary) error
	SetHasAudio(ctx context.Context, videoID string, has bool) error
}

// SummaryStore is the subset of the summary repository the ingest path needs.
type SummaryStore interface {
	FindLatest(ctx context.Context, videoID, variant string) (*models.ReportSummary, error)
	FindLatestByVideo(ctx context.Context, videoID string) ([]models.ReportSummary, error)
	InsertRevision(ctx context.Context, s *models.ReportSummary) error
}

// Broadcaster notifies connected SSE readers. Delivery is best-effort.
type Broadcaster interface {
	Publish(event string, payload any) error
}

// IngestService applies producer payloads to the store: an idempotent report
// upsert, revisioned summary variant writes, and a recompute of the resolved
// display snapshot. HTTP and Kafka ingest both land here, so a replayed
// message degrades to a no-op instead of duplicating revisions.
type IngestService struct {
	reports   ReportStore
	summaries SummaryStore
	hub       Broadcaster
}

func NewIngestService(reports ReportStore, summaries SummaryStore, hub Broadcaster) *IngestService {
	return &IngestService{reports: reports, summaries: summaries, hub: hub}
}

func validateIngest(in dto.IngestReportRequest) error {
	if in.VideoID == "" {
		return fmt.Errorf("%w: video_id is required", ErrValidation)
	}
	for i, s := range in.Summaries {
		if s.Variant == "" {
			return fmt.Errorf("%w: summaries[%d].variant is required", ErrValidation, i)
		}
		if s.Text == "" && (s.HTML == nil || *s.HTML == "") {
			return fmt.Errorf("%w: summaries[%d] has neither text nor html", ErrValidation, i)
		}
	}
	return nil
}

// Ingest processes one producer payload end to end.
func (s *IngestService) Ingest(ctx context.Context, in dto.IngestReportRequest) (*dto.IngestReportResponse, error) {
	if err := validateIngest(in); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	report := &models.Report{
		VideoID:         in.VideoID,
		Title:           in.Title,
		ChannelName:     in.ChannelName,
		CanonicalURL:    in.CanonicalURL,
		ThumbnailURL:    in.ThumbnailURL,
		DurationSeconds: in.DurationSeconds,
		PublishedAt:     in.PublishedAt,
		Language:        in.Language,
		ContentType:     in.ContentType,
		ComplexityLevel: in.ComplexityLevel,
		Categories:      in.Categories,
		CategoryNames:   in.Categories.Names(),
		Topics:          in.Topics,
	}
	if !in.PublishedAt.IsZero() {
		report.PublishedYear = in.PublishedAt.Year()
	}

	created, err := s.reports.Upsert(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("%w: 리포트 upsert 실패: %v", ErrStoreUnavailable, err)
	}

	written := make([]string, 0, len(in.Summaries))
	for _, payload := range in.Summaries {
		wrote, err := s.writeVariant(ctx, in.VideoID, payload)
		if err != nil {
			return nil, err
		}
		if wrote {
			written = append(written, payload.Variant)
		}
	}

	if err := s.refreshDisplay(ctx, in.VideoID); err != nil {
		return nil, err
	}

	logger.InfoWithFields("리포트 인제스트 완료", logger.Fields{
		"video_id":           in.VideoID,
		"created":            created,
		"summaries_written":  written,
		"summaries_received": len(in.Summaries),
	})

	// upserted 와 이벤트 발행은 같은 조건을 본다: 이 호출이 실제로 내용을
	// 바꿨는가. 동일 페이로드 재전송은 0 을 돌려주고 구독자를 깨우지 않는다.
	changed := created || len(written) > 0
	if changed {
		if err := s.hub.Publish(events.ReportAdded, events.NewReportAdded(in.VideoID, dedup(written))); err != nil {
			// 알림은 best-effort: 직렬화 실패가 인제스트를 되돌리지 않는다.
			logger.Log.Warnf("report-added 이벤트 발행 실패: %v", err)
		}
	}

	upserted := 0
	if changed {
		upserted = 1
	}
	return &dto.IngestReportResponse{
		Upserted:          upserted,
		SummariesUpserted: len(written),
	}, nil
}

// dedup collapses repeated variant names while keeping first-seen order.
func dedup(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// writeVariant inserts a new revision for the (video_id, variant) pair unless
// the latest revision already carries identical content. Returns true when a
// revision was written.
func (s *IngestService) writeVariant(ctx context.Context, videoID string, payload dto.SummaryVariantPayload) (bool, error) {
	prev, err := s.summaries.FindLatest(ctx, videoID, payload.Variant)
	if err != nil {
		return false, fmt.Errorf("%w: 변형 %s 최신 리비전 조회 실패: %v", ErrStoreUnavailable, payload.Variant, err)
	}

	text := payload.Text
	if text == "" && payload.HTML != nil {
		// 검색과 display.text 는 평문이 필요하다
		text = parser.ExtractPlainText(*payload.HTML)
	}

	if prev != nil && prev.Text == text && htmlEqual(prev.HTML, payload.HTML) {
		return false, nil
	}

	next := &models.ReportSummary{
		VideoID:  videoID,
		Variant:  payload.Variant,
		Text:     text,
		HTML:     payload.HTML,
		Revision: 1,
	}
	if prev != nil {
		next.Revision = prev.Revision + 1
	}
	if payload.GeneratedAt != nil {
		next.CreatedAt = *payload.GeneratedAt
	} else {
		next.CreatedAt = time.Now()
	}

	if err := s.summaries.InsertRevision(ctx, next); err != nil {
		return false, fmt.Errorf("%w: 변형 %s 리비전 저장 실패: %v", ErrStoreUnavailable, payload.Variant, err)
	}
	return true, nil
}

// refreshDisplay recomputes the resolved-variant snapshot from the current
// latest set. An unresolvable set writes an empty snapshot, which hides the
// report from readers.
func (s *IngestService) refreshDisplay(ctx context.Context, videoID string) error {
	latest, err := s.summaries.FindLatestByVideo(ctx, videoID)
	if err != nil {
		return fmt.Errorf("%w: 최신 변형 조회 실패: %v", ErrStoreUnavailable, err)
	}

	var snapshot models.DisplaySummary
	if chosen, ok := resolver.Resolve(latest); ok {
		snapshot = models.DisplaySummary{
			Variant:     chosen.Variant,
			Text:        chosen.Text,
			HTML:        *chosen.HTML,
			Revision:    chosen.Revision,
			GeneratedAt: chosen.CreatedAt,
		}
	}

	if err := s.reports.UpdateDisplay(ctx, videoID, snapshot); err != nil {
		return fmt.Errorf("%w: display 스냅샷 갱신 실패: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func htmlEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
