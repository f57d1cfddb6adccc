package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"clip-letter/dto"
	"clip-letter/models"
	"clip-letter/repositories"
)

// maxQueryRunes caps free-text search input; longer input is truncated,
// not rejected.
const maxQueryRunes = 50

// storeTimeout bounds every store round trip so a stalled Mongo node cannot
// wedge a request worker.
const storeTimeout = 5 * time.Second

// ReportQueryStore is the subset of the report repository the read side needs.
type ReportQueryStore interface {
	List(ctx context.Context, opt repositories.ListReportsOptions) ([]models.Report, int64, error)
	CountFacet(ctx context.Context, dim string, f repositories.ReportFilter) ([]models.FacetCount, error)
	FindByVideoID(ctx context.Context, videoID string) (*models.Report, error)
}

// QueryService serves the read side: listings, facet counts and single
// report lookups over the visible set.
type QueryService struct {
	reports ReportQueryStore
}

func NewQueryService(reports ReportQueryStore) *QueryService {
	return &QueryService{reports: reports}
}

// SanitizeQuery normalizes free-text search input: dash-like punctuation
// becomes a plain hyphen, runs of whitespace collapse to single spaces, and
// the result is clamped to maxQueryRunes.
func SanitizeQuery(q string) string {
	q = strings.NewReplacer("–", "-", "—", "-").Replace(q)
	q = strings.Join(strings.Fields(q), " ")
	runes := []rune(q)
	if len(runes) > maxQueryRunes {
		q = strings.TrimSpace(string(runes[:maxQueryRunes]))
	}
	return q
}

// sanitizeFilter applies the free-text normalization to every string-valued
// dimension, not just the query: oversized or oddly spaced selections are
// cleaned the same way, never rejected.
func sanitizeFilter(f repositories.ReportFilter) repositories.ReportFilter {
	f.Query = SanitizeQuery(f.Query)
	for _, list := range [][]string{f.Categories, f.Channels, f.Variants, f.Languages, f.ContentTypes, f.Complexities} {
		for i := range list {
			list[i] = SanitizeQuery(list[i])
		}
	}
	return f
}

// ListInput carries the raw listing parameters as parsed from the query
// string. Page/size are clamped here so the pagination envelope matches the
// rows actually fetched.
type ListInput struct {
	Filter repositories.ReportFilter
	Sort   string
	Page   int
	Size   int
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 50 {
		size = 50
	}
	return page, size
}

// List returns one page of visible reports with the pagination envelope.
func (s *QueryService) List(ctx context.Context, in ListInput) (*dto.ReportListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	in.Page, in.Size = clampPage(in.Page, in.Size)
	in.Filter = sanitizeFilter(in.Filter)

	sort := in.Sort
	if _, ok := SortNames[sort]; !ok {
		sort = "newest"
	}

	items, total, err := s.reports.List(ctx, repositories.ListReportsOptions{
		Filter:   in.Filter,
		Sort:     sort,
		Page:     in.Page,
		PageSize: in.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	out := make([]dto.ReportDTO, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewReportDTO(p))
	}
	return &dto.ReportListResponse{
		Reports:    out,
		Pagination: dto.NewPaginationMeta(in.Page, in.Size, total),
		Sort:       sort,
		Filters:    echoFilters(in.Filter),
	}, nil
}

// echoFilters mirrors the sanitized selections back into the envelope.
func echoFilters(f repositories.ReportFilter) dto.ActiveFilters {
	return dto.ActiveFilters{
		Categories:   f.Categories,
		Channels:     f.Channels,
		Years:        f.Years,
		HasAudio:     f.HasAudio,
		Variants:     f.Variants,
		Languages:    f.Languages,
		ContentTypes: f.ContentTypes,
		Complexities: f.Complexities,
		Query:        f.Query,
	}
}

// SortNames enumerates the accepted sort parameter values. Anything else
// silently falls back to newest.
var SortNames = map[string]struct{}{
	"newest":       {},
	"oldest":       {},
	"title_asc":    {},
	"title_desc":   {},
	"channel_asc":  {},
	"channel_desc": {},
	"video_newest": {},
}

// GetReport returns one visible report by its video id.
func (s *QueryService) GetReport(ctx context.Context, videoID string) (*dto.ReportDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	p, err := s.reports.FindByVideoID(ctx, videoID)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !p.Display.Presentable() {
		// 변형이 하나도 표시 가능하지 않으면 독자에게는 존재하지 않는 리포트다
		return nil, ErrNotFound
	}
	d := dto.NewReportDTO(*p)
	return &d, nil
}

// Facets computes the counts of every filterable dimension under the given
// selection, each dimension excluding its own values.
func (s *QueryService) Facets(ctx context.Context, f repositories.ReportFilter) (*dto.FiltersDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	f = sanitizeFilter(f)

	out := &dto.FiltersDTO{}

	var err error
	if out.Categories, err = s.reports.CountFacet(ctx, repositories.DimCategory, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.Channels, err = s.reports.CountFacet(ctx, repositories.DimChannel, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.Years, err = s.reports.CountFacet(ctx, repositories.DimYear, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.HasAudio, err = s.reports.CountFacet(ctx, repositories.DimHasAudio, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.Variants, err = s.reports.CountFacet(ctx, repositories.DimVariant, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.Languages, err = s.reports.CountFacet(ctx, repositories.DimLanguage, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.ContentTypes, err = s.reports.CountFacet(ctx, repositories.DimContentType, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out.Complexities, err = s.reports.CountFacet(ctx, repositories.DimComplexity, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}
