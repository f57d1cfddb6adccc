package dto

// PaginationMeta describes one page of an offset-paginated listing.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPaginationMeta derives the page envelope from the clamped page/size
// and the filtered total.
func NewPaginationMeta(page, size int, total int64) PaginationMeta {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return PaginationMeta{
		Page:       page,
		Size:       size,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// ActiveFilters echoes the filter selections a listing was computed under,
// after sanitization, so clients can render the applied state verbatim.
type ActiveFilters struct {
	Categories   []string `json:"categories,omitempty"`
	Channels     []string `json:"channels,omitempty"`
	Years        []int    `json:"years,omitempty"`
	HasAudio     *bool    `json:"has_audio,omitempty"`
	Variants     []string `json:"variants,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	ContentTypes []string `json:"content_types,omitempty"`
	Complexities []string `json:"complexities,omitempty"`
	Query        string   `json:"query,omitempty"`
}

// ReportListResponse is a concrete swagger-friendly type for the paginated
// reports listing.
// swagger:model ReportListResponse
type ReportListResponse struct {
	Reports    []ReportDTO    `json:"reports"`
	Pagination PaginationMeta `json:"pagination"`
	Sort       string         `json:"sort"`
	Filters    ActiveFilters  `json:"filters"`
}
