package dto

import "clip-letter/models"

// FiltersDTO carries the facet counts for every filterable dimension,
// computed over the currently visible set with the requesting dimension's
// own selection excluded.
type FiltersDTO struct {
	Categories   []models.FacetCount `json:"categories"`
	Channels     []models.FacetCount `json:"channels"`
	Years        []models.FacetCount `json:"years"`
	HasAudio     []models.FacetCount `json:"has_audio"`
	Variants     []models.FacetCount `json:"variants"`
	Languages    []models.FacetCount `json:"languages"`
	ContentTypes []models.FacetCount `json:"content_types"`
	Complexities []models.FacetCount `json:"complexities"`
}
