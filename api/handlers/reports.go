package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clip-letter/repositories"
	"clip-letter/services"
)

// filterFromQuery parses the shared filter dimensions from the query string.
func filterFromQuery(c *gin.Context) repositories.ReportFilter {
	f := repositories.ReportFilter{
		Categories:   c.QueryArray("categories"),
		Channels:     c.QueryArray("channels"),
		Variants:     c.QueryArray("variants"),
		Languages:    c.QueryArray("languages"),
		ContentTypes: c.QueryArray("content_types"),
		Complexities: c.QueryArray("complexities"),
		Query:        c.Query("q"),
	}

	for _, y := range c.QueryArray("years") {
		if n, err := strconv.Atoi(y); err == nil {
			f.Years = append(f.Years, n)
		}
	}

	if v := c.Query("has_audio"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.HasAudio = &b
		}
	}

	return f
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	case errors.Is(err, services.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}

// ListReportsHandler godoc
// @Summary      List reports
// @Description  List visible reports with filters, free-text search and pagination
// @Tags         reports
// @Param        page           query  int       false  "Page number (1-based)"
// @Param        size           query  int       false  "Page size (<=50)"
// @Param        sort           query  string    false  "newest|oldest|title_asc|title_desc|channel_asc|channel_desc|video_newest"
// @Param        q              query  string    false  "Free-text search over title and summary text"
// @Param        categories     query  []string  false  "Categories (OR match)"
// @Param        channels       query  []string  false  "Channel names (OR match)"
// @Param        years          query  []int     false  "Published years (OR match)"
// @Param        has_audio      query  bool      false  "Audio narration available"
// @Param        variants       query  []string  false  "Resolved summary variants (OR match)"
// @Param        languages      query  []string  false  "Languages (OR match)"
// @Param        content_types  query  []string  false  "Content types (OR match)"
// @Param        complexities   query  []string  false  "Complexity levels (OR match)"
// @Produce      json
// @Success      200  {object}  dto.ReportListResponse
// @Router       /reports [get]
func ListReportsHandler(svc *services.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

		res, err := svc.List(c.Request.Context(), services.ListInput{
			Filter: filterFromQuery(c),
			Sort:   c.DefaultQuery("sort", "newest"),
			Page:   page,
			Size:   size,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetReportHandler godoc
// @Summary      Get report by video id
// @Description  Get a single visible report with its resolved summary
// @Tags         reports
// @Param        video_id  path  string  true  "Video ID"
// @Produce      json
// @Success      200  {object}  dto.ReportDTO
// @Failure      404  {object}  map[string]string
// @Router       /reports/{video_id} [get]
func GetReportHandler(svc *services.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.GetReport(c.Request.Context(), c.Param("video_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// ListFiltersHandler godoc
// @Summary      Facet counts
// @Description  Value counts for every filterable dimension under the active selection; each dimension excludes its own values
// @Tags         filters
// @Param        q              query  string    false  "Free-text search over title and summary text"
// @Param        categories     query  []string  false  "Categories (OR match)"
// @Param        channels       query  []string  false  "Channel names (OR match)"
// @Param        years          query  []int     false  "Published years (OR match)"
// @Param        has_audio      query  bool      false  "Audio narration available"
// @Param        variants       query  []string  false  "Resolved summary variants (OR match)"
// @Param        languages      query  []string  false  "Languages (OR match)"
// @Param        content_types  query  []string  false  "Content types (OR match)"
// @Param        complexities   query  []string  false  "Complexity levels (OR match)"
// @Produce      json
// @Success      200  {object}  dto.FiltersDTO
// @Router       /filters [get]
func ListFiltersHandler(svc *services.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Facets(c.Request.Context(), filterFromQuery(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
