package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filterable dimension names, shared by the list and facet paths.
const (
	DimCategory    = "category"
	DimChannel     = "channel"
	DimYear        = "year"
	DimHasAudio    = "has_audio"
	DimVariant     = "variant"
	DimLanguage    = "language"
	DimContentType = "content_type"
	DimComplexity  = "complexity"
)

// ReportFilter carries the active selections of a query. All dimensions are
// ANDed; values within one dimension are ORed. Query is a case-insensitive
// substring match over title OR the resolved variant's plain text.
type ReportFilter struct {
	Categories   []string
	Channels     []string
	Years        []int
	HasAudio     *bool
	Variants     []string
	Languages    []string
	ContentTypes []string
	Complexities []string
	Query        string
}

// toRegexIn builds case-insensitive anchored regex values for an $in clause.
func toRegexIn(values []string) []interface{} {
	arr := make([]interface{}, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		pattern := "^" + regexp.QuoteMeta(v) + "$"
		arr = append(arr, primitive.Regex{Pattern: pattern, Options: "i"})
	}
	return arr
}

// buildFilter translates a ReportFilter into a Mongo filter document.
// exclude names the dimension whose own selection must not be applied
// (facet self-exclusion); pass "" for the list path.
//
// Reports without a presentable variant are always filtered out: they are
// invisible to readers and to facet counts alike.
func buildFilter(f ReportFilter, exclude string) bson.M {
	filter := bson.M{
		"display.variant": bson.M{"$exists": true, "$ne": ""},
	}

	if exclude != DimCategory {
		if vals := toRegexIn(f.Categories); len(vals) > 0 {
			filter["category_names"] = bson.M{"$in": vals}
		}
	}
	if exclude != DimChannel {
		if vals := toRegexIn(f.Channels); len(vals) > 0 {
			filter["channel_name"] = bson.M{"$in": vals}
		}
	}
	if exclude != DimYear && len(f.Years) > 0 {
		years := make([]interface{}, 0, len(f.Years))
		for _, y := range f.Years {
			years = append(years, y)
		}
		filter["published_year"] = bson.M{"$in": years}
	}
	if exclude != DimHasAudio && f.HasAudio != nil {
		filter["has_audio"] = *f.HasAudio
	}
	if exclude != DimVariant {
		if vals := toRegexIn(f.Variants); len(vals) > 0 {
			filter["display.variant"] = bson.M{"$in": vals}
		}
	}
	if exclude != DimLanguage {
		if vals := toRegexIn(f.Languages); len(vals) > 0 {
			filter["language"] = bson.M{"$in": vals}
		}
	}
	if exclude != DimContentType {
		if vals := toRegexIn(f.ContentTypes); len(vals) > 0 {
			filter["content_type"] = bson.M{"$in": vals}
		}
	}
	if exclude != DimComplexity {
		if vals := toRegexIn(f.Complexities); len(vals) > 0 {
			filter["complexity_level"] = bson.M{"$in": vals}
		}
	}

	if f.Query != "" {
		q := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": q},
			{"display.text": q},
		}
	}

	return filter
}
