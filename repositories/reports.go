package repositories

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clip-letter/models"
)

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection("reports")}
}

// Upsert writes a report keyed by video_id, last-write-wins on every field
// except video_id/indexed_at/created_at which are only set on first insert.
// Returns true when the document was newly created.
func (r *ReportRepository) Upsert(ctx context.Context, p *models.Report) (bool, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":            p.Title,
			"channel_name":     p.ChannelName,
			"canonical_url":    p.CanonicalURL,
			"thumbnail_url":    p.ThumbnailURL,
			"duration_seconds": p.DurationSeconds,
			"published_at":     p.PublishedAt,
			"published_year":   p.PublishedYear,
			"language":         p.Language,
			"content_type":     p.ContentType,
			"complexity_level": p.ComplexityLevel,
			"has_audio":        p.HasAudio,
			"categories":       p.Categories,
			"category_names":   p.CategoryNames,
			"topics":           p.Topics,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
			"indexed_at": now,
			"display":    models.DisplaySummary{},
		},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"video_id": p.VideoID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// FindByVideoID returns a report by its natural key.
func (r *ReportRepository) FindByVideoID(ctx context.Context, videoID string) (*models.Report, error) {
	var p models.Report
	if err := r.col.FindOne(ctx, bson.M{"video_id": videoID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateDisplay replaces the resolved-variant snapshot. An empty snapshot
// makes the report invisible to readers.
func (r *ReportRepository) UpdateDisplay(ctx context.Context, videoID string, d models.DisplaySummary) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"video_id": videoID}, bson.M{
		"$set": bson.M{"display": d, "updated_at": time.Now()},
	})
	return err
}

// SetHasAudio flips the has_audio flag only.
func (r *ReportRepository) SetHasAudio(ctx context.Context, videoID string, has bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"video_id": videoID}, bson.M{
		"$set": bson.M{"has_audio": has, "updated_at": time.Now()},
	})
	return err
}

// ListReportsOptions carries pagination/sort on top of the shared filter.
type ListReportsOptions struct {
	Filter   ReportFilter
	Sort     string
	Page     int
	PageSize int
}

// sortSpecs maps the public sort names onto stable Mongo sort documents.
// _id is the tiebreak everywhere so a fixed sort never reorders equal keys.
var sortSpecs = map[string]bson.D{
	"newest":       {{Key: "indexed_at", Value: -1}, {Key: "_id", Value: -1}},
	"oldest":       {{Key: "indexed_at", Value: 1}, {Key: "_id", Value: 1}},
	"title_asc":    {{Key: "title", Value: 1}, {Key: "_id", Value: 1}},
	"title_desc":   {{Key: "title", Value: -1}, {Key: "_id", Value: -1}},
	"channel_asc":  {{Key: "channel_name", Value: 1}, {Key: "_id", Value: 1}},
	"channel_desc": {{Key: "channel_name", Value: -1}, {Key: "_id", Value: -1}},
	"video_newest": {{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}},
}

// List returns one page of visible reports plus the total count for the
// filter. Offset pagination: pages may shift under concurrent ingest, which
// is accepted for a recent-items feed.
func (r *ReportRepository) List(ctx context.Context, opt ListReportsOptions) ([]models.Report, int64, error) {
	filter := buildFilter(opt.Filter, "")

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 {
		opt.PageSize = 20
	}
	if opt.PageSize > 50 {
		opt.PageSize = 50
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sort, ok := sortSpecs[opt.Sort]
	if !ok {
		sort = sortSpecs["newest"]
	}
	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Report
	for cur.Next(ctx) {
		var p models.Report
		if err := cur.Decode(&p); err != nil {
			return nil, 0, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// facetSpec describes how one dimension is grouped.
type facetSpec struct {
	field  string
	unwind bool
	cap    int
}

var facetSpecs = map[string]facetSpec{
	DimCategory:    {field: "category_names", unwind: true, cap: 100},
	DimChannel:     {field: "channel_name", cap: 50},
	DimYear:        {field: "published_year", cap: 100},
	DimHasAudio:    {field: "has_audio", cap: 100},
	DimVariant:     {field: "display.variant", cap: 100},
	DimLanguage:    {field: "language", cap: 100},
	DimContentType: {field: "content_type", cap: 100},
	DimComplexity:  {field: "complexity_level", cap: 100},
}

// CountFacet computes value counts for one dimension over the visible set,
// applying every active filter except the dimension's own (self-exclusion).
// Results come back sorted by count desc, ties by value asc, capped.
func (r *ReportRepository) CountFacet(ctx context.Context, dim string, f ReportFilter) ([]models.FacetCount, error) {
	spec, ok := facetSpecs[dim]
	if !ok {
		return nil, nil
	}

	pipeline := []bson.M{
		{"$match": buildFilter(f, dim)},
	}
	if spec.unwind {
		pipeline = append(pipeline, bson.M{"$unwind": "$" + spec.field})
	}
	pipeline = append(pipeline,
		bson.M{"$group": bson.M{"_id": "$" + spec.field, "count": bson.M{"$sum": 1}}},
		bson.M{"$match": bson.M{"_id": bson.M{"$nin": []interface{}{nil, "", 0}}}},
		bson.M{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
		bson.M{"$limit": spec.cap},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    interface{} `bson:"_id"`
		Count int64       `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]models.FacetCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.FacetCount{Value: facetValue(row.ID), Count: row.Count})
	}
	return out, nil
}

// facetValue renders a grouped _id as its public string form.
func facetValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int32:
		return strconv.Itoa(int(t))
	case int64:
		return strconv.Itoa(int(t))
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
