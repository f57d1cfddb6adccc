package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clip-letter/models"
)

type ReportSummaryRepository struct {
	col *mongo.Collection
}

func NewReportSummaryRepository(db *mongo.Database) *ReportSummaryRepository {
	return &ReportSummaryRepository{col: db.Collection("report_summaries")}
}

// FindLatest returns the highest revision for a (video_id, variant) pair,
// or nil when the pair has never been written. The read keys on the revision
// number, not the latest flag, so a half-finished write can never hide the
// current content or restart the revision counter at 1.
func (r *ReportSummaryRepository) FindLatest(ctx context.Context, videoID, variant string) (*models.ReportSummary, error) {
	var s models.ReportSummary
	findOpts := options.FindOne().SetSort(bson.D{{Key: "revision", Value: -1}})
	err := r.col.FindOne(ctx, bson.M{"video_id": videoID, "variant": variant}, findOpts).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindLatestByVideo returns the highest revision of every variant of a
// report, sorted by variant for deterministic iteration. Same rule as
// FindLatest: max(revision) per variant is authoritative, the latest flag is
// only a query accelerator.
func (r *ReportSummaryRepository) FindLatestByVideo(ctx context.Context, videoID string) ([]models.ReportSummary, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"video_id": videoID}},
		{"$sort": bson.D{{Key: "variant", Value: 1}, {Key: "revision", Value: -1}}},
		{"$group": bson.M{"_id": "$variant", "doc": bson.M{"$first": "$$ROOT"}}},
		{"$replaceRoot": bson.M{"newRoot": "$doc"}},
		{"$sort": bson.D{{Key: "variant", Value: 1}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.ReportSummary
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// InsertRevision inserts the given summary as the new latest revision, then
// demotes every other revision of the pair. Insert-first ordering means a
// failed insert leaves the previous state untouched, and a concurrent writer
// racing to the same revision number loses on the unique
// (video_id, variant, revision) index without ever demoting the winner.
// A crash between insert and demote leaves a stray latest flag, which the
// max(revision) reads above ignore and the next write cleans up.
func (r *ReportSummaryRepository) InsertRevision(ctx context.Context, s *models.ReportSummary) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	s.Latest = true
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return err
	}

	_, err := r.col.UpdateMany(ctx,
		bson.M{"video_id": s.VideoID, "variant": s.Variant, "revision": bson.M{"$ne": s.Revision}},
		bson.M{"$set": bson.M{"latest": false}},
	)
	return err
}
