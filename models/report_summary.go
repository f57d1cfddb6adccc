package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportSummary stores one revision of one summary variant of a report.
// Collection: report_summaries
//
// (video_id, variant, revision) is unique; within a (video_id, variant) pair
// exactly one document has latest=true at any time. Superseding writes insert
// revision+1 and demote the previous latest. Revisions are never hard-deleted.
type ReportSummary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	VideoID   string             `bson:"video_id" json:"video_id"`
	Variant   string             `bson:"variant" json:"variant"`
	Text      string             `bson:"text" json:"text"`
	HTML      *string            `bson:"html" json:"html"`
	Revision  int                `bson:"revision" json:"revision"`
	Latest    bool               `bson:"latest" json:"latest"`
}

// HasHTML reports whether the variant carries rendered markup. Variants
// without it are never presentable.
func (s ReportSummary) HasHTML() bool {
	return s.HTML != nil && *s.HTML != ""
}
