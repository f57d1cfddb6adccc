package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func activeFilter() ReportFilter {
	hasAudio := true
	return ReportFilter{
		Categories: []string{"distributed-systems"},
		Channels:   []string{"Distributed Deep Dives"},
		Years:      []int{2024},
		HasAudio:   &hasAudio,
		Variants:   []string{"key-points"},
		Query:      "raft",
	}
}

func TestBuildFilterAppliesEveryDimension(t *testing.T) {
	filter := buildFilter(activeFilter(), "")

	assert.Contains(t, filter, "category_names")
	assert.Contains(t, filter, "channel_name")
	assert.Contains(t, filter, "published_year")
	assert.Contains(t, filter, "has_audio")
	assert.Contains(t, filter, "$or")

	// 변형 선택은 기본 가시성 조건을 $in 으로 대체한다
	assert.Equal(t, bson.M{"$in": []interface{}{
		primitive.Regex{Pattern: "^key-points$", Options: "i"},
	}}, filter["display.variant"])
}

func TestBuildFilterSelfExclusion(t *testing.T) {
	f := activeFilter()

	// 각 차원의 패싯 질의는 자신의 선택만 빼고 나머지는 전부 유지한다
	filter := buildFilter(f, DimCategory)
	assert.NotContains(t, filter, "category_names")
	assert.Contains(t, filter, "channel_name")
	assert.Contains(t, filter, "published_year")

	filter = buildFilter(f, DimChannel)
	assert.NotContains(t, filter, "channel_name")
	assert.Contains(t, filter, "category_names")

	filter = buildFilter(f, DimYear)
	assert.NotContains(t, filter, "published_year")

	filter = buildFilter(f, DimHasAudio)
	assert.NotContains(t, filter, "has_audio")

	// query 는 차원이 아니므로 어느 패싯에서도 빠지지 않는다
	assert.Contains(t, filter, "$or")
}

func TestBuildFilterVariantExclusionKeepsVisibility(t *testing.T) {
	filter := buildFilter(activeFilter(), DimVariant)

	// 변형 선택을 빼더라도 비표시 리포트는 여전히 걸러진다
	assert.Equal(t, bson.M{"$exists": true, "$ne": ""}, filter["display.variant"])
}

func TestBuildFilterEmptySelectionIsVisibilityOnly(t *testing.T) {
	filter := buildFilter(ReportFilter{}, "")

	require.Len(t, filter, 1)
	assert.Equal(t, bson.M{"$exists": true, "$ne": ""}, filter["display.variant"])
}

func TestToRegexInQuotesAndAnchors(t *testing.T) {
	vals := toRegexIn([]string{"c++", "", "go"})
	require.Len(t, vals, 2)
	assert.Equal(t, primitive.Regex{Pattern: "^c\\+\\+$", Options: "i"}, vals[0])
	assert.Equal(t, primitive.Regex{Pattern: "^go$", Options: "i"}, vals[1])
}
