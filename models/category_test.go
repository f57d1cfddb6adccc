package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListLegacyFlat(t *testing.T) {
	var c CategoryList
	require.NoError(t, json.Unmarshal([]byte(`["backend", "infra"]`), &c))

	assert.Equal(t, CategoryList{
		{Category: "backend"},
		{Category: "infra"},
	}, c)
}

func TestCategoryListStructured(t *testing.T) {
	var c CategoryList
	require.NoError(t, json.Unmarshal([]byte(`[{"category":"backend","subcategories":["go","db"]}]`), &c))

	require.Len(t, c, 1)
	assert.Equal(t, "backend", c[0].Category)
	assert.Equal(t, []string{"go", "db"}, c[0].Subcategories)
}

func TestCategoryListMixedShapes(t *testing.T) {
	var c CategoryList
	require.NoError(t, json.Unmarshal([]byte(`["infra", {"category":"backend","subcategories":["go"]}]`), &c))

	require.Len(t, c, 2)
	assert.Equal(t, "infra", c[0].Category)
	assert.Equal(t, "backend", c[1].Category)
}

func TestCategoryListRejectsGarbage(t *testing.T) {
	var c CategoryList
	assert.Error(t, json.Unmarshal([]byte(`"not-an-array"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`[42]`), &c))
}

func TestCategoryListDropsEmptyNames(t *testing.T) {
	var c CategoryList
	require.NoError(t, json.Unmarshal([]byte(`["", {"category":""}, "keep"]`), &c))

	assert.Equal(t, CategoryList{{Category: "keep"}}, c)
}

func TestCategoryNamesDedupPreservesOrder(t *testing.T) {
	c := CategoryList{
		{Category: "backend"},
		{Category: "infra"},
		{Category: "backend", Subcategories: []string{"go"}},
	}
	assert.Equal(t, []string{"backend", "infra"}, c.Names())
}
