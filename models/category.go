package models

import (
	"encoding/json"
	"fmt"
)

// CategoryList accepts the two category payload shapes the pipeline has
// produced over time and normalizes both into []CategoryGroup:
//
//	legacy flat:  ["backend", "infra"]
//	structured:   [{"category": "backend", "subcategories": ["go"]}]
//
// 인제스트 경계에서 한 번만 정규화하고, 내부 모델에는 canonical 형태만 둔다.
type CategoryList []CategoryGroup

func (c *CategoryList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("categories must be an array: %w", err)
	}

	out := make([]CategoryGroup, 0, len(raw))
	for _, item := range raw {
		var flat string
		if err := json.Unmarshal(item, &flat); err == nil {
			if flat != "" {
				out = append(out, CategoryGroup{Category: flat})
			}
			continue
		}

		var structured CategoryGroup
		if err := json.Unmarshal(item, &structured); err != nil {
			return fmt.Errorf("category entry is neither a string nor an object: %w", err)
		}
		if structured.Category != "" {
			out = append(out, structured)
		}
	}

	*c = out
	return nil
}

// Names returns the de-duplicated top-level category names, preserving the
// order of first appearance. Used for the category_names index field.
func (c CategoryList) Names() []string {
	seen := make(map[string]struct{}, len(c))
	names := make([]string, 0, len(c))
	for _, g := range c {
		if _, ok := seen[g.Category]; ok {
			continue
		}
		seen[g.Category] = struct{}{}
		names = append(names, g.Category)
	}
	return names
}
