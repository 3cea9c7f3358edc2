// Package vocab maps raw model labels to a relevance judgment against the
// per-category keyword vocabularies.
package vocab

import "strings"

// Category selects which vocabulary a submission is judged against.
type Category string

const (
	CategoryFarming   Category = "farming"
	CategoryCommunity Category = "community"
)

// ParseCategory normalizes a raw category string. Unknown values resolve to
// the community superset, the most permissive vocabulary.
func ParseCategory(raw string) Category {
	if Category(strings.ToLower(strings.TrimSpace(raw))) == CategoryFarming {
		return CategoryFarming
	}
	return CategoryCommunity
}

var farmingKeywords = []string{
	"plant", "crop", "field", "farm", "agriculture", "soil", "garden",
	"vegetable", "fruit", "tree", "harvest", "greenhouse", "irrigation",
	"tractor", "tool", "hoe", "shovel", "seed", "grain", "corn", "wheat",
	"rice", "potato", "tomato", "carrot", "cabbage", "lettuce",
}

var communityKeywords = []string{
	"person", "people", "group", "community", "work", "activity",
	"construction", "building", "road", "bridge", "well", "water",
	"school", "clinic", "meeting", "gathering",
}

// vocabularies is the data-driven category to keyword-set mapping. The
// community vocabulary is the union of farming and community-work keywords.
var vocabularies = map[Category][]string{
	CategoryFarming:   farmingKeywords,
	CategoryCommunity: append(append([]string{}, farmingKeywords...), communityKeywords...),
}

// Keywords returns the active vocabulary for a category.
func Keywords(cat Category) []string {
	if kws, ok := vocabularies[cat]; ok {
		return kws
	}
	return vocabularies[CategoryCommunity]
}

// Match returns the labels that contain any vocabulary keyword as a
// case-insensitive substring ("tomato plant" matches "plant"). Input
// multiplicity and order are preserved; an empty input yields an empty
// result.
func Match(labels []string, cat Category) []string {
	keywords := Keywords(cat)
	var matched []string
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, label)
				break
			}
		}
	}
	return matched
}
