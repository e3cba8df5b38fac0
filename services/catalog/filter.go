package catalog

import (
	"sort"
	"strings"

	"petsitter/models"
)

// ServiceTypeAll is the sentinel meaning "no service type filter".
const ServiceTypeAll = "all"

// Criteria are the filter parameters. Zero values mean "no filter" for
// that dimension; price bounds are inclusive and optional per bound.
type Criteria struct {
	ServiceType string
	Location    string
	MinPrice    *float64
	MaxPrice    *float64
}

// ApplyFilter returns the subset of listings matching the criteria, sorted
// with favorites first and newest (highest id) first within each group.
// It never mutates its input.
func ApplyFilter(listings []models.Listing, c Criteria) []models.Listing {
	matched := make([]models.Listing, 0, len(listings))
	location := strings.ToLower(strings.TrimSpace(c.Location))

	for _, l := range listings {
		if c.ServiceType != "" && c.ServiceType != ServiceTypeAll &&
			string(l.ServiceType) != c.ServiceType {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(l.Location), location) {
			continue
		}
		if c.MinPrice != nil && l.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && l.Price > *c.MaxPrice {
			continue
		}
		matched = append(matched, l)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].IsFavorite != matched[j].IsFavorite {
			return matched[i].IsFavorite
		}
		return matched[i].ID > matched[j].ID
	})
	return matched
}
