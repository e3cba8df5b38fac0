package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"petsitter/models"
)

func filterFixture() []models.Listing {
	return []models.Listing{
		{ID: 1, Kind: models.KindSitter, Location: "București", Price: 25, ServiceType: models.ServiceWalking},
		{ID: 2, Kind: models.KindSitter, Location: "Cluj-Napoca", Price: 30, ServiceType: models.ServiceBoarding},
		{ID: 3, Kind: models.KindSitter, Location: "Timișoara", Price: 150, ServiceType: models.ServiceGrooming},
		{ID: 4, Kind: models.KindSitter, Location: "Brașov", Price: 20, ServiceType: models.ServiceWalking},
	}
}

func ids(listings []models.Listing) []int64 {
	out := make([]int64, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestApplyFilterServiceType(t *testing.T) {
	got := ApplyFilter(filterFixture(), Criteria{ServiceType: "walking"})
	require.Equal(t, []int64{4, 1}, ids(got))
}

func TestApplyFilterServiceTypeAllMatchesEverything(t *testing.T) {
	got := ApplyFilter(filterFixture(), Criteria{ServiceType: ServiceTypeAll})
	require.Len(t, got, 4)
}

func TestApplyFilterLocationIsCaseInsensitiveSubstring(t *testing.T) {
	got := ApplyFilter(filterFixture(), Criteria{Location: "  cluj "})
	require.Equal(t, []int64{2}, ids(got))
}

func TestApplyFilterPriceBoundsAreInclusive(t *testing.T) {
	min, max := 20.0, 30.0
	got := ApplyFilter(filterFixture(), Criteria{MinPrice: &min, MaxPrice: &max})
	require.Equal(t, []int64{4, 2, 1}, ids(got))
}

func TestApplyFilterSortsFavoritesFirstThenNewest(t *testing.T) {
	listings := filterFixture()
	listings[0].IsFavorite = true // id 1
	listings[2].IsFavorite = true // id 3

	got := ApplyFilter(listings, Criteria{})
	require.Equal(t, []int64{3, 1, 4, 2}, ids(got))
}

func TestApplyFilterNoMatches(t *testing.T) {
	got := ApplyFilter(filterFixture(), Criteria{Location: "Paris"})
	require.Empty(t, got)
}
