package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/db_models"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venueNames(venues []Venue) []string {
	names := make([]string, 0, len(venues))
	for _, v := range venues {
		names = append(names, v.Name)
	}
	return names
}

func TestKnowledgeStore_Resolve(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"Seoul", "seoul", true},
		{"  SEOUL ", "seoul", true},
		{"首尔", "seoul", true},
		{"South   Korea", "seoul", true},
		{"東京", "tokyo", true},
		{"NYC", "new york", true},
		{"new  york", "new york", true},
		{"seo", "", false},
		{"Seoul Tower", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := store.Resolve(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestKnowledgeStore_UnknownDestination(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())

	result := store.Retrieve("Atlantis", []string{"food"}, []string{"food"})
	assert.False(t, result.Known)
	assert.NotNil(t, result.Attractions)
	assert.NotNil(t, result.Restaurants)
	assert.NotNil(t, result.Shopping)
	assert.True(t, result.IsEmpty())
	assert.Equal(t, "USD", result.Profile.Currency)
}

func TestKnowledgeStore_LookupByTags(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())

	all := store.Lookup("Seoul", nil)
	assert.Len(t, all.Attractions, 5)
	assert.Equal(t, "Gyeongbokgung Palace", all.Attractions[0].Name)

	food := store.Lookup("Seoul", []string{"food"})
	assert.Equal(t, []string{"Gwangjang Market"}, venueNames(food.Attractions))
	assert.Equal(t, []string{"Myeongdong Korean BBQ", "Hongdae Theme Cafe", "Tosokchon Samgyetang"}, venueNames(food.Restaurants))
	assert.Equal(t, []string{"Myeongdong Shopping Street"}, venueNames(food.Shopping))

	// substring of a stored tag
	pop := store.Lookup("Seoul", []string{"POP"})
	assert.Equal(t, []string{"Hongdae"}, venueNames(pop.Attractions))
	assert.Equal(t, []string{"Hongdae Theme Cafe"}, venueNames(pop.Restaurants))
	assert.Empty(t, pop.Shopping)
}

func TestKnowledgeStore_PreferenceFilter(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())

	result := store.Retrieve("Tokyo", nil, []string{"Ramen"})
	assert.Equal(t, []string{"Ichiran Ramen"}, venueNames(result.Restaurants))
	// no attraction or shop mentions ramen, so those filters are skipped
	assert.Len(t, result.Attractions, 4)
	assert.Len(t, result.Shopping, 3)
	assert.ElementsMatch(t, []string{KindAttraction, KindShopping}, result.PreferenceFilterSkipped)
}

func TestKnowledgeStore_PreferenceFilterNeverEmpties(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())

	for _, dest := range []string{"Seoul", "Tokyo", "Beijing", "Shanghai", "New York", "Paris"} {
		for _, tags := range [][]string{nil, {"food"}, {"history"}, {"shopping"}} {
			tagged := store.Lookup(dest, tags)
			filtered := store.Retrieve(dest, tags, []string{"nothing matches this"})
			for _, kind := range venueKinds {
				if len(tagged.ByKind(kind)) > 0 {
					assert.NotEmpty(t, filtered.ByKind(kind), "%s %v %s", dest, tags, kind)
				}
				assert.Equal(t, venueNames(tagged.ByKind(kind)), venueNames(filtered.ByKind(kind)))
			}
		}
	}
}

func TestTopRated(t *testing.T) {
	venues := []Venue{
		{Name: "a", Rating: 4.2},
		{Name: "b", Rating: 4.8},
		{Name: "c", Rating: 4.2},
		{Name: "d", Rating: 4.8},
	}

	sorted := TopRated(venues)
	assert.Equal(t, []string{"b", "d", "a", "c"}, venueNames(sorted))
	assert.Equal(t, "a", venues[0].Name, "input is not reordered")
}

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name      string
		interests []string
		want      []string
	}{
		{"english", []string{"Food", "history tours"}, []string{"food", "history"}},
		{"chinese", []string{"美食", "购物"}, []string{"shopping", "food"}},
		{"dedup", []string{"food", "street food"}, []string{"food"}},
		{"unrecognised", []string{"sleeping in"}, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.interests))
		})
	}
}

func TestKnowledgeStore_Profile(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())

	assert.Equal(t, "JPY", store.Profile("tokyo").Currency)
	assert.Equal(t, "Asia/Seoul", store.Profile("서울").Timezone)

	generic := store.Profile("Gotham")
	assert.Equal(t, "Gotham", generic.Name)
	assert.Equal(t, "USD", generic.Currency)
}

type fakeVenueRepository struct {
	rows []db_models.Venue
	err  error
}

func (f *fakeVenueRepository) ListAll(ctx context.Context) ([]db_models.Venue, error) {
	return f.rows, f.err
}

func (f *fakeVenueRepository) ListByDestination(ctx context.Context, destination string) ([]db_models.Venue, error) {
	var out []db_models.Venue
	for _, row := range f.rows {
		if row.Destination == destination {
			out = append(out, row)
		}
	}
	return out, f.err
}

func TestNewKnowledgeStoreFromRepository(t *testing.T) {
	repo := &fakeVenueRepository{rows: []db_models.Venue{
		{Destination: "Seoul", Kind: "restaurant", Name: "Jinokhwa Halmae", Cost: 12000, Rating: 4.3, Tags: pq.StringArray{"Food", "Chicken"}, Specialties: "Dakhanmari, noodles"},
		{Destination: "Lisbon", Kind: "attraction", Name: "Belem Tower", Cost: 8, Rating: 4.5, Tags: pq.StringArray{"history"}},
		{Destination: "seoul", Kind: "attraction", Name: "Changdeokgung", Cost: 3000, Rating: 4.6, Tags: pq.StringArray{"history", "palace"}},
	}}

	store, err := NewKnowledgeStoreFromRepository(context.Background(), repo, zerolog.Nop())
	require.NoError(t, err)

	seoul := store.Lookup("首尔", nil)
	require.True(t, seoul.Known)
	assert.Equal(t, []string{"Changdeokgung"}, venueNames(seoul.Attractions))
	require.Len(t, seoul.Restaurants, 1)
	assert.True(t, seoul.Restaurants[0].Tags.Has("chicken"))
	assert.Equal(t, []string{"Dakhanmari", "noodles"}, seoul.Restaurants[0].Specialties)
	assert.Equal(t, "KRW", seoul.Profile.Currency)

	lisbon := store.Lookup("LISBON", []string{"hist"})
	assert.True(t, lisbon.Known)
	assert.Equal(t, []string{"Belem Tower"}, venueNames(lisbon.Attractions))
	assert.Equal(t, "USD", lisbon.Profile.Currency)
}

func TestNewKnowledgeStoreFromRepository_Error(t *testing.T) {
	repo := &fakeVenueRepository{err: utils.ErrDatabaseError}

	_, err := NewKnowledgeStoreFromRepository(context.Background(), repo, zerolog.Nop())
	assert.True(t, errors.Is(err, utils.ErrDatabaseError))
}
