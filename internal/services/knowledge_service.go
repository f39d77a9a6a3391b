package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/db_models"
	"github.com/bxttttt/AI-TravelPlanner/internal/repositories"
	"github.com/rs/zerolog"
)

const (
	KindAttraction = "attraction"
	KindRestaurant = "restaurant"
	KindShopping   = "shopping"
)

var venueKinds = []string{KindAttraction, KindRestaurant, KindShopping}

// TagSet holds normalised tags.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		if tag = normalizeKey(tag); tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

type Venue struct {
	Name        string
	Kind        string
	Category    string
	Cost        int64
	Duration    string
	Rating      float64
	Description string
	Tags        TagSet
	Location    string
	Specialties []string
}

type DestinationProfile struct {
	ID       string
	Name     string
	Country  string
	Currency string
	Language string
	Timezone string
	BestTime string
}

// KnowledgeResult is the retrieval output for one destination. Known is false for
// destinations missing from the catalog, in which case every list is empty.
type KnowledgeResult struct {
	Destination             string
	Known                   bool
	Profile                 DestinationProfile
	Attractions             []Venue
	Restaurants             []Venue
	Shopping                []Venue
	PreferenceFilterSkipped []string
}

func (r KnowledgeResult) ByKind(kind string) []Venue {
	switch kind {
	case KindAttraction:
		return r.Attractions
	case KindRestaurant:
		return r.Restaurants
	case KindShopping:
		return r.Shopping
	}
	return nil
}

func (r KnowledgeResult) IsEmpty() bool {
	return len(r.Attractions) == 0 && len(r.Restaurants) == 0 && len(r.Shopping) == 0
}

type KnowledgeServiceInterface interface {
	Lookup(destination string, tags []string) KnowledgeResult
	Retrieve(destination string, tags []string, interests []string) KnowledgeResult
	Profile(destination string) DestinationProfile
	Resolve(destination string) (string, bool)
	ExtractTags(interests []string) []string
}

type venueSpan struct {
	start, end int
}

type destinationEntry struct {
	profile DestinationProfile
	spans   map[string]venueSpan
}

// KnowledgeStore is read-only after construction. Venues live in one slice and every
// destination owns a contiguous range of it per kind.
type KnowledgeStore struct {
	venues       []Venue
	destinations map[string]*destinationEntry
	aliases      map[string]string
}

// DestinationSeed is the build input for one destination.
type DestinationSeed struct {
	Profile DestinationProfile
	Aliases []string
	Venues  []Venue
}

func NewKnowledgeStore(seeds []DestinationSeed) *KnowledgeStore {
	store := &KnowledgeStore{
		destinations: make(map[string]*destinationEntry, len(seeds)),
		aliases:      make(map[string]string),
	}

	for _, seed := range seeds {
		id := normalizeKey(seed.Profile.ID)
		if id == "" {
			id = normalizeKey(seed.Profile.Name)
		}
		if id == "" {
			continue
		}
		if _, exists := store.destinations[id]; exists {
			continue
		}

		profile := seed.Profile
		profile.ID = id
		entry := &destinationEntry{profile: profile, spans: make(map[string]venueSpan, len(venueKinds))}

		for _, kind := range venueKinds {
			start := len(store.venues)
			for _, v := range seed.Venues {
				if v.Kind != kind {
					continue
				}
				if v.Tags == nil {
					v.Tags = TagSet{}
				}
				store.venues = append(store.venues, v)
			}
			entry.spans[kind] = venueSpan{start: start, end: len(store.venues)}
		}
		store.destinations[id] = entry

		store.aliases[id] = id
		store.aliases[normalizeKey(profile.Name)] = id
		for _, alias := range seed.Aliases {
			if key := normalizeKey(alias); key != "" {
				if _, taken := store.aliases[key]; !taken {
					store.aliases[key] = id
				}
			}
		}
	}

	return store
}

// NewKnowledgeStoreFromRepository builds the store from catalog rows. Destinations that also
// appear in the built-in seed keep its profile and aliases.
func NewKnowledgeStoreFromRepository(ctx context.Context, repo repositories.VenueRepository, log zerolog.Logger) (*KnowledgeStore, error) {
	rows, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load venue catalog: %w", err)
	}

	builtin := make(map[string]DestinationSeed)
	for _, seed := range BuiltinCatalog() {
		builtin[seed.Profile.ID] = seed
	}

	var order []string
	grouped := make(map[string][]Venue)
	for _, row := range rows {
		id := normalizeKey(row.Destination)
		if id == "" {
			continue
		}
		if _, seen := grouped[id]; !seen {
			order = append(order, id)
		}
		grouped[id] = append(grouped[id], venueFromRow(row))
	}

	seeds := make([]DestinationSeed, 0, len(order))
	for _, id := range order {
		seed, ok := builtin[id]
		if !ok {
			seed = DestinationSeed{Profile: genericProfile(id)}
			seed.Profile.ID = id
		}
		seed.Venues = grouped[id]
		seeds = append(seeds, seed)
	}

	log.Info().
		Int("destinations", len(seeds)).
		Int("venues", len(rows)).
		Msg("Venue catalog loaded from postgres")

	return NewKnowledgeStore(seeds), nil
}

func venueFromRow(row db_models.Venue) Venue {
	var specialties []string
	for _, s := range strings.Split(row.Specialties, ",") {
		if s = strings.TrimSpace(s); s != "" {
			specialties = append(specialties, s)
		}
	}
	return Venue{
		Name:        row.Name,
		Kind:        strings.ToLower(strings.TrimSpace(row.Kind)),
		Category:    row.Category,
		Cost:        row.Cost,
		Duration:    row.Duration,
		Rating:      row.Rating,
		Description: row.Description,
		Tags:        NewTagSet(row.Tags...),
		Location:    row.Location,
		Specialties: specialties,
	}
}

// Resolve maps a free-text destination to its catalog id.
func (s *KnowledgeStore) Resolve(destination string) (string, bool) {
	id, ok := s.aliases[normalizeKey(destination)]
	return id, ok
}

func (s *KnowledgeStore) Lookup(destination string, tags []string) KnowledgeResult {
	return s.Retrieve(destination, tags, nil)
}

func (s *KnowledgeStore) Retrieve(destination string, tags []string, interests []string) KnowledgeResult {
	result := KnowledgeResult{
		Destination: normalizeKey(destination),
		Attractions: []Venue{},
		Restaurants: []Venue{},
		Shopping:    []Venue{},
	}

	id, ok := s.Resolve(destination)
	if !ok {
		result.Profile = genericProfile(destination)
		return result
	}
	entry := s.destinations[id]
	result.Destination = id
	result.Known = true
	result.Profile = entry.profile

	normTags := normalizeAll(tags)
	normInterests := normalizeAll(interests)

	for _, kind := range venueKinds {
		span := entry.spans[kind]
		filtered := filterByTags(s.venues[span.start:span.end], normTags)

		if len(normInterests) > 0 && len(filtered) > 0 {
			preferred := filterByInterests(filtered, normInterests)
			if len(preferred) == 0 {
				result.PreferenceFilterSkipped = append(result.PreferenceFilterSkipped, kind)
			} else {
				filtered = preferred
			}
		}

		switch kind {
		case KindAttraction:
			result.Attractions = filtered
		case KindRestaurant:
			result.Restaurants = filtered
		case KindShopping:
			result.Shopping = filtered
		}
	}

	return result
}

func (s *KnowledgeStore) Profile(destination string) DestinationProfile {
	if id, ok := s.Resolve(destination); ok {
		return s.destinations[id].profile
	}
	return genericProfile(destination)
}

func (s *KnowledgeStore) ExtractTags(interests []string) []string {
	return ExtractTags(interests)
}

// filterByTags keeps venues carrying any requested tag, either exactly or as a substring.
func filterByTags(venues []Venue, tags []string) []Venue {
	out := make([]Venue, 0, len(venues))
	if len(tags) == 0 {
		return append(out, venues...)
	}
	for _, v := range venues {
		if venueHasAnyTag(v, tags) {
			out = append(out, v)
		}
	}
	return out
}

func venueHasAnyTag(v Venue, tags []string) bool {
	for _, tag := range tags {
		if v.Tags.Has(tag) {
			return true
		}
		for vt := range v.Tags {
			if strings.Contains(vt, tag) {
				return true
			}
		}
	}
	return false
}

func filterByInterests(venues []Venue, interests []string) []Venue {
	out := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if interestOverlap(v, interests) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// interestOverlap counts interests mentioned by the venue name, description or tags.
func interestOverlap(v Venue, interests []string) int {
	name := strings.ToLower(v.Name)
	desc := strings.ToLower(v.Description)
	count := 0
	for _, interest := range interests {
		if interest == "" {
			continue
		}
		if strings.Contains(name, interest) || strings.Contains(desc, interest) || venueHasAnyTag(v, []string{interest}) {
			count++
		}
	}
	return count
}

// TopRated returns a copy sorted by rating, highest first; equal ratings keep catalog order.
func TopRated(venues []Venue) []Venue {
	out := append([]Venue(nil), venues...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

var interestTagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"culture", []string{"culture", "cultural", "tradition", "temple", "文化", "传统", "문화", "文化体験"}},
	{"shopping", []string{"shopping", "shop", "market", "mall", "购物", "买", "쇼핑", "買い物"}},
	{"food", []string{"food", "eat", "cuisine", "restaurant", "dining", "美食", "吃", "餐", "음식", "맛집", "グルメ"}},
	{"nature", []string{"nature", "park", "outdoor", "hiking", "garden", "自然", "公园", "자연", "公園"}},
	{"history", []string{"history", "historic", "palace", "heritage", "历史", "古迹", "역사", "歴史"}},
	{"art", []string{"art", "museum", "gallery", "design", "艺术", "博物馆", "미술", "芸術", "美術"}},
}

// ExtractTags maps interest text to catalog tags. Nothing recognised means no tag filter.
func ExtractTags(interests []string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, entry := range interestTagKeywords {
		for _, interest := range interests {
			lower := strings.ToLower(interest)
			matched := false
			for _, kw := range entry.keywords {
				if strings.Contains(lower, kw) {
					matched = true
					break
				}
			}
			if matched && !seen[entry.tag] {
				seen[entry.tag] = true
				tags = append(tags, entry.tag)
			}
		}
	}
	return tags
}

func genericProfile(destination string) DestinationProfile {
	name := strings.TrimSpace(destination)
	if name == "" {
		name = "Unknown destination"
	}
	return DestinationProfile{
		ID:       normalizeKey(destination),
		Name:     name,
		Country:  "Unknown",
		Currency: "USD",
		Language: "English",
		Timezone: "UTC",
		BestTime: "All year",
	}
}

// normalizeKey trims, lower-cases and collapses internal whitespace.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func normalizeAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if key := normalizeKey(item); key != "" {
			out = append(out, key)
		}
	}
	return out
}

// PlaceholderKnowledge stands in for destinations missing from the catalog so that
// synthesis still has one generic venue of every kind.
func PlaceholderKnowledge(destination string) KnowledgeResult {
	profile := genericProfile(destination)
	return KnowledgeResult{
		Destination: profile.ID,
		Profile:     profile,
		Attractions: []Venue{{
			Name:        profile.Name + " city highlights",
			Kind:        KindAttraction,
			Category:    "Sightseeing",
			Description: "Walk the best-known sights of the city centre",
			Tags:        NewTagSet("culture"),
			Location:    "City centre",
			Rating:      3,
		}},
		Restaurants: []Venue{{
			Name:        "Local restaurant",
			Kind:        KindRestaurant,
			Category:    "Local cuisine",
			Description: "Try a well-reviewed local restaurant",
			Tags:        NewTagSet("food"),
			Location:    "City centre",
			Rating:      3,
		}},
		Shopping: []Venue{{
			Name:        "Shopping district",
			Kind:        KindShopping,
			Category:    "Shopping",
			Description: "Browse the main shopping street for souvenirs",
			Tags:        NewTagSet("shopping"),
			Location:    "City centre",
			Rating:      3,
		}},
	}
}
