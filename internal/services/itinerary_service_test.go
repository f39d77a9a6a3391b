package services

import (
	"math"
	"testing"
	"time"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tripStart = time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

func activityTitles(activities []response_models.Activity) []string {
	titles := make([]string, 0, len(activities))
	for _, a := range activities {
		titles = append(titles, a.Title)
	}
	return titles
}

func TestItineraryService_SeoulFoodTrip(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())
	budgetSvc := NewBudgetService(store)
	knowledge := store.Retrieve("Seoul", []string{"food"}, []string{"food"})
	budget := budgetSvc.Estimate(EstimateParams{Days: 3, Style: StyleLuxury, Travelers: 2, Destination: "seoul", TotalBudget: int64Ptr(300000)})

	result := NewItineraryService().Synthesize(SynthesisParams{
		Knowledge:   knowledge,
		Budget:      budget,
		Interests:   []string{"food"},
		Days:        3,
		Destination: "Seoul",
		StartDate:   tripStart,
	})

	require.Len(t, result.Itinerary, 3)
	assert.Equal(t, "2025-10-21", result.Itinerary[0].Date)
	assert.Equal(t, "2025-10-23", result.Itinerary[2].Date)

	arrival := result.Itinerary[0].Activities
	require.Len(t, arrival, 2)
	assert.Equal(t, CategoryTransport, arrival[0].Category)
	assert.Equal(t, int64(0), arrival[0].Cost)
	assert.Equal(t, CategoryDining, arrival[1].Category)
	assert.Equal(t, int64(48000), arrival[1].Cost)
	assert.Equal(t, "Myeongdong Korean BBQ", arrival[1].Location)

	explore := result.Itinerary[1].Activities
	assert.Equal(t, []string{"Tosokchon Samgyetang", "Hongdae Theme Cafe", "Rest break", "Myeongdong Korean BBQ"}, activityTitles(explore))
	assert.Equal(t, []int64{30000, 40000, 0, 30000}, []int64{explore[0].Cost, explore[1].Cost, explore[2].Cost, explore[3].Cost})
	assert.Equal(t, response_models.PriorityHigh, explore[0].Priority)
	assert.Equal(t, response_models.PriorityLow, explore[2].Priority)

	departure := result.Itinerary[2].Activities
	require.Len(t, departure, 2)
	assert.Equal(t, CategoryShopping, departure[0].Category)
	assert.Equal(t, int64(33000), departure[0].Cost)
	assert.Equal(t, CategoryTransport, departure[1].Category)
	assert.Equal(t, int64(11000), departure[1].Cost)

	assert.Contains(t, result.Summary, "3-day trip to Seoul")
	assert.Contains(t, result.Summary, "KRW")
	assert.Equal(t, []string{"Myeongdong Korean BBQ", "Tosokchon Samgyetang", "Hongdae Theme Cafe"}, result.Recommendations.Restaurants)
	assert.Len(t, result.Recommendations.Tips, 4)
}

func TestItineraryService_ExplorationKindRotatesByDay(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())
	knowledge := store.Retrieve("Seoul", nil, nil)
	budget := NewBudgetService(store).Estimate(EstimateParams{Days: 5, Travelers: 1, Destination: "seoul"})

	result := NewItineraryService().Synthesize(SynthesisParams{Knowledge: knowledge, Budget: budget, Days: 5, Destination: "Seoul", StartDate: tripStart})
	require.Len(t, result.Itinerary, 5)

	kindOf := map[string]string{}
	for _, kind := range []string{KindAttraction, KindRestaurant, KindShopping} {
		for _, v := range knowledge.ByKind(kind) {
			kindOf[v.Name] = kind
		}
	}

	want := map[int]string{1: KindRestaurant, 2: KindShopping, 3: KindAttraction}
	for dayIndex, kind := range want {
		var kinds []string
		for _, a := range result.Itinerary[dayIndex].Activities {
			if a.Category != CategoryRest {
				kinds = append(kinds, kindOf[a.Title])
			}
		}
		assert.Equal(t, []string{kind, kind, kind}, kinds, "day %d", dayIndex)
	}

	assert.Equal(t, []string{"Tosokchon Samgyetang", "Hongdae Theme Cafe", "Rest break", "Myeongdong Korean BBQ"},
		activityTitles(result.Itinerary[1].Activities))
	assert.Equal(t, []string{"Myeongdong Shopping Street", "Dongdaemun Design Plaza", "Rest break", "Insadong"},
		activityTitles(result.Itinerary[2].Activities))
}

func TestItineraryService_ShoppingInterestFillsExplorationDay(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())
	knowledge := store.Retrieve("Seoul", []string{"shopping"}, []string{"shopping"})
	budget := NewBudgetService(store).Estimate(EstimateParams{Days: 3, Travelers: 1, Destination: "seoul"})

	result := NewItineraryService().Synthesize(SynthesisParams{
		Knowledge:   knowledge,
		Budget:      budget,
		Interests:   []string{"shopping"},
		Days:        3,
		Destination: "Seoul",
		StartDate:   tripStart,
	})

	assert.Equal(t, []string{"Myeongdong Shopping Street", "Dongdaemun Design Plaza", "Rest break", "Insadong"},
		activityTitles(result.Itinerary[1].Activities))
}

func TestItinerarySummary_SaturatesTotal(t *testing.T) {
	itinerary := []response_models.DayPlan{{Activities: []response_models.Activity{
		{Cost: math.MaxInt64},
		{Cost: 10},
	}}}

	summary := ItinerarySummary(itinerary, "Seoul", "KRW")
	assert.Contains(t, summary, "9223372036854775807 KRW")
}

func TestItineraryService_StructuralProperties(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())
	budgetSvc := NewBudgetService(store)
	svc := NewItineraryService()

	destinations := []KnowledgeResult{
		store.Retrieve("Tokyo", nil, nil),
		store.Retrieve("Paris", []string{"art"}, []string{"museum"}),
		store.Retrieve("Atlantis", nil, nil),
		PlaceholderKnowledge("Atlantis"),
	}
	interests := [][]string{nil, {"food"}, {"shopping"}, {"food", "shopping"}}

	for _, knowledge := range destinations {
		for _, ints := range interests {
			for days := 1; days <= 10; days++ {
				budget := budgetSvc.Estimate(EstimateParams{Days: days, Travelers: 2, Destination: knowledge.Destination})
				result := svc.Synthesize(SynthesisParams{Knowledge: knowledge, Budget: budget, Interests: ints, Days: days, Destination: "Somewhere", StartDate: tripStart})

				require.Len(t, result.Itinerary, days)
				for _, day := range result.Itinerary {
					assert.GreaterOrEqual(t, len(day.Activities), 1)
					assert.LessOrEqual(t, len(day.Activities), 5)
					for i, a := range day.Activities {
						assert.GreaterOrEqual(t, a.Cost, int64(0))
						if i > 0 {
							assert.LessOrEqual(t, startTime(day.Activities[i-1].Time), startTime(a.Time))
						}
					}
				}
			}
		}
	}
}

func TestItineraryService_EmptyKnowledgeExplorationDay(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())
	budget := NewBudgetService(store).Estimate(EstimateParams{Days: 3, Travelers: 1, Destination: "Atlantis"})

	result := NewItineraryService().Synthesize(SynthesisParams{
		Knowledge:   store.Retrieve("Atlantis", nil, nil),
		Budget:      budget,
		Days:        3,
		Destination: "Atlantis",
		StartDate:   tripStart,
	})

	middle := result.Itinerary[1].Activities
	require.Len(t, middle, 1)
	assert.Equal(t, "Free exploration", middle[0].Title)
	assert.Equal(t, int64(0), middle[0].Cost)
	assert.Equal(t, "Local restaurant", result.Itinerary[0].Activities[1].Location)
	assert.Equal(t, "Shopping district", result.Itinerary[2].Activities[0].Location)
}

func TestItineraryService_SingleDay(t *testing.T) {
	budget := NewBudgetService(nil).Estimate(EstimateParams{Days: 1, Travelers: 1, Destination: "Atlantis"})

	result := NewItineraryService().Synthesize(SynthesisParams{
		Knowledge:   PlaceholderKnowledge("Atlantis"),
		Budget:      budget,
		Days:        1,
		Destination: "Atlantis",
		StartDate:   tripStart,
	})

	require.Len(t, result.Itinerary, 1)
	day := result.Itinerary[0]
	assert.Equal(t, "Day 1: Arrival and first impressions", day.DayTitle)
	assert.Len(t, day.Activities, 2)
	assert.Len(t, day.Tips, 4)
	assert.Equal(t, int64(120), day.DailyBudget)
}

func TestItineraryService_PrefersUnusedVenues(t *testing.T) {
	store := NewKnowledgeStore(BuiltinCatalog())
	knowledge := store.Retrieve("Beijing", nil, nil)
	budget := NewBudgetService(store).Estimate(EstimateParams{Days: 5, Travelers: 1, Destination: "beijing"})

	result := NewItineraryService().Synthesize(SynthesisParams{Knowledge: knowledge, Budget: budget, Days: 5, Destination: "Beijing", StartDate: tripStart})

	seen := map[string]int{}
	for _, day := range result.Itinerary[1:4] {
		for _, a := range day.Activities {
			if a.Category != CategoryRest {
				seen[a.Title]++
			}
		}
	}
	for title, count := range seen {
		assert.Equal(t, 1, count, title)
	}
}

func TestOptimizePace(t *testing.T) {
	activities := []response_models.Activity{
		{Time: "09:00-10:00", Title: "a"},
		{Time: "10:00-11:00", Title: "b"},
		{Time: "19:00-20:00", Title: "c"},
		{Time: "20:00-21:00", Title: "d"},
		{Time: "21:00-22:00", Title: "e"},
	}

	paced := OptimizePace(activities)
	assert.Equal(t, []string{"a", "b", "Rest break", "c", "d"}, activityTitles(paced))

	short := OptimizePace(activities[:2])
	assert.Equal(t, []string{"a", "b"}, activityTitles(short))
}
