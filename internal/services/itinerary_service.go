package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
)

const (
	maxActivitiesBeforeRest = 4
	maxRecommendations      = 4
)

const (
	CategoryTransport = "transport"
	CategoryDining    = "dining"
	CategoryShopping  = "shopping"
	CategoryRest      = "rest"
	CategoryFreeTime  = "free time"
)

type timeSlot struct {
	start, end string
	costRatio  float64
}

var explorationSlots = []timeSlot{
	{start: "09:00", end: "12:00", costRatio: 0.3},
	{start: "14:00", end: "17:00", costRatio: 0.4},
	{start: "19:00", end: "21:00", costRatio: 0.3},
}

var slotRotation = []string{KindAttraction, KindRestaurant, KindShopping}

type SynthesisParams struct {
	Knowledge   KnowledgeResult
	Budget      BudgetBreakdown
	Interests   []string
	Days        int
	Destination string
	StartDate   time.Time
}

type SynthesisResult struct {
	Itinerary       []response_models.DayPlan
	Summary         string
	Recommendations response_models.Recommendations
}

type ItineraryServiceInterface interface {
	Synthesize(params SynthesisParams) SynthesisResult
}

type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

// dayPlanner carries per-trip selection state.
type dayPlanner struct {
	params      SynthesisParams
	interests   []string
	forcedKind  string
	used        map[string]bool
	destination string
}

func (s *ItineraryService) Synthesize(params SynthesisParams) SynthesisResult {
	days := max(params.Days, 1)
	tags := ExtractTags(params.Interests)

	p := &dayPlanner{
		params:      params,
		interests:   normalizeAll(params.Interests),
		forcedKind:  forcedKind(tags),
		used:        make(map[string]bool),
		destination: displayDestination(params),
	}

	itinerary := make([]response_models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		itinerary = append(itinerary, p.dayPlan(i, days))
	}

	for i := range itinerary {
		itinerary[i].Activities = OptimizePace(itinerary[i].Activities)
	}

	return SynthesisResult{
		Itinerary:       itinerary,
		Summary:         ItinerarySummary(itinerary, p.destination, params.Budget.Currency),
		Recommendations: p.recommendations(),
	}
}

func (p *dayPlanner) dayPlan(dayIndex, days int) response_models.DayPlan {
	budget := p.params.Budget.DayBudget(dayIndex)

	var activities []response_models.Activity
	switch {
	case dayIndex == 0:
		activities = p.arrivalDay(budget)
	case dayIndex == days-1:
		activities = p.departureDay(budget)
	default:
		activities = p.explorationDay(dayIndex, budget)
	}

	date := ""
	if !p.params.StartDate.IsZero() {
		date = utils.FormatDate(utils.AddDays(p.params.StartDate, dayIndex))
	}

	return response_models.DayPlan{
		Date:        date,
		DayTitle:    dayTitle(dayIndex, days, p.destination),
		DailyBudget: budget,
		Activities:  activities,
		Tips:        dayTips(dayIndex, days),
		Focus:       DayFocus(dayIndex, days),
	}
}

func (p *dayPlanner) arrivalDay(budget int64) []response_models.Activity {
	restaurant := "Local restaurant"
	if top := TopRated(p.params.Knowledge.Restaurants); len(top) > 0 {
		restaurant = top[0].Name
		p.used[restaurant] = true
	}

	return []response_models.Activity{
		{
			Time:        "14:00-16:00",
			Title:       "Arrive in " + p.destination,
			Description: fmt.Sprintf("Arrive in %s, check in and get familiar with the neighbourhood", p.destination),
			Location:    "Airport / hotel",
			Cost:        0,
			Category:    CategoryTransport,
			Priority:    response_models.PriorityHigh,
		},
		{
			Time:        "18:00-20:00",
			Title:       "Local food experience",
			Description: fmt.Sprintf("Dinner at %s to taste the local cuisine", restaurant),
			Location:    restaurant,
			Cost:        roundInt(float64(budget) * 0.4),
			Category:    CategoryDining,
			Priority:    response_models.PriorityHigh,
		},
	}
}

func (p *dayPlanner) departureDay(budget int64) []response_models.Activity {
	shop := "Shopping district"
	if top := TopRated(p.params.Knowledge.Shopping); len(top) > 0 {
		shop = top[0].Name
		p.used[shop] = true
	}

	return []response_models.Activity{
		{
			Time:        "09:00-11:00",
			Title:       "Last-minute shopping",
			Description: "Pick up souvenirs and local specialties",
			Location:    shop,
			Cost:        roundInt(float64(budget) * 0.3),
			Category:    CategoryShopping,
			Priority:    response_models.PriorityMedium,
		},
		{
			Time:        "14:00-16:00",
			Title:       "Transfer to the airport",
			Description: "Head to the airport and check in for the flight home",
			Location:    "Airport",
			Cost:        roundInt(float64(budget) * 0.1),
			Category:    CategoryTransport,
			Priority:    response_models.PriorityHigh,
		},
	}
}

func (p *dayPlanner) explorationDay(dayIndex int, budget int64) []response_models.Activity {
	activities := make([]response_models.Activity, 0, len(explorationSlots))

	for _, ts := range explorationSlots {
		kind := p.slotKind(dayIndex)
		venue, overlap, ok := p.pickVenue(p.params.Knowledge.ByKind(kind))
		if !ok {
			continue
		}
		p.used[venue.Name] = true

		priority := response_models.PriorityMedium
		if overlap > 0 {
			priority = response_models.PriorityHigh
		}
		category := venue.Category
		if category == "" {
			category = kind
		}

		activities = append(activities, response_models.Activity{
			Time:        ts.start + "-" + ts.end,
			Title:       venue.Name,
			Description: venue.Description,
			Location:    p.locationOf(venue),
			Cost:        roundInt(float64(budget) * ts.costRatio),
			Category:    category,
			Priority:    priority,
		})
	}

	if len(activities) == 0 {
		activities = append(activities, response_models.Activity{
			Time:        "10:00-16:00",
			Title:       "Free exploration",
			Description: fmt.Sprintf("Wander around %s at your own pace", p.destination),
			Location:    p.destination,
			Cost:        0,
			Category:    CategoryFreeTime,
			Priority:    response_models.PriorityMedium,
		})
	}

	return activities
}

// slotKind is the venue kind for every slot of an exploration day. A food interest beats a
// shopping one; without either the kind rotates by day.
func (p *dayPlanner) slotKind(dayIndex int) string {
	if p.forcedKind != "" {
		return p.forcedKind
	}
	return slotRotation[dayIndex%len(slotRotation)]
}

func forcedKind(tags []string) string {
	switch {
	case containsString(tags, "food"):
		return KindRestaurant
	case containsString(tags, "shopping"):
		return KindShopping
	}
	return ""
}

// pickVenue scores candidates by rating plus interest overlap. Unused venues win over used
// ones; ties keep catalog order.
func (p *dayPlanner) pickVenue(candidates []Venue) (Venue, int, bool) {
	bestIdx, bestOverlap := -1, 0
	var bestScore float64
	bestUsed := true

	for i, v := range candidates {
		overlap := interestOverlap(v, p.interests)
		score := v.Rating + float64(overlap)
		used := p.used[v.Name]

		better := bestIdx == -1 ||
			(bestUsed && !used) ||
			(used == bestUsed && score > bestScore)
		if better {
			bestIdx, bestScore, bestOverlap, bestUsed = i, score, overlap, used
		}
	}

	if bestIdx == -1 {
		return Venue{}, 0, false
	}
	return candidates[bestIdx], bestOverlap, true
}

func (p *dayPlanner) locationOf(v Venue) string {
	if v.Location != "" {
		return v.Location
	}
	return p.destination
}

func (p *dayPlanner) recommendations() response_models.Recommendations {
	return response_models.Recommendations{
		Restaurants: topNames(p.params.Knowledge.Restaurants, maxRecommendations),
		Attractions: topNames(p.params.Knowledge.Attractions, maxRecommendations),
		Tips:        TravelTips(p.destination, p.params.Knowledge.Profile.Language),
	}
}

// OptimizePace caps the day at four activities and adds a rest block to busy days.
func OptimizePace(activities []response_models.Activity) []response_models.Activity {
	if len(activities) > maxActivitiesBeforeRest {
		activities = activities[:maxActivitiesBeforeRest]
	}
	out := append([]response_models.Activity(nil), activities...)

	if len(out) >= 3 {
		out = append(out, response_models.Activity{
			Time:        "17:00-18:30",
			Title:       "Rest break",
			Description: "Take a break and recharge before the evening",
			Location:    "Hotel or cafe",
			Cost:        0,
			Category:    CategoryRest,
			Priority:    response_models.PriorityLow,
		})
		sort.SliceStable(out, func(i, j int) bool {
			return startTime(out[i].Time) < startTime(out[j].Time)
		})
	}
	return out
}

func startTime(slot string) string {
	if i := strings.Index(slot, "-"); i >= 0 {
		return strings.TrimSpace(slot[:i])
	}
	return strings.TrimSpace(slot)
}

// ItinerarySummary is a deterministic one-line description of the plan.
func ItinerarySummary(itinerary []response_models.DayPlan, destination, currency string) string {
	var total int64
	for _, day := range itinerary {
		for _, a := range day.Activities {
			total = addCost(total, a.Cost)
		}
	}
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("A %d-day trip to %s with about %d %s of planned activity spending, mixing sightseeing with local food and some free time.",
		len(itinerary), destination, total, currency)
}

// addCost sums non-negative costs, saturating at math.MaxInt64.
func addCost(total, cost int64) int64 {
	if cost > math.MaxInt64-total {
		return math.MaxInt64
	}
	return total + cost
}

// TravelTips returns the general tips for a destination.
func TravelTips(destination, language string) []string {
	if language == "" {
		language = "the local language"
	}
	return []string{
		fmt.Sprintf("Book tickets for popular %s sights in advance", destination),
		fmt.Sprintf("Check how public transport and fares work in %s", destination),
		"Pack common medicines and a small emergency kit",
		fmt.Sprintf("Learn a few polite phrases in %s", language),
	}
}

func dayTitle(dayIndex, days int, destination string) string {
	switch {
	case dayIndex == 0:
		return "Day 1: Arrival and first impressions"
	case dayIndex == days-1:
		return fmt.Sprintf("Day %d: Farewell and departure", days)
	default:
		return fmt.Sprintf("Day %d: Exploring %s", dayIndex+1, destination)
	}
}

func dayTips(dayIndex, days int) []string {
	arrival := []string{"Look up local transport options before you land", "Carry some local currency or a travel card"}
	departure := []string{"Reconfirm your return flight", "Leave plenty of time to reach the airport"}

	switch {
	case days == 1:
		return append(arrival, departure...)
	case dayIndex == 0:
		return arrival
	case dayIndex == days-1:
		return departure
	default:
		return []string{"Plan some downtime between activities", "Keep an eye on the weather forecast"}
	}
}

func displayDestination(params SynthesisParams) string {
	if params.Knowledge.Known && params.Knowledge.Profile.Name != "" {
		return params.Knowledge.Profile.Name
	}
	if d := strings.TrimSpace(params.Destination); d != "" {
		return d
	}
	return "your destination"
}

func topNames(venues []Venue, limit int) []string {
	names := make([]string, 0, limit)
	for _, v := range TopRated(venues) {
		if len(names) == limit {
			break
		}
		names = append(names, v.Name)
	}
	return names
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
