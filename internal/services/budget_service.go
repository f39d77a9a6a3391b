package services

import (
	"math"
	"strings"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
)

const (
	StyleEconomy  = "economy"
	StyleStandard = "standard"
	StyleLuxury   = "luxury"
)

const (
	AdjustmentShopping = "shopping"
	AdjustmentFood     = "food"
)

type budgetTemplate struct {
	transportation float64
	accommodation  float64
	dining         float64
	attractions    float64
	shopping       float64
}

var budgetTemplates = map[string]budgetTemplate{
	StyleEconomy:  {transportation: 0.25, accommodation: 0.30, dining: 0.25, attractions: 0.15, shopping: 0.05},
	StyleStandard: {transportation: 0.20, accommodation: 0.35, dining: 0.25, attractions: 0.15, shopping: 0.05},
	StyleLuxury:   {transportation: 0.15, accommodation: 0.40, dining: 0.25, attractions: 0.15, shopping: 0.05},
}

var styleMultipliers = map[string]float64{
	StyleEconomy:  0.8,
	StyleStandard: 1.0,
	StyleLuxury:   1.5,
}

type costFactor struct {
	baseCost float64
	currency string
}

// per person per day, keyed by destination id
var cityCostFactors = map[string]costFactor{
	"seoul":    {baseCost: 80000, currency: "KRW"},
	"tokyo":    {baseCost: 10000, currency: "JPY"},
	"beijing":  {baseCost: 500, currency: "CNY"},
	"shanghai": {baseCost: 600, currency: "CNY"},
	"new york": {baseCost: 150, currency: "USD"},
	"paris":    {baseCost: 120, currency: "EUR"},
}

var genericCostFactor = costFactor{baseCost: 100, currency: "USD"}

type DailyBudget struct {
	Day    int
	Budget int64
	Focus  string
}

type BudgetBreakdown struct {
	Total           int64
	Daily           int64
	Transportation  int64
	Accommodation   int64
	Dining          int64
	Attractions     int64
	Shopping        int64
	DailyBudgets    []DailyBudget
	Currency        string
	Days            int
	Style           string
	Adjustments     []string
	Recommendations []string
}

// CategorySum adds the five spending categories.
func (b BudgetBreakdown) CategorySum() int64 {
	return b.Transportation + b.Accommodation + b.Dining + b.Attractions + b.Shopping
}

// DayBudget returns the budget for a zero-based day, falling back to the flat daily amount.
func (b BudgetBreakdown) DayBudget(dayIndex int) int64 {
	if dayIndex >= 0 && dayIndex < len(b.DailyBudgets) {
		return b.DailyBudgets[dayIndex].Budget
	}
	return b.Daily
}

func (b BudgetBreakdown) hasAdjustment(name string) bool {
	for _, a := range b.Adjustments {
		if a == name {
			return true
		}
	}
	return false
}

func (b BudgetBreakdown) ToSummary() response_models.BudgetSummary {
	daily := make([]response_models.DailyBudget, 0, len(b.DailyBudgets))
	for _, d := range b.DailyBudgets {
		daily = append(daily, response_models.DailyBudget{Day: d.Day, Budget: d.Budget, Focus: d.Focus})
	}
	return response_models.BudgetSummary{
		Total:          b.Total,
		Daily:          b.Daily,
		Currency:       b.Currency,
		Transportation: b.Transportation,
		Accommodation:  b.Accommodation,
		Dining:         b.Dining,
		Attractions:    b.Attractions,
		Shopping:       b.Shopping,
		DailyBudgets:   daily,
	}
}

type EstimateParams struct {
	Days        int
	Style       string
	Travelers   int
	Destination string
	// nil means no budget was given; zero is a real budget
	TotalBudget *int64
}

type BudgetValidation struct {
	IsValid bool
	Issues  []string
}

type BudgetPreferences struct {
	Shopping bool
	Food     bool
}

type BudgetServiceInterface interface {
	Estimate(params EstimateParams) BudgetBreakdown
	Validate(b BudgetBreakdown, days, travelers int) BudgetValidation
	Optimize(b BudgetBreakdown, prefs BudgetPreferences) BudgetBreakdown
	DetermineStyle(budget *int64, explicit string) string
}

type BudgetService struct {
	knowledge KnowledgeServiceInterface
}

// NewBudgetService takes the knowledge store to resolve destination aliases; it may be nil.
func NewBudgetService(knowledge KnowledgeServiceInterface) BudgetServiceInterface {
	return &BudgetService{knowledge: knowledge}
}

func (s *BudgetService) costFactorFor(destination string) costFactor {
	id := normalizeKey(destination)
	if s.knowledge != nil {
		if resolved, ok := s.knowledge.Resolve(destination); ok {
			id = resolved
		}
	}
	if f, ok := cityCostFactors[id]; ok {
		return f
	}
	return genericCostFactor
}

func (s *BudgetService) Estimate(params EstimateParams) BudgetBreakdown {
	days := max(params.Days, 1)
	travelers := max(params.Travelers, 1)
	style := NormalizeStyle(params.Style)
	factor := s.costFactorFor(params.Destination)

	var total int64
	if params.TotalBudget != nil {
		total = *params.TotalBudget
	} else {
		total = roundInt(factor.baseCost * styleMultipliers[style] * float64(days) * float64(travelers))
	}

	tpl := budgetTemplates[style]
	b := BudgetBreakdown{
		Total:          total,
		Transportation: roundInt(float64(total) * tpl.transportation),
		Accommodation:  roundInt(float64(total) * tpl.accommodation),
		Dining:         roundInt(float64(total) * tpl.dining),
		Attractions:    roundInt(float64(total) * tpl.attractions),
		Shopping:       roundInt(float64(total) * tpl.shopping),
		Currency:       factor.currency,
		Days:           days,
		Style:          style,
		Adjustments:    []string{},
	}
	b.Daily, b.DailyBudgets = dailyBudgets(total, days)
	b.Recommendations = budgetRecommendations(b)

	return b
}

func (s *BudgetService) Validate(b BudgetBreakdown, days, travelers int) BudgetValidation {
	issues := []string{}

	if b.Total < int64(days)*100 {
		issues = append(issues, "Budget may be too low for the trip length, consider increasing it")
	}

	if b.Total > 0 {
		total := float64(b.Total)
		if float64(b.Transportation)/total > 0.4 {
			issues = append(issues, "Transportation share is too high, consider cheaper ways to get around")
		}
		if float64(b.Accommodation)/total > 0.5 {
			issues = append(issues, "Accommodation share is too high, consider more affordable lodging")
		}
	}

	return BudgetValidation{IsValid: len(issues) == 0, Issues: issues}
}

// Optimize shifts money toward the traveler's preferences and re-totals the categories.
// Adjustments already recorded on b are skipped, so optimizing twice changes nothing.
func (s *BudgetService) Optimize(b BudgetBreakdown, prefs BudgetPreferences) BudgetBreakdown {
	out := b
	out.Adjustments = append([]string{}, b.Adjustments...)

	if prefs.Shopping && !b.hasAdjustment(AdjustmentShopping) {
		out.Shopping = roundInt(float64(out.Shopping) * 1.5)
		out.Attractions = roundInt(float64(out.Attractions) * 0.8)
		out.Adjustments = append(out.Adjustments, AdjustmentShopping)
	}
	if prefs.Food && !b.hasAdjustment(AdjustmentFood) {
		out.Dining = roundInt(float64(out.Dining) * 1.3)
		out.Shopping = roundInt(float64(out.Shopping) * 0.7)
		out.Adjustments = append(out.Adjustments, AdjustmentFood)
	}

	out.Total = out.CategorySum()
	out.Daily, out.DailyBudgets = dailyBudgets(out.Total, max(out.Days, 1))
	out.Recommendations = budgetRecommendations(out)
	return out
}

// DetermineStyle lets an explicit style win, otherwise derives one from the budget size.
func (s *BudgetService) DetermineStyle(budget *int64, explicit string) string {
	if style := strings.ToLower(strings.TrimSpace(explicit)); style != "" {
		return NormalizeStyle(style)
	}
	if budget == nil {
		return StyleStandard
	}
	switch {
	case *budget < 5000:
		return StyleEconomy
	case *budget > 20000:
		return StyleLuxury
	default:
		return StyleStandard
	}
}

// NormalizeStyle maps style names, including the Chinese labels, onto the three known styles.
func NormalizeStyle(style string) string {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleEconomy, "budget", "经济型", "经济":
		return StyleEconomy
	case StyleLuxury, "豪华":
		return StyleLuxury
	default:
		return StyleStandard
	}
}

func dailyBudgets(total int64, days int) (int64, []DailyBudget) {
	base := roundInt(float64(total) / float64(days))
	out := make([]DailyBudget, 0, days)
	for i := 0; i < days; i++ {
		amount := base
		switch {
		case i == 0:
			amount = roundInt(float64(base) * 1.2)
		case i == days-1:
			amount = roundInt(float64(base) * 1.1)
		}
		out = append(out, DailyBudget{Day: i + 1, Budget: amount, Focus: DayFocus(i, days)})
	}
	return base, out
}

// DayFocus names the theme of a zero-based day.
func DayFocus(dayIndex, days int) string {
	switch {
	case dayIndex == 0:
		return "Arrival and settling in"
	case dayIndex == days-1:
		return "Farewell and departure"
	case dayIndex == 1:
		return "Cultural exploration"
	case dayIndex == 2:
		return "Deep dive"
	default:
		return "Free exploration"
	}
}

func budgetRecommendations(b BudgetBreakdown) []string {
	recs := make([]string, 0, 3)

	if b.Transportation < 1000 {
		recs = append(recs, "Use public transport and buy a day or week pass")
	} else {
		recs = append(recs, "Renting a car or using taxis is within budget")
	}

	switch {
	case b.Accommodation < 2000:
		recs = append(recs, "Hostels or budget hotels fit this budget")
	case b.Accommodation < 5000:
		recs = append(recs, "Mid-range hotels or guesthouses fit this budget")
	default:
		recs = append(recs, "Luxury hotels or resorts fit this budget")
	}

	if b.Dining < 1000 {
		recs = append(recs, "Try local street food and snacks")
	} else {
		recs = append(recs, "Book a few signature local restaurants")
	}

	return recs
}

func roundInt(v float64) int64 {
	r := math.Round(v)
	switch {
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}
