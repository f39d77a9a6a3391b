package response_models

const (
	StatusGenerated = "generated"
	StatusRepaired  = "repaired"
	StatusFallback  = "fallback"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Activity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        int64  `json:"cost"`
	Category    string `json:"category"`
	Priority    string `json:"priority,omitempty"`
}

type DayPlan struct {
	Date        string     `json:"date"`
	DayTitle    string     `json:"dayTitle"`
	DailyBudget int64      `json:"dailyBudget"`
	Activities  []Activity `json:"activities"`
	Tips        []string   `json:"tips"`
	Focus       string     `json:"focus,omitempty"`
}

type Recommendations struct {
	Restaurants []string `json:"restaurants"`
	Attractions []string `json:"attractions"`
	Tips        []string `json:"tips"`
}

type DailyBudget struct {
	Day    int    `json:"day"`
	Budget int64  `json:"budget"`
	Focus  string `json:"focus"`
}

type BudgetSummary struct {
	Total          int64         `json:"total"`
	Daily          int64         `json:"daily"`
	Currency       string        `json:"currency"`
	Transportation int64         `json:"transportation"`
	Accommodation  int64         `json:"accommodation"`
	Dining         int64         `json:"dining"`
	Attractions    int64         `json:"attractions"`
	Shopping       int64         `json:"shopping"`
	DailyBudgets   []DailyBudget `json:"dailyBudgets,omitempty"`
}

type PlanResponse struct {
	Summary         string          `json:"summary"`
	Itinerary       []DayPlan       `json:"itinerary"`
	Recommendations Recommendations `json:"recommendations"`
	BudgetSummary   BudgetSummary   `json:"budgetSummary"`
	Status          string          `json:"status"`
	Notes           []string        `json:"notes,omitempty"`
}

type DestinationProfileResponse struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Currency    string   `json:"currency"`
	Language    string   `json:"language"`
	Timezone    string   `json:"timezone"`
	BestTime    string   `json:"bestTime"`
	Restaurants []string `json:"restaurants"`
	Attractions []string `json:"attractions"`
	Shopping    []string `json:"shopping"`
}
