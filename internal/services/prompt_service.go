package services

import (
	"fmt"
	"strings"
)

const promptVenueLimit = 6

type PromptParams struct {
	Destination string
	StartDate   string
	EndDate     string
	Days        int
	Travelers   int
	Interests   []string
	Budget      BudgetBreakdown
	Knowledge   KnowledgeResult
}

// BuildPlanPrompt renders the generation prompt: trip parameters, per-day budgets,
// retrieved venues and the JSON contract the reply must follow.
func BuildPlanPrompt(params PromptParams) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for %s.\n\n", params.Days, params.Destination))

	prompt.WriteString("Trip details:\n")
	prompt.WriteString(fmt.Sprintf("- Dates: %s to %s\n", params.StartDate, params.EndDate))
	prompt.WriteString(fmt.Sprintf("- Travelers: %d\n", params.Travelers))
	prompt.WriteString(fmt.Sprintf("- Total budget: %d %s (%s style)\n", params.Budget.Total, params.Budget.Currency, params.Budget.Style))
	if len(params.Interests) > 0 {
		prompt.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(params.Interests, ", ")))
	}

	if len(params.Budget.DailyBudgets) > 0 {
		prompt.WriteString("\nDaily budgets:\n")
		for _, d := range params.Budget.DailyBudgets {
			prompt.WriteString(fmt.Sprintf("- Day %d: %d %s (%s)\n", d.Day, d.Budget, params.Budget.Currency, d.Focus))
		}
	}

	writeVenues(&prompt, "Attractions", params.Knowledge.Attractions)
	writeVenues(&prompt, "Restaurants", params.Knowledge.Restaurants)
	writeVenues(&prompt, "Shopping", params.Knowledge.Shopping)

	prompt.WriteString("\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString(fmt.Sprintf("1. Generate exactly %d days, one itinerary entry per date\n", params.Days))
	prompt.WriteString("2. Each day has between 1 and 5 activities in chronological order\n")
	prompt.WriteString("3. Costs are non-negative integers in the trip currency\n")
	prompt.WriteString("4. Prefer the places listed above\n")
	prompt.WriteString("5. Return ONLY valid JSON, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "summary": "One paragraph overview of the trip",
  "itinerary": [
    {
      "date": "YYYY-MM-DD",
      "dayTitle": "Day 1: Arrival",
      "dailyBudget": 100000,
      "activities": [
        {
          "time": "09:00-11:00",
          "title": "Activity name",
          "description": "What to do there",
          "location": "Place name",
          "cost": 10000,
          "category": "attraction",
          "priority": "high"
        }
      ],
      "tips": ["Practical tip"]
    }
  ],
  "recommendations": {
    "restaurants": ["Restaurant name"],
    "attractions": ["Attraction name"],
    "tips": ["General tip"]
  }
}`)

	return prompt.String()
}

func writeVenues(prompt *strings.Builder, heading string, venues []Venue) {
	if len(venues) == 0 {
		return
	}
	prompt.WriteString(fmt.Sprintf("\n%s:\n", heading))
	for i, v := range TopRated(venues) {
		if i == promptVenueLimit {
			break
		}
		line := fmt.Sprintf("- %s | Rating: %.1f | Cost: %d", v.Name, v.Rating, v.Cost)
		if v.Location != "" {
			line += fmt.Sprintf(" | Area: %s", v.Location)
		}
		if v.Description != "" {
			line += fmt.Sprintf(" | %s", v.Description)
		}
		prompt.WriteString(line + "\n")
	}
}
