package view

import (
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Meal is the flattened view of one meal plan entry: the meal type plus
// the item names, with macro totals carried through when present.
type Meal struct {
	MealType      string
	Items         []string
	TotalCalories string
	TotalProteinG string
}

// NormalizeMealPlan flattens meal plan entries into display meals, one per
// meal_type, preserving backend order. Absent macro totals display as the
// sentinel rather than zero.
func NormalizeMealPlan(plans []model.MealPlan) []Meal {
	meals := make([]Meal, 0, len(plans))
	for _, p := range plans {
		items := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			items = append(items, item.Name)
		}
		meals = append(meals, Meal{
			MealType:      p.MealType,
			Items:         items,
			TotalCalories: formatOptional(p.TotalCalories),
			TotalProteinG: formatOptional(p.TotalProteinG),
		})
	}
	return meals
}

func formatOptional(f *float64) string {
	if f == nil {
		return Sentinel
	}
	return formatMetric(*f)
}
