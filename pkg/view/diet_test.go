package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

func TestNormalizeMealPlan_FlattensItems(t *testing.T) {
	calories := 420.0
	plans := []model.MealPlan{
		{
			MealType: "breakfast",
			Items: []model.MealItem{
				{Name: "Idli", Quantity: "2 pieces", Calories: 160},
				{Name: "Sambar", Quantity: "1 bowl", Calories: 120},
			},
			TotalCalories: &calories,
		},
		{
			MealType: "lunch",
			Items:    []model.MealItem{},
		},
	}

	meals := NormalizeMealPlan(plans)
	require.Len(t, meals, 2)

	assert.Equal(t, "breakfast", meals[0].MealType)
	assert.Equal(t, []string{"Idli", "Sambar"}, meals[0].Items)
	assert.Equal(t, "420", meals[0].TotalCalories)
	assert.Equal(t, Sentinel, meals[0].TotalProteinG)

	assert.Equal(t, "lunch", meals[1].MealType)
	assert.Empty(t, meals[1].Items)
	assert.Equal(t, Sentinel, meals[1].TotalCalories)
}

func TestNormalizeMealPlan_Empty(t *testing.T) {
	assert.Empty(t, NormalizeMealPlan(nil))
}
