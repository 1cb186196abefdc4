// Package defaults holds the seed data of a new account and of the global
// exercise catalog.
package defaults

import "github.com/mmynk/dayplanner/internal/models"

// SubcategorySeed describes a default subcategory.
type SubcategorySeed struct {
	Name       string
	ModuleType *string
}

// CategorySeed describes a default category and its subcategories.
type CategorySeed struct {
	Name          string
	Icon          string
	Color         string
	Subcategories []SubcategorySeed
}

func module(name string) *string { return &name }

// Categories are created, flagged as default, for every registered user.
var Categories = []CategorySeed{
	{
		Name:  "Sport",
		Icon:  "dumbbell",
		Color: "#ef4444",
		Subcategories: []SubcategorySeed{
			{Name: "Musculation", ModuleType: module(models.ModuleWorkout)},
			{Name: "Cardio"},
			{Name: "Stretching"},
		},
	},
	{
		Name:          "Lecture",
		Icon:          "book-open",
		Color:         "#3b82f6",
		Subcategories: []SubcategorySeed{{Name: "Livre"}},
	},
	{
		Name:  "Musique",
		Icon:  "music",
		Color: "#a855f7",
		Subcategories: []SubcategorySeed{
			{Name: "Pratique instrument"},
			{Name: "Composition"},
		},
	},
	{
		Name:  "Travail",
		Icon:  "briefcase",
		Color: "#f59e0b",
		Subcategories: []SubcategorySeed{
			{Name: "Deep work"},
			{Name: "Reunions"},
		},
	},
	{
		Name:  "Bien-etre",
		Icon:  "heart",
		Color: "#10b981",
		Subcategories: []SubcategorySeed{
			{Name: "Meditation"},
			{Name: "Repos"},
		},
	},
}

// CategoriesFor builds the default categories of userID, ready for
// CreateCategories.
func CategoriesFor(userID string) []models.Category {
	categories := make([]models.Category, 0, len(Categories))
	for _, seed := range Categories {
		cat := models.Category{
			Name:      seed.Name,
			Icon:      seed.Icon,
			Color:     seed.Color,
			IsDefault: true,
			UserID:    userID,
		}
		for _, sub := range seed.Subcategories {
			cat.Subcategories = append(cat.Subcategories, models.Subcategory{
				Name:       sub.Name,
				ModuleType: sub.ModuleType,
				IsDefault:  true,
				UserID:     userID,
			})
		}
		categories = append(categories, cat)
	}
	return categories
}
