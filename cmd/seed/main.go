package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"fitbite-be/internal/model"
	"fitbite-be/pkg/database"
)

// Offered subscription lengths in days. 7 and 14 day periods carry a
// volume discount over the plain daily rate.
var allowedPeriods = []int{1, 2, 3, 4, 5, 6, 7, 14}

const (
	weeklyDiscount   = 0.05
	biweeklyDiscount = 0.10
)

type mealSeed struct {
	DayOfWeek   string
	MealType    string
	Title       string
	Description string
	Calories    int
	Protein     int
	Carbs       int
	Fats        int
}

type planSeed struct {
	Name        string
	Description string
	GoalType    string
	DailyPrice  float64
	Meals       []mealSeed
}

// buildPricingOptions generates pricing rows in cents for the supported periods.
func buildPricingOptions(dailyRate float64) []model.PricingOption {
	daily := decimal.NewFromFloat(dailyRate)
	weeklyMultiplier := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(weeklyDiscount))
	biweeklyMultiplier := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(biweeklyDiscount))

	options := make([]model.PricingOption, 0, len(allowedPeriods))
	for _, period := range allowedPeriods {
		price := daily.Mul(decimal.NewFromInt(int64(period)))
		if period == 14 {
			price = price.Mul(biweeklyMultiplier)
		} else if period >= 7 {
			price = price.Mul(weeklyMultiplier)
		}

		priceCents := int(price.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		options = append(options, model.PricingOption{
			PeriodDays: period,
			PriceCents: priceCents,
			Currency:   "EUR",
			IsActive:   true,
		})
	}
	return options
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Plan Catalog...")

	for _, seed := range catalogPlans {
		// Check if a catalog plan with this name already exists
		var existing model.NutritionPlan
		if err := db.Where("name = ? AND owner_id IS NULL", seed.Name).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", seed.Name)
			continue
		}

		plan := model.NutritionPlan{
			Name:        seed.Name,
			Description: seed.Description,
			GoalType:    seed.GoalType,
			IsCustom:    false,
		}
		for _, m := range seed.Meals {
			plan.Meals = append(plan.Meals, &model.PlanMeal{
				DayOfWeek:    m.DayOfWeek,
				MealType:     m.MealType,
				Title:        m.Title,
				Description:  strPtr(m.Description),
				Calories:     intPtr(m.Calories),
				ProteinGrams: intPtr(m.Protein),
				CarbsGrams:   intPtr(m.Carbs),
				FatsGrams:    intPtr(m.Fats),
			})
		}
		for _, opt := range buildPricingOptions(seed.DailyPrice) {
			o := opt
			plan.PricingOptions = append(plan.PricingOptions, &o)
		}

		if err := db.Create(&plan).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", seed.Name, err)
		} else {
			color.Green("Created plan: %s (%s, %d meals, %d pricing options)",
				plan.Name, plan.GoalType, len(plan.Meals), len(plan.PricingOptions))
		}
	}

	color.Cyan("Plan seeding completed!")
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}
