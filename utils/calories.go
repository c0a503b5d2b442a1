package utils

// AssumedWeightKg is used for every activity calculation regardless of the
// user's stored weight.
const AssumedWeightKg = 70.0

// MealCalories expects the catalog's kcal per 100 g and the portion in
// grams. The result is truncated, matching the stored entry values.
func MealCalories(caloriesPer100g int, portionGrams float64) int {
	return int(float64(caloriesPer100g) * portionGrams / 100.0)
}

// ActivityCalories expects the catalog MET value, the intensity label and
// the duration in minutes. Intensity scales the MET: "baixa" by 0.8,
// "alta" by 1.2, anything else is taken as-is.
func ActivityCalories(metValue float64, intensity string, durationMinutes int) int {
	met := metValue
	switch intensity {
	case "baixa":
		met *= 0.8
	case "alta":
		met *= 1.2
	}

	hours := float64(durationMinutes) / 60.0
	return int(met * AssumedWeightKg * hours)
}
