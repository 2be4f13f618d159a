package nutrition

import "strings"

// NamedNutrient is one row of a food-composition lookup response: a
// free-form nutrient name with an amount and unit. Amount is a pointer
// because the upstream API omits it for some rows.
type NamedNutrient struct {
	Name   string
	Amount *float64
	Unit   string
}

// ParseNutrients normalizes a food API's nutrient list into a Nutrients
// snapshot by case-insensitive substring match on the nutrient name. The
// first row to match a category wins; rows with an empty name or missing
// amount are skipped silently.
func ParseNutrients(rows []NamedNutrient) Nutrients {
	var n Nutrients
	var haveCal, haveProt, haveCarb, haveFiber, haveFat bool

	for _, row := range rows {
		if row.Name == "" || row.Amount == nil {
			continue
		}
		name := strings.ToLower(row.Name)
		value := *row.Amount

		switch {
		case !haveCal && (strings.Contains(name, "energy") || strings.Contains(name, "calories")):
			n.Calories, haveCal = value, true
		case !haveProt && strings.Contains(name, "protein"):
			n.Protein, haveProt = value, true
		case !haveCarb && strings.Contains(name, "carbohydrate"):
			n.Carbs, haveCarb = value, true
		case !haveFiber && strings.Contains(name, "fiber"):
			n.Fiber, haveFiber = value, true
		case !haveFat && (strings.Contains(name, "fat") || strings.Contains(name, "lipid")):
			n.Fat, haveFat = value, true
		}
	}
	return n
}
