package models

// Category is a spending category label from the fixed closed set.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryShopping       Category = "shopping"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealth         Category = "health"
	CategoryEducation      Category = "education"
	CategoryTravel         Category = "travel"
	CategoryHousing        Category = "housing"
	CategoryIncome         Category = "income"
	CategoryInvestment     Category = "investment"
	CategoryBills          Category = "bills"
	CategoryOther          Category = "other"
)

// Categories returns all categories in their fixed evaluation order.
// Rule matching iterates in this order, so it is part of the
// categorization contract, not just presentation.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryShopping,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategoryTravel,
		CategoryHousing,
		CategoryIncome,
		CategoryInvestment,
		CategoryBills,
		CategoryOther,
	}
}

var validCategories = func() map[Category]struct{} {
	set := make(map[Category]struct{})
	for _, c := range Categories() {
		set[c] = struct{}{}
	}
	return set
}()

// IsValidCategory reports whether the label belongs to the closed set.
func IsValidCategory(c Category) bool {
	_, ok := validCategories[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}
