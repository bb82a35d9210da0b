package models

// Well-known category names referenced by the engine.
const (
	CategoryOthers     = "Others"
	CategoryGroceries  = "Groceries"
	CategoryFoodDining = "Food & Dining"
	CategoryRentHouse  = "Rent & Housing"
	CategoryInvestment = "Investment & Savings"
	CategoryEducation  = "Education"
)

// NoMatchExplanation is attached to suggestions that carry no evidence,
// including the fallback suggestion for unmatchable or empty input.
const NoMatchExplanation = "No strong keyword match."

// File permissions for persisted configuration and cache files.
const (
	PermissionDataFile  = 0644
	PermissionDirectory = 0755
)
