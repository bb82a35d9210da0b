package models

// DefaultCategories returns the built-in category set used when no override
// file is present. The slice order doubles as the ranking tie-break, so the
// explicit priorities mirror the positions; "Others" sits at priority 99 so
// that any later custom category still outranks the fallback bucket.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{Name: CategoryGroceries, Priority: 1, Glyph: "🛒", Keywords: []string{
			"milk", "eggs", "bread", "rice", "atta", "flour", "salt", "sugar", "tea", "coffee",
			"biscuit", "oil", "grocery", "vegetable", "fruit", "dal", "pulses", "tofu", "curd", "paneer",
		}},
		{Name: CategoryFoodDining, Priority: 2, Glyph: "🍛", Keywords: []string{
			"restaurant", "lunch", "dinner", "breakfast", "snacks", "cafe", "pizza", "meal",
			"swiggy", "zomato", "ubereats", "biryani", "noodles", "thali",
		}},
		{Name: "Transport", Priority: 3, Glyph: "🚗", Keywords: []string{
			"uber", "ola", "taxi", "metro", "bus", "train", "flight", "cab", "auto", "commute", "parking",
		}},
		{Name: "Utilities & Bills", Priority: 4, Glyph: "💡", Keywords: []string{
			"electricity", "water", "gas", "phone", "recharge", "internet", "wifi", "broadband", "dth", "bill",
		}},
		{Name: "Shopping", Priority: 5, Glyph: "🛍️", Keywords: []string{
			"amazon", "flipkart", "myntra", "shopping", "purchase", "mall", "store", "shop",
		}},
		{Name: "Clothing & Fashion", Priority: 6, Glyph: "👗", Keywords: []string{
			"shirt", "jeans", "dress", "clothes", "tshirt", "kurti", "saree", "shoes", "fashion", "apparel",
		}},
		{Name: "Entertainment", Priority: 7, Glyph: "🎬", Keywords: []string{
			"movie", "cinema", "netflix", "prime", "hotstar", "spotify", "fun", "bookmyshow", "theatre",
		}},
		{Name: "Events & Subscriptions", Priority: 8, Glyph: "🎟️", Keywords: []string{
			"membership", "subscription", "ticket", "event",
		}},
		{Name: "Medical & Health", Priority: 9, Glyph: "💊", Keywords: []string{
			"doctor", "medicine", "pharmacy", "clinic", "hospital", "gym", "fitness", "yoga", "medication",
		}},
		{Name: "Personal Care", Priority: 10, Glyph: "🧴", Keywords: []string{
			"shampoo", "soap", "toothpaste", "skincare", "cosmetic", "makeup", "perfume", "lotion",
		}},
		{Name: "Home Essentials", Priority: 11, Glyph: "🧺", Keywords: []string{
			"detergent", "cleaner", "handwash", "dettol", "mop", "broom", "bucket",
		}},
		{Name: CategoryRentHouse, Priority: 12, Glyph: "🏠", Keywords: []string{
			"rent", "maintenance", "society", "apartment", "housing",
		}},
		{Name: CategoryInvestment, Priority: 13, Glyph: "💹", Keywords: []string{
			"investment", "mutual fund", "sip", "stocks", "shares", "fd", "rd", "deposit", "nps", "lic", "premium",
		}},
		{Name: CategoryEducation, Priority: 14, Glyph: "🎒", Keywords: []string{
			"school", "tuition", "education", "exam", "fees", "college", "book",
		}},
		{Name: "Childcare", Priority: 15, Glyph: "🍼", Keywords: []string{
			"child", "kid", "baby", "infant",
		}},
		{Name: "Work & Office", Priority: 16, Glyph: "💼", Keywords: []string{
			"office", "work", "job", "project",
		}},
		{Name: "Gifts & Donations", Priority: 17, Glyph: "🎁", Keywords: []string{
			"gift", "donation", "birthday", "wedding", "present", "ngo",
		}},
		{Name: "Hobbies & Leisure", Priority: 18, Glyph: "🎨", Keywords: []string{
			"hobby", "craft", "art", "book", "paint", "sketch", "novel",
		}},
		{Name: CategoryOthers, Priority: 99, Glyph: "🔖", Keywords: []string{
			"miscellaneous", "unknown", "other",
		}},
	}
}

// LargeAmountCategories are the categories that receive the coarse prior when
// the extracted amount exceeds the configured threshold.
func LargeAmountCategories() []string {
	return []string{CategoryRentHouse, CategoryInvestment}
}
