package model

// Category is a spending category: a stable identifier plus display
// name and icon. Built-in categories are fixed; custom ones are
// user-created and deletable.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// DefaultIcon marks a category reference that resolves to nothing
// (e.g. a custom category deleted after expenses were recorded on it).
const DefaultIcon = "📌"

// BuiltinCategories is the fixed catalog every ledger starts with.
var BuiltinCategories = []Category{
	{ID: "food", Name: "Food and Groceries", Emoji: "🍔"},
	{ID: "transport", Name: "Transportation", Emoji: "🚗"},
	{ID: "rent", Name: "Rent and Household", Emoji: "🏠"},
	{ID: "utilities", Name: "Utilities and Bills", Emoji: "🧾"},
	{ID: "phone", Name: "Phone Recharge and Internet", Emoji: "📱"},
	{ID: "education", Name: "Education Fees and Books", Emoji: "🎓"},
	{ID: "stationery", Name: "Stationery and Supplies", Emoji: "🖊️"},
	{ID: "healthcare", Name: "Healthcare and Medicines", Emoji: "💊"},
	{ID: "personalcare", Name: "Personal Care and Grooming", Emoji: "🪒"},
	{ID: "clothing", Name: "Clothing and Accessories", Emoji: "👕"},
	{ID: "entertainment", Name: "Entertainment and Subscriptions", Emoji: "🎬"},
	{ID: "gifts", Name: "Gifts and Donations", Emoji: "🎁"},
	{ID: "savings", Name: "Savings and Investments", Emoji: "💰"},
	{ID: "miscellaneous", Name: "Miscellaneous/Others", Emoji: "🤷"},
}
