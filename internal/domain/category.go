package domain

// The classifier works against a fixed, closed category set. Items classified
// outside the set are still accepted and rendered with the fallback marker.
const (
	CategoryConsumables = "Consumables/Perishables"
	CategoryTools       = "Tools & Equipment"
	CategoryHardware    = "Hardware/Components"
	CategoryMedia       = "Documentation/Media"
	CategoryApparel     = "Apparel/Textiles"
	CategoryStationery  = "Office & Stationery"
	CategorySafety      = "Safety & Emergency"
	CategorySeasonal    = "Seasonal/Occasional"
	CategoryChemicals   = "Chemicals/Hazardous"
	CategoryElectronics = "Electronics/Gadgets"
)

// FallbackCategoryMarker renders unknown categories in chat replies.
const FallbackCategoryMarker = "📦"

var categoryMarkers = map[string]string{
	CategoryConsumables: "🛒",
	CategoryTools:       "🔧",
	CategoryHardware:    "⚙️",
	CategoryMedia:       "📚",
	CategoryApparel:     "👕",
	CategoryStationery:  "📝",
	CategorySafety:      "🆘",
	CategorySeasonal:    "🎉",
	CategoryChemicals:   "⚠️",
	CategoryElectronics: "🔌",
}

// CategoryMarker returns the display marker for a category name. Categories
// outside the fixed set get the generic fallback marker, never an error.
func CategoryMarker(category string) string {
	if m, ok := categoryMarkers[category]; ok {
		return m
	}
	return FallbackCategoryMarker
}

// KnownCategory reports whether the category belongs to the fixed set.
func KnownCategory(category string) bool {
	_, ok := categoryMarkers[category]
	return ok
}
