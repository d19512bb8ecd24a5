// Package catalog holds the static style catalog: product types, their
// categories, and the per-category style axes offered to users. All option
// names are bilingual (Indonesian and English); prompts are composed from
// the Indonesian names.
package catalog

import "strings"

// ProductType identifies what kind of product or subject a photo shoot is
// about. It selects which category of style options applies.
type ProductType string

// Category groups product types that share a style option set.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryBeverage Category = "beverage"
	CategoryBeauty   Category = "beauty"
	CategoryFashion  Category = "fashion"
	CategoryCookware Category = "cookware"
	CategorySport    Category = "sport"
	CategoryPortrait Category = "portrait"
)

// StyleOption is a single selectable style with a stable id and bilingual
// display names.
type StyleOption struct {
	ID     string `json:"id"`
	NameID string `json:"name_id"`
	NameEN string `json:"name_en"`
}

// Sentinel option ids. Random defers the choice to the model, Other lets the
// user type a custom value (backgrounds only).
const (
	OptionRandom = "random"
	OptionOther  = "other"
)

var (
	RandomOption = StyleOption{ID: OptionRandom, NameID: "Gaya Acak (Kejutan dari AI)", NameEN: "Random Style (AI Surprise)"}
	OtherOption  = StyleOption{ID: OptionOther, NameID: "Lainnya (Tulis Sendiri)...", NameEN: "Other (Write your own)..."}
)

// OptionSet is the full set of style axes for one category. Outfits is empty
// for everything except portraits.
type OptionSet struct {
	Angles      []StyleOption `json:"angles"`
	Lighting    []StyleOption `json:"lighting"`
	Styling     []StyleOption `json:"styling"`
	Backgrounds []StyleOption `json:"backgrounds"`
	Outfits     []StyleOption `json:"outfits"`
}

var optionsByCategory = map[Category]OptionSet{
	CategoryFood:     {Angles: foodAngles, Lighting: foodLighting, Styling: foodStyling, Backgrounds: foodBackgrounds},
	CategoryBeverage: {Angles: beverageAngles, Lighting: beverageLighting, Styling: beverageStyling, Backgrounds: beverageBackgrounds},
	CategoryBeauty:   {Angles: beautyAngles, Lighting: beautyLighting, Styling: beautyStyling, Backgrounds: beautyBackgrounds},
	CategoryFashion:  {Angles: fashionAngles, Lighting: fashionLighting, Styling: fashionStyling, Backgrounds: fashionBackgrounds},
	CategoryCookware: {Angles: cookwareAngles, Lighting: cookwareLighting, Styling: cookwareStyling, Backgrounds: cookwareBackgrounds},
	CategorySport:    {Angles: sportsAngles, Lighting: sportsLighting, Styling: sportsStyling, Backgrounds: sportsBackgrounds},
	CategoryPortrait: {Angles: portraitAngles, Lighting: portraitLighting, Styling: portraitStyling, Backgrounds: portraitBackgrounds, Outfits: portraitOutfits},
}

// CategoryOf maps a product type to its style category. Unknown product
// types fall back to the food category so a stale or hand-typed id still
// yields a usable option set.
func CategoryOf(pt ProductType) Category {
	if info, ok := productTypeIndex[pt]; ok {
		return info.Category
	}
	return CategoryFood
}

// KnownProductType reports whether pt is one of the catalogued product
// types. Validation boundaries use this; CategoryOf deliberately does not.
func KnownProductType(pt ProductType) bool {
	_, ok := productTypeIndex[pt]
	return ok
}

// OptionsFor returns the option set for a category. The returned slices are
// shared and must not be mutated.
func OptionsFor(c Category) OptionSet {
	return optionsByCategory[c]
}

// MarketingProductTypes lists the product types available outside portrait
// mode, in display order.
func MarketingProductTypes() []ProductTypeInfo { return marketingProductTypes }

// PortraitSubjectTypes lists the portrait subject types in display order.
func PortraitSubjectTypes() []ProductTypeInfo { return portraitSubjectTypes }

// FoodProductTypes lists the subset of marketing product types in the food
// and beverage categories, used by the dedicated food photography mode.
func FoodProductTypes() []ProductTypeInfo {
	out := make([]ProductTypeInfo, 0, len(marketingProductTypes))
	for _, p := range marketingProductTypes {
		if p.Category == CategoryFood || p.Category == CategoryBeverage {
			out = append(out, p)
		}
	}
	return out
}

// ProductTypeName returns the display name of a product type in the given
// locale ("id" or anything else for English). Unknown ids are returned
// verbatim.
func ProductTypeName(pt ProductType, locale string) string {
	info, ok := productTypeIndex[pt]
	if !ok {
		return string(pt)
	}
	if locale == "id" {
		return info.NameID
	}
	return info.NameEN
}

// OptionNameID returns the Indonesian display name for an option id within
// the given options, or the id itself when it is not present.
func OptionNameID(id string, options []StyleOption) string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.NameID
		}
	}
	return id
}

// FindOptionID resolves a display name back to an option id. Matching is
// case-insensitive after trimming, Indonesian names first, then English.
// The second return is false when no option matches.
func FindOptionID(name string, options []StyleOption) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, opt := range options {
		if strings.ToLower(opt.NameID) == needle {
			return opt.ID, true
		}
	}
	for _, opt := range options {
		if strings.ToLower(opt.NameEN) == needle {
			return opt.ID, true
		}
	}
	return "", false
}

// EnglishNames returns the English display names of the options, in order.
// Assistant prompts enumerate choices by English name.
func EnglishNames(options []StyleOption) []string {
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = opt.NameEN
	}
	return names
}
