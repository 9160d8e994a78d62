package catalog

import (
	"strings"

	"github.com/gabin-cxmp/sourcing/models"
)

// Filter configuration. Three kinds of filter exist:
//   - direct:   the checkbox id maps 1:1 to a literal exhibitor field value
//   - computed: truth is derived by scanning a supplier's products
//   - madeIn:   options are discovered from the union of product origins
//
// The configured lists are candidates only; the catalog builder keeps an
// option iff the loaded data actually contains a match for it, so the UI
// never renders a dead filter.

const (
	GroupCategory       = "category"
	GroupSustainability = "sustainability"
	GroupMadeIn         = "made-in"
)

// CategoryValues are the possible values of the exhibitor main product
// category field, in configured order.
var CategoryValues = []string{
	"Suppliers / Service providers",
	"Textile accessories",
	"Sourcing / Manufacturing",
	"Accessoires lingerie",
	"Ready-to-wear",
	"Other accessories",
	"Bags / Leather goods",
	"Jewellery",
}

// SustainabilityFilter is one computed filter: a supplier passes it when
// at least one of its products satisfies Check.
type SustainabilityFilter struct {
	ID    string
	Label string
	Check func(p models.Product) bool
}

// SustainabilityFilters are the computed filter definitions, keyed by
// checkbox id.
var SustainabilityFilters = []SustainabilityFilter{
	{
		ID:    "recycled",
		Label: "Recycled Products",
		Check: func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.RecycledOrganic), "recycled")
		},
	},
	{
		ID:    "handmade",
		Label: "Handmade Products",
		Check: func(p models.Product) bool { return flagYes(p.Handmade) },
	},
	{
		ID:    "organic",
		Label: "Organic Products",
		Check: func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.RecycledOrganic), "organic")
		},
	},
	{
		ID:    "limited-edition",
		Label: "Limited Edition",
		Check: func(p models.Product) bool { return flagYes(p.LimitedEdition) },
	},
	{
		ID:    "white-label",
		Label: "White Label",
		Check: func(p models.Product) bool { return flagYes(p.WhiteLabel) },
	},
}

// flagYes interprets the yes/no free-text flags the source data uses.
func flagYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// MadeInCountries is the static reference list of origin countries
// offered as Made In candidates.
var MadeInCountries = []string{
	"Albania", "Algeria", "Argentina", "Armenia", "Australia", "Austria",
	"Belgium", "Bolivia", "Brazil", "Bulgaria", "Canada", "Chile", "China",
	"Colombia", "Costa Rica", "Croatia", "Czech", "Denmark", "Egypt",
	"Estonia", "Ecuador", "Ethiopia", "Finland", "France", "Germany",
	"Georgia", "Greece", "Hong Kong", "Iceland", "India", "Indonesia",
	"Ireland", "Italy", "Japan", "Jordan", "Kazakhstan", "Kenya", "Latvia",
	"Lebanon", "Macao", "Malaysia", "Morocco", "Mexico", "Monaco",
	"Netherlands", "Norway", "Pakistan", "Paraguay", "Philippines",
	"Poland", "Saudi Arabia", "South Africa", "South Korea", "Spain",
	"Portugal", "Qatar", "Singapore", "Sweden", "Switzerland", "Taiwan",
	"Thailand", "Tunisia", "Turkey", "United Arab Emirates", "Uruguay",
	"USA", "UK", "Vietnam",
}
