package models

// FilterSelection is a snapshot of the visitor's current filter state.
// The presentation layer (HTTP query params) populates it; the catalog
// evaluator only ever sees this value object, never the request.
type FilterSelection struct {
	SearchText        string   `json:"search_text"`
	CategoryIDs       []string `json:"category_ids"`
	SustainabilityIDs []string `json:"sustainability_ids"`
	MadeInValues      []string `json:"made_in_values"`
}

// Empty reports whether no checkbox is checked and the search is blank.
func (s FilterSelection) Empty() bool {
	return s.SearchText == "" &&
		len(s.CategoryIDs) == 0 &&
		len(s.SustainabilityIDs) == 0 &&
		len(s.MadeInValues) == 0
}

// HasSelectedFilters reports whether at least one checkbox is checked,
// regardless of the search text.
func (s FilterSelection) HasSelectedFilters() bool {
	return len(s.CategoryIDs) > 0 ||
		len(s.SustainabilityIDs) > 0 ||
		len(s.MadeInValues) > 0
}

// FilterOption is one checkbox: a stable identifier (checkbox id/value)
// and a display label.
type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FilterGroup is one rendered filter family (Category, Sustainability,
// Made In) holding only the options that actually match at least one
// exhibitor in the loaded dataset. Groups with zero options are never
// emitted.
type FilterGroup struct {
	Key     string         `json:"key"`
	Legend  string         `json:"legend"`
	Options []FilterOption `json:"options"`
}

// PageWindow describes the pagination controls for the current page:
// which consecutive page numbers to render, whether leading/trailing
// ellipsis and first/last shortcuts are needed, and the back/next
// disabled state.
type PageWindow struct {
	StartPage    int  `json:"start_page"`
	EndPage      int  `json:"end_page"`
	ShowFirst    bool `json:"show_first"`
	LeadingGap   bool `json:"leading_gap"`
	ShowLast     bool `json:"show_last"`
	TrailingGap  bool `json:"trailing_gap"`
	BackDisabled bool `json:"back_disabled"`
	NextDisabled bool `json:"next_disabled"`
}
