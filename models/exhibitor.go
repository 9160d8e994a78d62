package models

// ═══════════════════════════════════════════════════════════
// Catalog Models (in-memory directory records)
// ═══════════════════════════════════════════════════════════
//
// The directory data arrives denormalized: one row per product,
// with the supplier columns repeated on every row of a supplier
// block. Exhibitors are deduplicated by name at load time, products
// are joined back by normalized supplier name.

// Exhibitor is a trade-show supplier record, one per distinct name.
type Exhibitor struct {
	Name                  string `json:"name"`
	Country               string `json:"country"`
	Focus                 string `json:"focus"`
	MainCategory          string `json:"main_category"`
	SecondaryCategory     string `json:"secondary_category,omitempty"`
	StandNumber           string `json:"stand_number,omitempty"`
	Email                 string `json:"email,omitempty"`
	CompanyCertifications string `json:"company_certifications,omitempty"`
	IsActive              bool   `json:"is_active"`
}

// Product is a single catalog item belonging to an exhibitor.
// All attribute fields are free text from the source spreadsheet or
// database; yes/no flags are stored as text ("Yes"/"No"/"").
type Product struct {
	SupplierName              string `json:"supplier_name"`
	Type                      string `json:"type"`
	MaterialPrimary           string `json:"material_primary,omitempty"`
	MaterialSecondary         string `json:"material_secondary,omitempty"`
	Specifications            string `json:"specifications,omitempty"`
	Finishing                 string `json:"finishing,omitempty"`
	ProductionVolume          string `json:"production_volume,omitempty"`
	MadeIn                    string `json:"made_in,omitempty"`
	RecycledOrganic           string `json:"recycled_organic,omitempty"`
	RawMaterialCertifications string `json:"raw_material_certifications,omitempty"`
	Handmade                  string `json:"handmade,omitempty"`
	WhiteLabel                string `json:"white_label,omitempty"`
	LimitedEdition            string `json:"limited_edition,omitempty"`
	Deadstock                 string `json:"deadstock,omitempty"`
}

// Certification is one entry of the aggregated certification list shown
// on the micro-view. Category distinguishes company-level, raw-material
// and virtual (product-derived) certifications so the same text can
// appear under different categories without colliding.
type Certification struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// ExhibitorDetail is the micro-view payload: the resolved exhibitor,
// its joined products and the aggregated certifications.
// ShowStand mirrors the listing rule that an empty stand number hides
// the stand display entirely instead of rendering a blank value.
type ExhibitorDetail struct {
	Exhibitor      Exhibitor       `json:"exhibitor"`
	Products       []Product       `json:"products"`
	Certifications []Certification `json:"certifications"`
	ShowStand      bool            `json:"show_stand"`
}
