package catalog

import (
	"net/url"
	"strings"

	"github.com/gabin-cxmp/sourcing/models"
)

// Certification categories. Company and raw-material certifications come
// straight from the data; the virtual categories are derived from
// product flags.
const (
	CertCompany        = "company"
	CertRawMaterial    = "raw"
	CertHandmade       = "handmade"
	CertRecycled       = "recycled"
	CertOrganic        = "organic"
	CertWhiteLabel     = "white-label"
	CertLimitedEdition = "limited-edition"
)

// ResolveSupplier resolves a URL-encoded supplier identifier back to an
// exhibitor record by exact normalized-name lookup. It returns nil when
// the parameter is empty or unmatched; malformed percent-encodings fall
// back to the raw parameter instead of failing, so resolution never
// panics on hostile input.
func (c *Catalog) ResolveSupplier(urlParam string) *models.Exhibitor {
	if strings.TrimSpace(urlParam) == "" {
		return nil
	}

	decoded, err := url.QueryUnescape(urlParam)
	if err != nil {
		decoded = urlParam
	}
	want := Normalize(decoded)

	snap := c.snapshot()
	for i := range snap.Exhibitors {
		if Normalize(snap.Exhibitors[i].Name) == want {
			ex := snap.Exhibitors[i]
			return &ex
		}
	}
	return nil
}

// Detail assembles the micro-view payload for a resolved exhibitor:
// joined products, aggregated certifications, and whether the stand
// display should be shown at all (an empty stand number hides the
// element instead of rendering a blank).
func (c *Catalog) Detail(ex models.Exhibitor) models.ExhibitorDetail {
	products := c.ProductsForSupplier(ex.Name)
	return models.ExhibitorDetail{
		Exhibitor:      ex,
		Products:       products,
		Certifications: Certifications(ex, products),
		ShowStand:      strings.TrimSpace(ex.StandNumber) != "",
	}
}

// Certifications aggregates the certification list for an exhibitor:
// the company-level comma-separated field, every joined product's
// raw-material certification fields (the literal "None" excluded), and
// one virtual label per product-derived attribute present on any
// product. Entries are deduplicated by (category, text) pair so the
// same text can appear under different categories.
func Certifications(ex models.Exhibitor, products []models.Product) []models.Certification {
	seen := make(map[models.Certification]bool)
	certs := make([]models.Certification, 0)

	add := func(category, text string) {
		text = strings.TrimSpace(text)
		if text == "" || strings.EqualFold(text, "none") {
			return
		}
		entry := models.Certification{Category: category, Text: text}
		if seen[entry] {
			return
		}
		seen[entry] = true
		certs = append(certs, entry)
	}

	for _, part := range strings.Split(ex.CompanyCertifications, ",") {
		add(CertCompany, part)
	}

	var hasHandmade, hasRecycled, hasOrganic, hasWhiteLabel, hasLimited bool
	for _, p := range products {
		for _, part := range strings.Split(p.RawMaterialCertifications, ",") {
			add(CertRawMaterial, part)
		}

		if flagYes(p.Handmade) {
			hasHandmade = true
		}
		eco := strings.ToLower(p.RecycledOrganic)
		if strings.Contains(eco, "recycled") {
			hasRecycled = true
		}
		if strings.Contains(eco, "organic") {
			hasOrganic = true
		}
		if flagYes(p.WhiteLabel) {
			hasWhiteLabel = true
		}
		if flagYes(p.LimitedEdition) {
			hasLimited = true
		}
	}

	if hasHandmade {
		add(CertHandmade, "Handmade")
	}
	if hasRecycled {
		add(CertRecycled, "Recycled")
	}
	if hasOrganic {
		add(CertOrganic, "Organic")
	}
	if hasWhiteLabel {
		add(CertWhiteLabel, "White Label")
	}
	if hasLimited {
		add(CertLimitedEdition, "Limited Edition")
	}

	return certs
}
