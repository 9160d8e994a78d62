package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/models"
)

// LoadCatalogFromDB reads the supplier and product tables the dashboard
// edits and maps them to catalog models. The bulk reads go through the
// pgx pool; GORM stays on the row-level dashboard CRUD. Only active
// suppliers are published to the directory.
func LoadCatalogFromDB(ctx context.Context) ([]models.Product, []models.Exhibitor, error) {
	exhibitors, err := loadActiveSuppliers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load suppliers: %w", err)
	}

	products, err := loadPublishedProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}

	log.Printf("[db_loader] loaded %d suppliers, %d products", len(exhibitors), len(products))
	return products, exhibitors, nil
}

func loadActiveSuppliers(ctx context.Context) ([]models.Exhibitor, error) {
	query := `
		SELECT
			name,
			COALESCE(country, ''),
			COALESCE(focus, ''),
			COALESCE(main_product_category, ''),
			COALESCE(secondary_product_category, ''),
			COALESCE(stand_number, ''),
			COALESCE(contact_email, ''),
			COALESCE(company_certifications, '')
		FROM suppliers
		WHERE is_active = true
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exhibitors []models.Exhibitor
	for rows.Next() {
		var ex models.Exhibitor
		if err := rows.Scan(
			&ex.Name,
			&ex.Country,
			&ex.Focus,
			&ex.MainCategory,
			&ex.SecondaryCategory,
			&ex.StandNumber,
			&ex.Email,
			&ex.CompanyCertifications,
		); err != nil {
			return nil, err
		}
		ex.IsActive = true
		exhibitors = append(exhibitors, ex)
	}
	return exhibitors, rows.Err()
}

// loadPublishedProducts joins products onto their owning supplier so
// rows of inactive or deleted suppliers never reach the catalog.
func loadPublishedProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT
			s.name,
			COALESCE(p.type, ''),
			COALESCE(p.material, ''),
			COALESCE(p.material_secondary, ''),
			COALESCE(p.specifications, ''),
			COALESCE(p.finishing, ''),
			COALESCE(p.production_volumes, ''),
			COALESCE(p.made_in, ''),
			COALESCE(p.recycled_organic, ''),
			COALESCE(p.raw_material_certifications, ''),
			COALESCE(p.other_raw_material_certifications, ''),
			COALESCE(p.handmade, ''),
			COALESCE(p.private_label_white_label, ''),
			COALESCE(p.limited_edition, ''),
			COALESCE(p.deadstock, '')
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE s.is_active = true
		ORDER BY p.created_at
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var otherCerts string
		if err := rows.Scan(
			&p.SupplierName,
			&p.Type,
			&p.MaterialPrimary,
			&p.MaterialSecondary,
			&p.Specifications,
			&p.Finishing,
			&p.ProductionVolume,
			&p.MadeIn,
			&p.RecycledOrganic,
			&p.RawMaterialCertifications,
			&otherCerts,
			&p.Handmade,
			&p.WhiteLabel,
			&p.LimitedEdition,
			&p.Deadstock,
		); err != nil {
			return nil, err
		}
		p.RawMaterialCertifications = mergeCertifications(p.RawMaterialCertifications, otherCerts)
		products = append(products, p)
	}
	return products, rows.Err()
}

// mergeCertifications joins the structured certification column with the
// free-text "other" column so the micro-view sees a single comma list.
func mergeCertifications(certs, other string) string {
	certs = strings.TrimSpace(certs)
	other = strings.TrimSpace(other)
	switch {
	case certs == "":
		return other
	case other == "":
		return certs
	default:
		return certs + ", " + other
	}
}
