package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabin-cxmp/sourcing/models"
)

func resolveCatalog() *Catalog {
	return New(NewSnapshot(
		[]models.Product{
			{SupplierName: "Atelier Écru", Type: "Knitwear", RawMaterialCertifications: "GOTS, Oeko-Tex"},
			{SupplierName: "Atelier Écru", Type: "Trims", RawMaterialCertifications: "Oeko-Tex", Handmade: "Yes"},
			{SupplierName: "Maison K", Type: "Bags"},
		},
		[]models.Exhibitor{
			{Name: "Atelier Écru", StandNumber: "A12", CompanyCertifications: "B Corp, GOTS", IsActive: true},
			{Name: "Maison K", StandNumber: "  ", IsActive: true},
		},
	))
}

func TestResolveSupplier(t *testing.T) {
	cat := resolveCatalog()

	t.Run("resolves a URL-encoded name", func(t *testing.T) {
		ex := cat.ResolveSupplier("Atelier%20%C3%89cru")
		require.NotNil(t, ex)
		assert.Equal(t, "Atelier Écru", ex.Name)
	})

	t.Run("resolves accent-insensitively", func(t *testing.T) {
		ex := cat.ResolveSupplier("atelier ecru")
		require.NotNil(t, ex)
		assert.Equal(t, "Atelier Écru", ex.Name)
	})

	t.Run("malformed encoding falls back to the raw value", func(t *testing.T) {
		// "%zz" is not a valid escape; the raw string still resolves.
		assert.Nil(t, cat.ResolveSupplier("nobody%zz"))
		ex := cat.ResolveSupplier("maison k")
		require.NotNil(t, ex)
	})

	t.Run("unknown and empty names return nil", func(t *testing.T) {
		assert.Nil(t, cat.ResolveSupplier("Nobody"))
		assert.Nil(t, cat.ResolveSupplier(""))
		assert.Nil(t, cat.ResolveSupplier("   "))
	})
}

func TestDetail(t *testing.T) {
	cat := resolveCatalog()

	t.Run("joins products and shows the stand", func(t *testing.T) {
		ex := cat.ResolveSupplier("Atelier Écru")
		require.NotNil(t, ex)

		detail := cat.Detail(*ex)
		assert.Len(t, detail.Products, 2)
		assert.True(t, detail.ShowStand)
	})

	t.Run("blank stand number hides the stand", func(t *testing.T) {
		ex := cat.ResolveSupplier("Maison K")
		require.NotNil(t, ex)

		detail := cat.Detail(*ex)
		assert.False(t, detail.ShowStand)
	})
}

func TestCertifications(t *testing.T) {
	t.Run("aggregates company and raw-material entries deduplicated", func(t *testing.T) {
		ex := models.Exhibitor{CompanyCertifications: "B Corp, GOTS"}
		products := []models.Product{
			{RawMaterialCertifications: "GOTS, Oeko-Tex"},
			{RawMaterialCertifications: "Oeko-Tex"},
		}

		certs := Certifications(ex, products)

		// GOTS appears twice: once as company, once as raw material.
		// The (category, text) pair is the dedup key.
		assert.Equal(t, []models.Certification{
			{Category: CertCompany, Text: "B Corp"},
			{Category: CertCompany, Text: "GOTS"},
			{Category: CertRawMaterial, Text: "GOTS"},
			{Category: CertRawMaterial, Text: "Oeko-Tex"},
		}, certs)
	})

	t.Run("skips empty and none entries", func(t *testing.T) {
		ex := models.Exhibitor{CompanyCertifications: "None, , B Corp"}
		certs := Certifications(ex, nil)
		assert.Equal(t, []models.Certification{
			{Category: CertCompany, Text: "B Corp"},
		}, certs)
	})

	t.Run("derives virtual labels from product flags", func(t *testing.T) {
		products := []models.Product{
			{Handmade: "Yes"},
			{RecycledOrganic: "Recycled and organic fibres"},
			{WhiteLabel: "yes"},
			{LimitedEdition: "Yes"},
		}

		certs := Certifications(models.Exhibitor{}, products)

		assert.Equal(t, []models.Certification{
			{Category: CertHandmade, Text: "Handmade"},
			{Category: CertRecycled, Text: "Recycled"},
			{Category: CertOrganic, Text: "Organic"},
			{Category: CertWhiteLabel, Text: "White Label"},
			{Category: CertLimitedEdition, Text: "Limited Edition"},
		}, certs)
	})

	t.Run("no flags, no virtual labels", func(t *testing.T) {
		certs := Certifications(models.Exhibitor{}, []models.Product{{Handmade: "No"}})
		assert.Empty(t, certs)
	})
}
