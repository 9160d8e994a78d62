package exhibitor_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
)

// ExportExhibitorsPDF godoc
// @Summary Export the filtered exhibitor list as PDF
// @Description Generate a PDF of the currently filtered exhibitor list. Export is only allowed when at least one filter is active or the search has three or more characters, and the result set is non-empty.
// @Tags Directory - Exhibitors
// @Produce octet-stream
// @Param q query string false "Search text"
// @Param category query []string false "Category checkbox ids" collectionFormat(multi)
// @Param sustainability query []string false "Sustainability checkbox ids" collectionFormat(multi)
// @Param madeIn query []string false "Made-in country filters" collectionFormat(multi)
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Export not enabled for this selection"
// @Failure 500 {object} models.ApiResponse "PDF generation failed"
// @Router /api/v1/exhibitors/export [get]
func ExportExhibitorsPDF(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sel := parseSelection(c)
		result := cat.Evaluate(sel)

		if !result.ExportEnabled {
			log.Printf("[exhibitor.export] export not enabled for selection")
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Export requires an active filter or a search of at least 3 characters, with results"))
			return
		}

		pdfBuffer, err := generateExhibitorsPDF(result.Filtered)
		if err != nil {
			log.Printf("[exhibitor.export] failed to generate PDF: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
			return
		}

		filename := fmt.Sprintf("exhibitors-%s.pdf", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

		c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

		log.Printf("[exhibitor.export] exported %d exhibitors", len(result.Filtered))
	}
}

// generateExhibitorsPDF renders the filtered list as an A4 table with a
// bilingual column header repeated on every page, matching the printed
// show guide.
func generateExhibitorsPDF(exhibitors []models.Exhibitor) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	black := color.Color{Red: 0, Green: 0, Blue: 0}
	darkGray := color.Color{Red: 26, Green: 26, Blue: 26}
	mediumGray := color.Color{Red: 102, Green: 102, Blue: 102}

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(4, func() {
				m.Text("EXHIBITOR", props.Text{Size: 10, Style: consts.Bold, Color: black})
				m.Text("EXPOSANT", props.Text{Size: 8, Top: 5, Color: mediumGray})
			})
			m.Col(3, func() {
				m.Text("COUNTRY", props.Text{Size: 10, Style: consts.Bold, Color: black})
				m.Text("PAYS", props.Text{Size: 8, Top: 5, Color: mediumGray})
			})
			m.Col(3, func() {
				m.Text("CATEGORY", props.Text{Size: 10, Style: consts.Bold, Color: black})
				m.Text("CATEGORIE", props.Text{Size: 8, Top: 5, Color: mediumGray})
			})
			m.Col(2, func() {
				m.Text("STAND", props.Text{Size: 10, Style: consts.Bold, Color: black})
			})
		})
		m.Line(1.0)
	})

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("Exhibitors list", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: black,
			})
		})
	})

	m.Row(4, func() {})

	for _, ex := range exhibitors {
		m.Row(7, func() {
			m.Col(4, func() {
				m.Text(strings.ToUpper(ex.Name), props.Text{Size: 9, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(ex.Country, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(ex.MainCategory, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(ex.StandNumber, props.Text{Size: 9, Color: darkGray})
			})
		})
		m.Line(0.3, props.Line{Color: color.Color{Red: 180, Green: 180, Blue: 180}})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}

	return &buf, nil
}
