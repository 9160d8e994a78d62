package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/gabin-cxmp/sourcing/models"
)

// catalogRow is one row of a published sheet export. Each row carries both
// the supplier columns and the product columns; suppliers repeat across
// their product rows and are deduplicated later by normalized name.
type catalogRow struct {
	SupplierName           string `csv:"Supplier Name"`
	SupplierCountry        string `csv:"Supplier Country"`
	Focus                  string `csv:"Focus"`
	MainCategory           string `csv:"Main Product Category"`
	SecondaryCategory      string `csv:"Secondary Product Category"`
	StandNumber            string `csv:"Stand Number"`
	Email                  string `csv:"Email"`
	CompanyCertifications  string `csv:"Company Certifications (if applicable)"`
	ProductType            string `csv:"Product type"`
	MaterialPrimary        string `csv:"Product Material - Main Composition"`
	MaterialSecondary      string `csv:"Product Material - Secondary Composition (if applicable)"`
	Specifications         string `csv:"Product specifications (if applicable)"`
	Finishing              string `csv:"Product Finishing (if applicable)"`
	ProductionVolume       string `csv:"Production volumes"`
	Handmade               string `csv:"Handmade"`
	WhiteLabel             string `csv:"Is this product available as Private Label/White Label service?"`
	LimitedEdition         string `csv:"Is this product a limited edition?"`
	MadeIn                 string `csv:"Made in"`
	RecycledOrganic        string `csv:"Recycled/Organic (if applicable)"`
	RawCertifications      string `csv:"Raw Material Certfications (if applicable)"`
	OtherRawCertifications string `csv:"Other Raw Material Certifications"`
	Deadstock              string `csv:"Deadstock"`
}

// headerNormalizingReader cleans the header record before gocsv matches it
// against struct tags. Some sheet headers contain literal newlines inside a
// cell ("Company Certifications \n(if applicable)"), which would otherwise
// never match.
type headerNormalizingReader struct {
	r         *csv.Reader
	headerRow bool
}

func newHeaderNormalizingReader(r io.Reader) *headerNormalizingReader {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return &headerNormalizingReader{r: cr, headerRow: true}
}

func (h *headerNormalizingReader) Read() ([]string, error) {
	record, err := h.r.Read()
	if err != nil {
		return record, err
	}
	if h.headerRow {
		h.headerRow = false
		for i, cell := range record {
			record[i] = strings.Join(strings.Fields(cell), " ")
		}
	}
	return record, nil
}

func (h *headerNormalizingReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := h.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// LoadCatalogFromCSV fetches every sheet export configured in
// CATALOG_CSV_URLS (comma-separated), parses them, and maps the rows to
// catalog models. Suppliers appear once per product row; the catalog
// snapshot deduplicates them.
func LoadCatalogFromCSV(ctx context.Context) ([]models.Product, []models.Exhibitor, error) {
	rawURLs := os.Getenv("CATALOG_CSV_URLS")
	if rawURLs == "" {
		return nil, nil, fmt.Errorf("CATALOG_CSV_URLS not set")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	var products []models.Product
	var exhibitors []models.Exhibitor

	for _, u := range strings.Split(rawURLs, ",") {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}

		rows, err := fetchAndCleanSheet(ctx, client, u)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load sheet %s: %w", u, err)
		}

		for _, row := range rows {
			p, e := mapRow(row)
			products = append(products, p)
			exhibitors = append(exhibitors, e)
		}

		log.Printf("[csv_loader] loaded %d rows from sheet", len(rows))
	}

	return products, exhibitors, nil
}

// fetchAndCleanSheet downloads one export URL, drops the sheet's first line
// (a junk title row above the real header), and parses the remainder.
func fetchAndCleanSheet(ctx context.Context, client *http.Client, url string) ([]*catalogRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	body := dropFirstLine(string(raw))

	var rows []*catalogRow
	if err := gocsv.UnmarshalCSV(newHeaderNormalizingReader(strings.NewReader(body)), &rows); err != nil {
		return nil, err
	}

	cleaned := rows[:0]
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		cleaned = append(cleaned, row)
	}
	return cleaned, nil
}

func dropFirstLine(s string) string {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return ""
	}
	s = strings.TrimLeft(s[i:], "\r\n")
	return strings.TrimSpace(s)
}

func isBlankRow(row *catalogRow) bool {
	return strings.TrimSpace(row.SupplierName) == "" &&
		strings.TrimSpace(row.ProductType) == ""
}

func mapRow(row *catalogRow) (models.Product, models.Exhibitor) {
	certs := strings.TrimSpace(row.RawCertifications)
	if other := strings.TrimSpace(row.OtherRawCertifications); other != "" {
		if certs == "" {
			certs = other
		} else {
			certs = certs + ", " + other
		}
	}

	product := models.Product{
		SupplierName:              strings.TrimSpace(row.SupplierName),
		Type:                      strings.TrimSpace(row.ProductType),
		MaterialPrimary:           strings.TrimSpace(row.MaterialPrimary),
		MaterialSecondary:         strings.TrimSpace(row.MaterialSecondary),
		Specifications:            strings.TrimSpace(row.Specifications),
		Finishing:                 strings.TrimSpace(row.Finishing),
		ProductionVolume:          strings.TrimSpace(row.ProductionVolume),
		MadeIn:                    strings.TrimSpace(row.MadeIn),
		RecycledOrganic:           strings.TrimSpace(row.RecycledOrganic),
		RawMaterialCertifications: certs,
		Handmade:                  strings.TrimSpace(row.Handmade),
		WhiteLabel:                strings.TrimSpace(row.WhiteLabel),
		LimitedEdition:            strings.TrimSpace(row.LimitedEdition),
		Deadstock:                 strings.TrimSpace(row.Deadstock),
	}

	exhibitor := models.Exhibitor{
		Name:                  strings.TrimSpace(row.SupplierName),
		Country:               strings.TrimSpace(row.SupplierCountry),
		Focus:                 strings.TrimSpace(row.Focus),
		MainCategory:          strings.TrimSpace(row.MainCategory),
		SecondaryCategory:     strings.TrimSpace(row.SecondaryCategory),
		StandNumber:           strings.TrimSpace(row.StandNumber),
		Email:                 strings.TrimSpace(row.Email),
		CompanyCertifications: strings.TrimSpace(row.CompanyCertifications),
		IsActive:              true,
	}

	return product, exhibitor
}
