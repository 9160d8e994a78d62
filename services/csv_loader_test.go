package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The sheet export ships a junk title line above the real header, and the
// company certifications header cell contains a literal newline.
const sampleSheet = "Exhibitors export - do not edit\n" +
	"Supplier Name,Supplier Country,Focus,Main Product Category,Stand Number,Email,\"Company Certifications \n(if applicable)\",Product type,Product Material - Main Composition,Made in,Recycled/Organic (if applicable),Raw Material Certfications (if applicable),Other Raw Material Certifications,Handmade\n" +
	"Atelier Écru,France,Womenswear,Ready-to-wear,A12,hello@ecru.fr,\"B Corp, GOTS\",Knitwear,Wool,France,Organic,GOTS,,No\n" +
	"Atelier Écru,France,Womenswear,Ready-to-wear,A12,hello@ecru.fr,\"B Corp, GOTS\",Trims,Cotton,Portugal,,Oeko-Tex,SA8000,Yes\n" +
	",,,,,,,,,,,,,\n"

func sheetServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAndCleanSheet(t *testing.T) {
	srv := sheetServer(t, sampleSheet)
	client := &http.Client{Timeout: 5 * time.Second}

	rows, err := fetchAndCleanSheet(context.Background(), client, srv.URL)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The newline-in-header cell still binds to its column.
	assert.Equal(t, "B Corp, GOTS", rows[0].CompanyCertifications)
	assert.Equal(t, "Atelier Écru", rows[0].SupplierName)
	assert.Equal(t, "Knitwear", rows[0].ProductType)
	assert.Equal(t, "SA8000", rows[1].OtherRawCertifications)
}

func TestFetchAndCleanSheetErrors(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := fetchAndCleanSheet(context.Background(), client, srv.URL)
		assert.Error(t, err)
	})
}

func TestLoadCatalogFromCSV(t *testing.T) {
	srv := sheetServer(t, sampleSheet)
	t.Setenv("CATALOG_CSV_URLS", srv.URL)

	products, exhibitors, err := LoadCatalogFromCSV(context.Background())
	require.NoError(t, err)

	// One product and one exhibitor candidate per row; dedup happens in
	// the snapshot, not the loader.
	require.Len(t, products, 2)
	require.Len(t, exhibitors, 2)

	assert.Equal(t, "Atelier Écru", products[0].SupplierName)
	assert.Equal(t, "France", exhibitors[0].Country)
	// Structured and free-text certification columns merge into one list.
	assert.Equal(t, "Oeko-Tex, SA8000", products[1].RawMaterialCertifications)
}

func TestLoadCatalogFromCSVUnset(t *testing.T) {
	t.Setenv("CATALOG_CSV_URLS", "")
	_, _, err := LoadCatalogFromCSV(context.Background())
	assert.Error(t, err)
}

func TestDropFirstLine(t *testing.T) {
	assert.Equal(t, "a,b\n1,2", dropFirstLine("junk\na,b\n1,2"))
	assert.Equal(t, "a,b", dropFirstLine("junk\r\na,b"))
	assert.Equal(t, "", dropFirstLine("only one line"))
}
