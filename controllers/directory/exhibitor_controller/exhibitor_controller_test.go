package exhibitor_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filter_cache "github.com/gabin-cxmp/sourcing/cache"
	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New(catalog.NewSnapshot(
		[]models.Product{
			{SupplierName: "Atelier Écru", Type: "Knitwear", MadeIn: "France", Handmade: "Yes"},
			{SupplierName: "Noir Studio", Type: "Leather bags", MadeIn: "Italy"},
		},
		[]models.Exhibitor{
			{Name: "Atelier Écru", Country: "France", MainCategory: "Ready-to-wear", StandNumber: "A12", IsActive: true},
			{Name: "Noir Studio", Country: "Italy", MainCategory: "Bags / Leather goods", IsActive: true},
		},
	))

	filter_cache.Invalidate()
	t.Cleanup(filter_cache.Invalidate)

	router := gin.New()
	group := router.Group("/api/v1/exhibitors")
	group.GET("", GetExhibitors(cat))
	group.GET("/detail", GetExhibitorDetail(cat))
	group.GET("/filters", GetFilters(cat))
	group.GET("/export", ExportExhibitorsPDF(cat))
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetExhibitors(t *testing.T) {
	router := testRouter(t)

	t.Run("lists all by default", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors")
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 2, resp.Meta.Total)
		assert.Equal(t, 1, resp.Meta.TotalPages)
		// One page only: no pagination controls.
		assert.Nil(t, resp.Meta.Window)
	})

	t.Run("search filters the list", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors?q=ecru")
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Meta.Total)
	})

	t.Run("comma-separated checkbox params", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors?category=Ready-to-wear,Jewellery")
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Meta.Total)
	})
}

func TestGetExhibitorDetail(t *testing.T) {
	router := testRouter(t)

	t.Run("resolves an encoded name", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors/detail?supplier-name=Atelier%20%C3%89cru")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors/detail")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors/detail?supplier-name=Nobody")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetFilters(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/exhibitors/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.FilterGroup `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)

	// Cached on second call: same payload.
	w2 := doGet(router, "/api/v1/exhibitors/filters")
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func TestExportExhibitorsPDF(t *testing.T) {
	router := testRouter(t)

	t.Run("rejected without an enabling selection", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors/export")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected when the selection matches nothing", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors/export?q=zzzz")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns a PDF for an enabled selection", func(t *testing.T) {
		w := doGet(router, "/api/v1/exhibitors/export?sustainability=handmade")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		// A successful export is never an empty attachment.
		require.Greater(t, w.Body.Len(), 4)
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})
}

func TestGenerateExhibitorsPDF(t *testing.T) {
	buf, err := generateExhibitorsPDF([]models.Exhibitor{
		{Name: "Atelier Écru", Country: "France", MainCategory: "Ready-to-wear", StandNumber: "A12"},
	})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
