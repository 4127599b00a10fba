package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func catalogQueryFor(target string) CatalogQuery {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return GetCatalogQuery(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetCatalogQueryDefaults(t *testing.T) {
	q := catalogQueryFor("/api/products")

	assert.Equal(t, CatalogQuery{Page: 1, PageSize: 20}, q)
}

func TestGetCatalogQueryParsesFilters(t *testing.T) {
	q := catalogQueryFor("/api/products?search=mug%20&category=home&page=3&limit=5")

	assert.Equal(t, "mug", q.Search)
	assert.Equal(t, "home", q.Category)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 5, q.PageSize)
}

func TestGetCatalogQueryClampsPaging(t *testing.T) {
	q := catalogQueryFor("/api/products?page=-2&limit=9999")

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
}
