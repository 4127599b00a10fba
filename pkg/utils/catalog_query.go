package utils

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CatalogQuery is the parsed query surface of a product listing request:
// free-text search, category filter and paging.
type CatalogQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

// GetCatalogQuery extracts and clamps catalog listing parameters from the
// request. Out-of-range paging falls back to the defaults rather than
// erroring, matching how the storefront backend treats them.
func GetCatalogQuery(c echo.Context) CatalogQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return CatalogQuery{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Page:     page,
		PageSize: pageSize,
	}
}
