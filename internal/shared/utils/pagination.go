package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"lineup/internal/shared/constants"
)

// Pagination holds normalized page and page size values.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination clamps raw values into range. Page floors at
// DefaultPage; PageSize floors at DefaultPageSize and caps at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}

	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParsePagination reads page and page_size from the query string and
// normalizes them through ValidatePagination. Absent or malformed
// values fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		queryInt(c, "page"),
		queryInt(c, "page_size"),
	)
}

// queryInt returns the integer value of a query parameter, or zero when
// the parameter is absent or not a number.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// TotalPages returns the page count for a result set. An empty result
// still has one page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
