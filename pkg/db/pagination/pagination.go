package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Info is the pagination envelope returned beside a page of rows.
type Info struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
}

// Page is a validated page request.
type Page struct {
	Number int
	Size   int
}

// Offset is the number of rows skipped before this page. It saturates at math.MaxInt.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// ErrNotPositive is returned when a page parameter is not a positive integer.
type ErrNotPositive struct {
	Field string
}

func (e *ErrNotPositive) Error() string {
	return fmt.Sprintf("%s must be a positive integer", e.Field)
}

// ParsePositive parses a page or pageSize parameter. Blank input yields def.
func ParsePositive(raw, field string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, &ErrNotPositive{Field: field}
	}
	return value, nil
}

// New builds the envelope; totalPages is 0 when there are no items.
func New(totalItems int64, page Page) Info {
	totalPages := 0
	if totalItems > 0 && page.Size > 0 {
		size := int64(page.Size)
		totalPages = int((totalItems + size - 1) / size)
	}
	return Info{
		TotalItems:  totalItems,
		CurrentPage: page.Number,
		PageSize:    page.Size,
		TotalPages:  totalPages,
	}
}

// Slice returns the rows of page from an already materialized result.
func Slice[T any](rows []T, page Page) []T {
	start := page.Offset()
	if start < 0 || start >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if page.Size > 0 && page.Size < end-start {
		end = start + page.Size
	}
	return rows[start:end]
}
