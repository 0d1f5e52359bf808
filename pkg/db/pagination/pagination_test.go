package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositive(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr string
	}{
		{raw: "", want: 10},
		{raw: "3", want: 3},
		{raw: " 7 ", want: 7},
		{raw: "0", wantErr: "page must be a positive integer"},
		{raw: "-1", wantErr: "page must be a positive integer"},
		{raw: "abc", wantErr: "page must be a positive integer"},
		{raw: "1.5", wantErr: "page must be a positive integer"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePositive(tt.raw, "page", 10)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePositiveNamesField(t *testing.T) {
	_, err := ParsePositive("0", "pageSize", 10)
	assert.EqualError(t, err, "pageSize must be a positive integer")
}

func TestNewTotalPages(t *testing.T) {
	assert.Equal(t, Info{TotalItems: 0, CurrentPage: 1, PageSize: 10, TotalPages: 0}, New(0, Page{Number: 1, Size: 10}))
	assert.Equal(t, 6, New(27, Page{Number: 1, Size: 5}).TotalPages)
	assert.Equal(t, 1, New(5, Page{Number: 1, Size: 5}).TotalPages)
	assert.Equal(t, 2, New(6, Page{Number: 2, Size: 5}).TotalPages)
}

func TestSlice(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{1, 2, 3}, Slice(rows, Page{Number: 1, Size: 3}))
	assert.Equal(t, []int{7}, Slice(rows, Page{Number: 3, Size: 3}))
	assert.Equal(t, []int{}, Slice(rows, Page{Number: 4, Size: 3}))
	assert.Equal(t, 3, Page{Number: 2, Size: 3}.Offset())
}

func TestSliceHugePage(t *testing.T) {
	number, err := ParsePositive("4611686018427387905", "page", 1)
	assert.NoError(t, err)

	page := Page{Number: number, Size: 2}
	assert.Equal(t, math.MaxInt, page.Offset())
	assert.NotPanics(t, func() {
		assert.Equal(t, []int{}, Slice([]int{1, 2, 3}, page))
	})
	assert.Equal(t, []int{}, Slice([]int{1, 2, 3}, Page{Number: math.MaxInt, Size: math.MaxInt}))
	assert.Equal(t, []int{1, 2, 3}, Slice([]int{1, 2, 3}, Page{Number: 1, Size: math.MaxInt}))
}
