package listmanager

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

func TestPaginateThirdPageOfTwentyFive(t *testing.T) {
	view := coords(1, 25)
	got := Paginate(view, 3, 10)
	assert.Equal(t, []int64{21, 22, 23, 24, 25}, ids(got))
}

func TestPaginate(t *testing.T) {
	view := coords(1, 25)
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int64
	}{
		{"first page", 1, 10, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"past the end is empty", 4, 10, []int64{}},
		{"far past the end is empty", 1000, 10, []int64{}},
		{"page whose offset overflows is empty", math.MaxInt/10 + 1, 10, []int64{}},
		{"largest page is empty", math.MaxInt, 10, []int64{}},
		{"page zero is empty", 0, 10, []int64{}},
		{"zero page size is empty", 1, 0, []int64{}},
		{"page size larger than view", 1, 100, ids(coords(1, 25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Paginate(view, tt.page, tt.pageSize)))
		})
	}
}

func TestPagesReconstructView(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30} {
		for _, size := range []int{1, 3, 10, 40} {
			view := coords(1, n)
			var all []types.Record
			pages := PageCount(len(view), size)
			for p := 1; p <= pages; p++ {
				page := Paginate(view, p, size)
				assert.LessOrEqual(t, len(page), size)
				assert.NotEmpty(t, page)
				all = append(all, page...)
			}
			assert.Equal(t, ids(view), ids(all), "n=%d size=%d", n, size)
			assert.Empty(t, Paginate(view, pages+1, size))
		}
	}
}

func TestPaginateReturnsCopy(t *testing.T) {
	view := coords(1, 5)
	page := Paginate(view, 1, 2)
	page[0] = nil
	assert.NotNil(t, view[0])
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 3, PageCount(25, 10))
	assert.Equal(t, 0, PageCount(5, 0))
	assert.Equal(t, 1, PageCount(5, math.MaxInt))
}
