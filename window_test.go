package paginator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pg(n int) PageMarker      { return PageMarker{Number: n} }
func current(n int) PageMarker { return PageMarker{Number: n, IsCurrent: true} }
func gap() PageMarker          { return PageMarker{IsGap: true} }

func Test_PageWindow(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		delta       int
		want        []PageMarker
	}{
		{
			name:        "middle of a long listing",
			currentPage: 4,
			totalPages:  9,
			delta:       1,
			want:        []PageMarker{pg(1), gap(), pg(3), current(4), pg(5), gap(), pg(9)},
		},
		{
			name:        "single page renders nothing",
			currentPage: 1,
			totalPages:  1,
			delta:       1,
			want:        nil,
		},
		{
			name:        "first page of a long listing",
			currentPage: 1,
			totalPages:  5,
			delta:       1,
			want:        []PageMarker{current(1), pg(2), gap(), pg(5)},
		},
		{
			name:        "last page of a long listing",
			currentPage: 5,
			totalPages:  5,
			delta:       1,
			want:        []PageMarker{pg(1), gap(), pg(4), current(5)},
		},
		{
			name:        "two pages keep both",
			currentPage: 2,
			totalPages:  2,
			delta:       1,
			want:        []PageMarker{pg(1), current(2)},
		},
		{
			name:        "zero delta keeps only the current page",
			currentPage: 3,
			totalPages:  5,
			delta:       0,
			want:        []PageMarker{pg(1), gap(), current(3), gap(), pg(5)},
		},
		{
			name:        "delta covering everything has no gaps",
			currentPage: 2,
			totalPages:  3,
			delta:       5,
			want:        []PageMarker{pg(1), current(2), pg(3)},
		},
		{
			name:        "gap runs collapse to a single marker",
			currentPage: 10,
			totalPages:  20,
			delta:       2,
			want:        []PageMarker{pg(1), gap(), pg(8), pg(9), current(10), pg(11), pg(12), gap(), pg(20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageWindow(tt.currentPage, tt.totalPages, tt.delta)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_State_PageWindow(t *testing.T) {
	s := NewState[struct{}]()
	s.page = 4
	s.pageMax = 9

	require.Equal(
		t,
		[]PageMarker{pg(1), gap(), pg(3), current(4), pg(5), gap(), pg(9)},
		s.PageWindow(),
	)
}
