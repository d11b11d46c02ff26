package paginator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_State_Builders(t *testing.T) {
	s := NewState[tBook]().
		WithPerPageItems(5, 10, PerPageAll).
		WithColumns(ColumnMapping{"title": "books.title"}).
		WithExpand("Author").
		WithToggledOrder("title").
		WithFilter("title", "go").
		WithPage(4)

	require.Equal(t, &OrderBy{Column: "title", Direction: DirectionASC}, s.GetOrder())
	require.Equal(t, Filters{{Field: "title", Value: "go"}}, s.GetFilters())
	require.Equal(t, 4, s.GetPage())
	require.Equal(t, []int{5, 10, PerPageAll}, s.GetPerPageItems())
	require.Equal(t, 5, s.GetPerPage(), "unchosen page size resolves to the first choice")
}

func Test_State_PerPageDefault(t *testing.T) {
	require.Equal(t, DefaultPerPage, NewState[tBook]().GetPerPage(),
		"no choices at all resolves to DefaultPerPage")

	s := NewState[tBook]().WithPerPage(25)
	require.Equal(t, 25, s.GetPerPage())
}

func Test_State_BuildersDoNotMutateReceiver(t *testing.T) {
	s := NewState[tBook]().WithFilter("title", "go").WithPage(2)

	_ = s.WithToggledOrder("title")
	_ = s.WithFilter("title", "changed")
	_ = s.WithPerPage(50)
	_ = s.WithoutOrder()

	require.Nil(t, s.GetOrder())
	require.Equal(t, Filters{{Field: "title", Value: "go"}}, s.GetFilters())
	require.Equal(t, 2, s.GetPage())
}

func Test_State_NilReceiver(t *testing.T) {
	var s *State[tBook]

	require.Equal(t, 1, s.GetPage())
	require.Equal(t, 1, s.GetPageMax())
	require.Equal(t, DefaultPerPage, s.GetPerPage())
	require.Nil(t, s.GetOrder())
	require.Nil(t, s.GetData())
	require.False(t, s.HasPrevPage())
	require.False(t, s.HasNextPage())

	require.Equal(t, 3, s.WithPage(3).GetPage(), "builders start from a fresh state")
}

func Test_State_PrevNext(t *testing.T) {
	s := NewState[tBook]()
	s.page = 2
	s.pageMax = 3

	require.True(t, s.HasPrevPage())
	require.True(t, s.HasNextPage())

	s.page = 3
	require.False(t, s.HasNextPage())

	s.page = 1
	require.False(t, s.HasPrevPage())
}
