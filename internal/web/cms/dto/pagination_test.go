package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		page       int
		limit      int
		totalCount int64
		want       Pagination
	}{
		{"empty result", 1, 10, 0,
			Pagination{CurrentPage: 1, TotalPages: 0, TotalCount: 0}},
		{"exact fit", 1, 10, 10,
			Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 10}},
		{"partial last page", 1, 10, 11,
			Pagination{CurrentPage: 1, TotalPages: 2, TotalCount: 11, HasNext: true}},
		{"middle page", 2, 10, 30,
			Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 30, HasNext: true, HasPrev: true}},
		{"last page", 3, 10, 30,
			Pagination{CurrentPage: 3, TotalPages: 3, TotalCount: 30, HasPrev: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NewPagination(tc.page, tc.limit, tc.totalCount))
		})
	}
}

func TestListOptsSkip(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(0), ListOpts{Page: 1, Limit: 10}.Skip())
	require.Equal(t, int64(10), ListOpts{Page: 2, Limit: 10}.Skip())
	require.Equal(t, int64(50), ListOpts{Page: 6, Limit: 10}.Skip())
}
