package repository

import "testing"

func TestPageBounds(t *testing.T) {
	cases := []struct {
		page          Page
		limit, offset int
	}{
		{Page{}, 0, 0},
		{Page{Page: 0, PageSize: 20}, 20, 0},
		{Page{Page: 3, PageSize: 20}, 20, 40},
		{Page{Page: 2, PageSize: 500}, maxPageSize, maxPageSize},
	}
	for _, tc := range cases {
		limit, offset := tc.page.bounds()
		if limit != tc.limit || offset != tc.offset {
			t.Fatalf("%+v: want %d/%d got %d/%d", tc.page, tc.limit, tc.offset, limit, offset)
		}
	}
}
