package usecase

import "testing"

func TestPageRequest_Valid(t *testing.T) {
	cases := []struct {
		name string
		req  PageRequest
		want bool
	}{
		{"first page", PageRequest{Page: 0, Size: 20}, true},
		{"later page", PageRequest{Page: 7, Size: 5}, true},
		{"negative page", PageRequest{Page: -1, Size: 20}, false},
		{"zero size", PageRequest{Page: 0, Size: 0}, false},
		{"negative size", PageRequest{Page: 0, Size: -5}, false},
	}
	for _, tc := range cases {
		if got := tc.req.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPageInfo_TotalPages(t *testing.T) {
	if got := (PageInfo{Page: 0, Size: 20, Total: 45}).TotalPages(); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := (PageInfo{Page: 0, Size: 20, Total: 40}).TotalPages(); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}
	if got := (PageInfo{Page: 0, Size: 20, Total: 0}).TotalPages(); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
}

func TestPageInfo_EmptyResultIsFirstAndLast(t *testing.T) {
	p := PageInfo{Page: 0, Size: 20, Total: 0}
	if !p.First() || !p.Last() {
		t.Fatalf("an empty result set is both first and last")
	}
}

func TestPageInfo_BeyondLastPage(t *testing.T) {
	p := PageInfo{Page: 9, Size: 20, Total: 45}
	if p.First() {
		t.Fatalf("page 9 is not first")
	}
	if !p.Last() {
		t.Fatalf("a page past the end reports last")
	}
}
