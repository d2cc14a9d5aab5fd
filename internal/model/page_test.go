package model

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		docs       int
		total      int64
		page       int
		limit      int
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{"empty", 0, 0, 1, 10, 0, false, false},
		{"single page", 3, 3, 1, 10, 1, false, false},
		{"first of many", 10, 25, 1, 10, 3, true, false},
		{"middle", 10, 25, 2, 10, 3, true, true},
		{"last partial", 5, 25, 3, 10, 3, false, true},
		{"exact boundary", 10, 20, 2, 10, 2, false, true},
		{"past the end", 0, 5, 3, 10, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := make([]int, tt.docs)
			p := NewPage(docs, tt.total, tt.page, tt.limit)

			if p.TotalPages != tt.totalPages {
				t.Errorf("totalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNextPage != tt.hasNext {
				t.Errorf("hasNextPage = %v, want %v", p.HasNextPage, tt.hasNext)
			}
			if p.HasPrevPage != tt.hasPrev {
				t.Errorf("hasPrevPage = %v, want %v", p.HasPrevPage, tt.hasPrev)
			}
			if p.TotalDocs != tt.total || p.Page != tt.page || p.Limit != tt.limit {
				t.Errorf("echoed fields = (%d, %d, %d), want (%d, %d, %d)",
					p.TotalDocs, p.Page, p.Limit, tt.total, tt.page, tt.limit)
			}
		})
	}
}

func TestNewPageNilDocs(t *testing.T) {
	p := NewPage[int](nil, 0, 1, 10)
	if p.Docs == nil {
		t.Error("docs should be an empty slice, not nil")
	}
}
