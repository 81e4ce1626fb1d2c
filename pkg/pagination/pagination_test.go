package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func paramsForQuery(t *testing.T, query string) Params {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)

	return Extract(c)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit values", "page=3&limit=10", 3, 10, 20},
		{"limit capped", "limit=500", 1, MaxLimit, 0},
		{"garbage falls back", "page=abc&limit=-2", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paramsForQuery(t, tt.query)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Skip != tt.wantSkip {
				t.Errorf("got %+v, want page=%d limit=%d skip=%d", got, tt.wantPage, tt.wantLimit, tt.wantSkip)
			}
		})
	}
}

func TestMetadataFrom(t *testing.T) {
	meta := MetadataFrom(45, Params{Page: 2, Limit: 20, Skip: 20})

	if meta.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", meta.TotalPages)
	}
	if !meta.HasNextPage || !meta.HasPrevPage {
		t.Errorf("middle page must have both neighbours: %+v", meta)
	}
}
