package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", 0, 100},
		{"explicit", "?skip=20&limit=50", 20, 50},
		{"negative skip", "?skip=-5", 0, 100},
		{"zero limit", "?limit=0", 0, 100},
		{"oversized limit", "?limit=10000", 0, 100},
		{"garbage", "?skip=abc&limit=xyz", 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/clients"+tc.query, nil)

			skip, limit := parsePagination(c)
			if skip != tc.wantSkip || limit != tc.wantLimit {
				t.Fatalf("parsePagination(%q) = (%d, %d), want (%d, %d)",
					tc.query, skip, limit, tc.wantSkip, tc.wantLimit)
			}
		})
	}
}
