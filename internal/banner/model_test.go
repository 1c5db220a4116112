// File: internal/banner/model_test.go
package banner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisibleAt(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	cases := []struct {
		name    string
		banner  PromoBanner
		visible bool
	}{
		{"inactive never shows", PromoBanner{IsActive: false}, false},
		{"no bounds always shows", PromoBanner{IsActive: true}, true},
		{"inside window", PromoBanner{IsActive: true, StartDate: &before, EndDate: &after}, true},
		{"before start", PromoBanner{IsActive: true, StartDate: &after}, false},
		{"after end", PromoBanner{IsActive: true, EndDate: &before}, false},
		{"open start", PromoBanner{IsActive: true, EndDate: &after}, true},
		{"open end", PromoBanner{IsActive: true, StartDate: &before}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.visible, tc.banner.VisibleAt(now))
		})
	}
}
