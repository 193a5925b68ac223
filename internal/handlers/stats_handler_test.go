package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"jobboard/internal/services"
)

type mockStatsService struct {
	getStatsFn func() (*services.Stats, error)
}

func (m *mockStatsService) GetStats() (*services.Stats, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn()
	}
	return &services.Stats{}, nil
}

var _ services.StatsServicer = (*mockStatsService)(nil)

func TestStatsHandler_GetStats(t *testing.T) {
	t.Run("returns 200 with counters", func(t *testing.T) {
		svc := &mockStatsService{
			getStatsFn: func() (*services.Stats, error) {
				return &services.Stats{Advertisements: 12, Companies: 4}, nil
			},
		}
		handler := NewStatsHandler(svc)
		r := gin.New()
		r.GET("/stats", handler.GetStats)

		rec := doRequest(r, "GET", "/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["advertisements"].(float64) != 12 {
			t.Errorf("expected 12 advertisements, got %v", result["advertisements"])
		}
		if result["companies"].(float64) != 4 {
			t.Errorf("expected 4 companies, got %v", result["companies"])
		}
	})
}
