package views

import (
	"fmt"
	"math"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
)

type Dashboard struct {
	Stats       models.AdminStats
	LastUpdated string
}

func NewDashboard(stats models.AdminStats, now time.Time) Dashboard {
	return Dashboard{Stats: stats, LastUpdated: RelativeDate(stats.LastUpdated, now)}
}

// RelativeDate describes t relative to now in whole days, rounding up.
func RelativeDate(t, now time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	switch {
	case days <= 1:
		return "Today"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}
