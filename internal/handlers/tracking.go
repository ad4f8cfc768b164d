package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/Zachkp/portfolio/internal/services"

	"github.com/gin-gonic/gin"
)

// untracked path prefixes.
var untracked = []string{"/static/", "/images/", "/admin", "/favicon", "/healthz"}

// VisitorTracker records public page views under a salted hash of the
// client IP, so raw addresses are never stored.
type VisitorTracker struct {
	analytics *services.AnalyticsService
	salt      string
}

func NewVisitorTracker(analytics *services.AnalyticsService, salt string) *VisitorTracker {
	return &VisitorTracker{analytics: analytics, salt: salt}
}

// GenerateSalt returns a random hex salt. A new salt per process means
// visitor hashes cannot be linked across restarts.
func GenerateSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashIP is stable for one ip and salt.
func (t *VisitorTracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Middleware tracks GET page views, honouring Do Not Track.
func (t *VisitorTracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" || skipTracking(c.Request.URL.Path) {
			c.Next()
			return
		}
		t.analytics.TrackPageView(c.Request.Context(), t.HashIP(c.ClientIP()))
		c.Next()
	}
}

func skipTracking(path string) bool {
	for _, prefix := range untracked {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
