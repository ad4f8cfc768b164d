// admin.go - admin panel and privacy-conscious visitor tracking
package main

import (
	"github.com/Zachkp/portfolio/internal/handlers"
	"github.com/Zachkp/portfolio/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newVisitorTracker salts IP hashes with a fresh per-process secret.
func newVisitorTracker(svc *services.Services, log *zap.SugaredLogger) (*handlers.VisitorTracker, error) {
	salt, err := handlers.GenerateSalt()
	if err != nil {
		return nil, err
	}
	log.Infow("privacy: visitor tracking enabled with hashed IP addresses, Do Not Track honoured")
	return handlers.NewVisitorTracker(svc.Analytics, salt), nil
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine, svc *services.Services, log *zap.SugaredLogger) {
	adminGroup := r.Group("/admin")
	handlers.NewAdminHandler(svc, log).RegisterRoutes(adminGroup)

	log.Infow("admin panel available", "path", "/admin")
	if gin.Mode() == gin.DebugMode {
		log.Warnw("admin panel has no authentication, do not expose it publicly")
	}
}
