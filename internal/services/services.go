// Package services holds the form controllers: each one trims and validates
// a submission, applies it to storage and reports the outcome as a
// notification. Validation failures are outcomes, not errors; an error is
// returned only when storage itself fails.
package services

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Services bundles every controller the HTTP layer needs.
type Services struct {
	Analytics  *AnalyticsService
	Dashboard  *DashboardService
	Profile    *ProfileService
	Education  *EducationService
	Skills     *SkillService
	Projects   *ProjectService
	Messages   *MessageService
	Appearance *AppearanceService
	Backup     *BackupService
}

// Options tunes optional behaviour of New.
type Options struct {
	Logger *zap.SugaredLogger
	// Notifier is told about new contact messages. Nil disables it.
	Notifier Notifier
	// ContactDelay is waited before a contact message is accepted.
	ContactDelay time.Duration
}

// New wires repositories over gw into the full set of services.
func New(gw *storage.Gateway, opts Options) *Services {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	education := repositories.NewEducationRepository(gw)
	skills := repositories.NewSkillRepository(gw)
	projects := repositories.NewProjectRepository(gw)
	portfolio := repositories.NewPortfolioRepository(gw)
	messages := repositories.NewMessageRepository(gw)

	analytics := NewAnalyticsService(repositories.NewAnalyticsRepository(gw), log)

	return &Services{
		Analytics:  analytics,
		Dashboard:  NewDashboardService(analytics, portfolio, education, skills, projects, messages),
		Profile:    NewProfileService(portfolio, analytics),
		Education:  NewEducationService(education, analytics),
		Skills:     NewSkillService(skills, analytics),
		Projects:   NewProjectService(projects, analytics),
		Messages:   NewMessageService(messages, analytics, opts.Notifier, opts.ContactDelay, log),
		Appearance: NewAppearanceService(repositories.NewAppearanceRepository(gw), analytics),
		Backup:     NewBackupService(gw, analytics),
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail applies the loose something@something.tld shape check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

var validate = validator.New()

// validationNotice turns a validator error into the user-facing message:
// missingMsg when a required field is empty, a generic one otherwise.
func validationNotice(err error, missingMsg string) notify.Notification {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			if e.Tag() == "required" {
				return notify.New(notify.Error, missingMsg)
			}
		}
		return notify.New(notify.Error, "Please choose a valid "+strings.ToLower(verrs[0].Field()))
	}
	return notify.New(notify.Error, missingMsg)
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// idGenerator hands out creation-time ids in milliseconds, shared by all
// collections so an id is never reused across them.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

var recordIDs idGenerator

func (g *idGenerator) next(now time.Time) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}
