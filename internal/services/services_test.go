package services_test

import (
	"context"
	"testing"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/services"
	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *storage.MemoryStore
	gw    *storage.Gateway
	svc   *services.Services
}

func newFixture(t *testing.T, opts services.Options) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	gw := storage.NewGateway(store)
	return &fixture{store: store, gw: gw, svc: services.New(gw, opts)}
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"me@example.com", true},
		{"a.b@c.co.uk", true},
		{"no-at-sign.com", false},
		{"two@@example.com", false},
		{"me@localhost", false},
		{"spaces in@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, services.IsValidEmail(tt.email))
		})
	}
}

func TestAnalytics_FailureDoesNotFailAction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, services.Options{})
	require.NoError(t, f.store.Put(ctx, storage.KeyAnalytics, []byte("{broken")))

	n, err := f.svc.Education.Submit(ctx, services.EducationInput{Degree: "B.Sc.", Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, notify.Success, n.Level)

	items, err := f.svc.Education.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDashboard_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, services.Options{})

	_, err := f.svc.Education.Submit(ctx, services.EducationInput{Degree: "B.Sc.", Status: "completed"})
	require.NoError(t, err)
	_, err = f.svc.Skills.Submit(ctx, services.SkillInput{Name: "Go", Category: "programming", Level: 80, Status: "learning"})
	require.NoError(t, err)
	f.svc.Analytics.TrackPageView(ctx, "visitor-a")
	f.svc.Analytics.TrackPageView(ctx, "visitor-a")
	f.svc.Analytics.TrackPageView(ctx, "visitor-b")

	stats, err := f.svc.Dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalEducation)
	assert.Equal(t, 1, stats.TotalSkills)
	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.TotalMessages)
	assert.Equal(t, 5, stats.TotalEvents)
	assert.Equal(t, 3, stats.PageViews)
	assert.Equal(t, 2, stats.UniqueVisitors)
	assert.True(t, stats.LastUpdated.IsZero())
	require.Len(t, stats.RecentEvents, 5)
	assert.Equal(t, "visitor-b", stats.RecentEvents[0].Label)
	assert.Equal(t, "education_added", stats.RecentEvents[4].Action)
}
