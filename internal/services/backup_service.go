package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/hashicorp/go-multierror"
)

// Backup scopes.
const (
	ScopeAll       = "all"
	ScopePortfolio = "portfolio"
	ScopeEducation = "education"
	ScopeSkills    = "skills"
	ScopeProjects  = "projects"
)

// ErrUnknownScope is returned for a scope not listed above.
var ErrUnknownScope = errors.New("unknown scope")

type scopeEntry struct {
	key   string
	empty string
}

var scopes = map[string]scopeEntry{
	ScopePortfolio: {storage.KeyPortfolio, "{}"},
	ScopeEducation: {storage.KeyEducation, "[]"},
	ScopeSkills:    {storage.KeySkills, "[]"},
	ScopeProjects:  {storage.KeyProjects, "[]"},
}

// BackupService exports, imports and clears stored data as raw JSON.
type BackupService struct {
	gw        *storage.Gateway
	analytics *AnalyticsService
	now       func() time.Time
}

func NewBackupService(gw *storage.Gateway, analytics *AnalyticsService) *BackupService {
	return &BackupService{gw: gw, analytics: analytics, now: time.Now}
}

// Export returns the backup document for scope and its download filename.
func (s *BackupService) Export(ctx context.Context, scope string) ([]byte, string, error) {
	if scope == ScopeAll {
		data, err := s.exportAll(ctx)
		if err != nil {
			return nil, "", err
		}
		s.analytics.Track(ctx, "data_exported", CategoryAdmin, "")
		return data, "portfolio-backup.json", nil
	}

	entry, ok := scopes[scope]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	raw, err := s.read(ctx, entry)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, "", err
	}
	s.analytics.Track(ctx, scope+"_exported", CategoryAdmin, "")
	return buf.Bytes(), scope + "-data.json", nil
}

func (s *BackupService) exportAll(ctx context.Context) ([]byte, error) {
	var b models.Backup
	fields := []struct {
		scope string
		dst   *json.RawMessage
	}{
		{ScopePortfolio, &b.Portfolio},
		{ScopeEducation, &b.Education},
		{ScopeSkills, &b.Skills},
		{ScopeProjects, &b.Projects},
	}
	for _, f := range fields {
		raw, err := s.read(ctx, scopes[f.scope])
		if err != nil {
			return nil, err
		}
		*f.dst = raw
	}
	b.ExportDate = s.now().UTC().Format(time.RFC3339)
	return json.MarshalIndent(b, "", "  ")
}

func (s *BackupService) read(ctx context.Context, entry scopeEntry) (json.RawMessage, error) {
	raw, found, err := s.gw.ReadRaw(ctx, entry.key)
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", entry.key, err)
	}
	if !found {
		return json.RawMessage(entry.empty), nil
	}
	return raw, nil
}

// Import restores a full backup. Each field present overwrites its key as
// is; absent or null fields are left alone. Malformed input changes nothing.
func (s *BackupService) Import(ctx context.Context, data []byte) (notify.Notification, error) {
	var b models.Backup
	if !isObject(data) || json.Unmarshal(data, &b) != nil {
		return notify.New(notify.Error, "Invalid JSON file. Please check the file format."), nil
	}

	fields := []struct {
		key string
		raw json.RawMessage
	}{
		{storage.KeyPortfolio, b.Portfolio},
		{storage.KeyEducation, b.Education},
		{storage.KeySkills, b.Skills},
		{storage.KeyProjects, b.Projects},
	}
	for _, f := range fields {
		if len(f.raw) == 0 || string(f.raw) == "null" {
			continue
		}
		if err := s.gw.WriteRaw(ctx, f.key, f.raw); err != nil {
			return notify.Notification{}, fmt.Errorf("failed to import %s: %w", f.key, err)
		}
	}

	s.analytics.Track(ctx, "data_imported", CategoryAdmin, "")
	return notify.New(notify.Success, "Data imported successfully!"), nil
}

// isObject reports whether data holds a JSON object rather than null, an
// array or a scalar.
func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// Clear deletes one scope, or every primary key for ScopeAll.
func (s *BackupService) Clear(ctx context.Context, scope string) (notify.Notification, error) {
	if scope == ScopeAll {
		var result *multierror.Error
		for _, key := range storage.PrimaryKeys {
			if err := s.gw.Delete(ctx, key); err != nil {
				result = multierror.Append(result, fmt.Errorf("failed to clear %s: %w", key, err))
			}
		}
		if err := result.ErrorOrNil(); err != nil {
			return notify.Notification{}, err
		}
		s.analytics.Track(ctx, "all_data_cleared", CategoryAdmin, "")
		return notify.New(notify.Success, "All data cleared successfully!"), nil
	}

	entry, ok := scopes[scope]
	if !ok {
		return notify.Notification{}, fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	if err := s.gw.Delete(ctx, entry.key); err != nil {
		return notify.Notification{}, fmt.Errorf("failed to clear %s: %w", entry.key, err)
	}
	s.analytics.Track(ctx, scope+"_cleared", CategoryAdmin, "")
	return notify.New(notify.Success, "All "+scope+" records cleared!"), nil
}
