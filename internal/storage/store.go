// Package storage holds the key-value store behind every portfolio record.
//
// Each top-level record lives as one JSON document under a fixed key. Store
// is the raw byte contract implemented by the sqlite, GORM and in-memory
// backends; Gateway layers JSON encoding on top of it.
package storage

import (
	"context"
	"errors"
	"time"
)

// Fixed storage keys.
const (
	KeyPortfolio  = "portfolioData"
	KeyEducation  = "educationData"
	KeySkills     = "skillsData"
	KeyProjects   = "projectsData"
	KeyAnalytics  = "portfolioAnalytics"
	KeyMessages   = "contactMessages"
	KeyAppearance = "appearanceSettings"
)

// PrimaryKeys are the keys covered by a full backup and by clear-all.
var PrimaryKeys = []string{KeyPortfolio, KeyEducation, KeySkills, KeyProjects}

var (
	// ErrNotFound is returned by Store.Get when the key has never been written.
	ErrNotFound = errors.New("storage: key not found")
	// ErrCorrupt is returned when a stored value is not valid JSON.
	ErrCorrupt = errors.New("storage: stored value is not valid JSON")
)

// Store is a persistent key-value store of raw documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config selects and configures a Store backend.
type Config struct {
	Driver   string
	DSN      string
	CacheTTL time.Duration
}

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)
