package storage

import "fmt"

// Open builds the Store described by cfg. A positive CacheTTL wraps the
// backend in a read-through cache.
func Open(cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Driver {
	case DriverSQLite, "":
		s, err = OpenSQLite(cfg.DSN)
	case DriverPostgres:
		s, err = OpenPostgres(cfg.DSN)
	case DriverMemory:
		s = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTL > 0 {
		s = NewCachedStore(s, cfg.CacheTTL)
	}
	return s, nil
}
