// Package repositories gives each stored entity a typed home. Key names stay
// inside this package.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/storage"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Collection is an ordered list of records stored under one key.
type Collection[T models.Record] interface {
	// List returns records in insertion order.
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item T) error
	// Update replaces the record with item's id, keeping its position.
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id int64) error
	// Mutate runs fn on the current list and stores what it returns, with no
	// other mutation of this collection in between. An error from fn aborts
	// without writing.
	Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error
	Clear(ctx context.Context) error
}

type (
	EducationRepository = Collection[models.Education]
	SkillRepository     = Collection[models.Skill]
	ProjectRepository   = Collection[models.Project]
)

// KVCollection implements Collection over a storage.Gateway.
type KVCollection[T models.Record] struct {
	gw   *storage.Gateway
	key  string
	name string
	mu   sync.Mutex
}

func newKVCollection[T models.Record](gw *storage.Gateway, key, name string) *KVCollection[T] {
	return &KVCollection[T]{gw: gw, key: key, name: name}
}

// NewEducationRepository stores education records under educationData.
func NewEducationRepository(gw *storage.Gateway) *KVCollection[models.Education] {
	return newKVCollection[models.Education](gw, storage.KeyEducation, "education record")
}

// NewSkillRepository stores skills under skillsData.
func NewSkillRepository(gw *storage.Gateway) *KVCollection[models.Skill] {
	return newKVCollection[models.Skill](gw, storage.KeySkills, "skill")
}

// NewProjectRepository stores projects under projectsData.
func NewProjectRepository(gw *storage.Gateway) *KVCollection[models.Project] {
	return newKVCollection[models.Project](gw, storage.KeyProjects, "project")
}

func (c *KVCollection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := c.gw.Read(ctx, c.key, &items); err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", c.name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *KVCollection[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%s with ID %d: %w", c.name, id, ErrNotFound)
}

func (c *KVCollection[T]) Create(ctx context.Context, item T) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

func (c *KVCollection[T]) Update(ctx context.Context, item T) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if items[i].RecordID() == item.RecordID() {
				items[i] = item
				return items, nil
			}
		}
		return nil, fmt.Errorf("%s with ID %d not found for update: %w", c.name, item.RecordID(), ErrNotFound)
	})
}

func (c *KVCollection[T]) Delete(ctx context.Context, id int64) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if item.RecordID() != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil, fmt.Errorf("%s with ID %d not found for deletion: %w", c.name, id, ErrNotFound)
		}
		return kept, nil
	})
}

func (c *KVCollection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	if err := c.gw.Write(ctx, c.key, items); err != nil {
		return fmt.Errorf("failed to save %ss: %w", c.name, err)
	}
	return nil
}

func (c *KVCollection[T]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.gw.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear %ss: %w", c.name, err)
	}
	return nil
}
