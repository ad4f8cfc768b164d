package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_ReadWrite(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewGateway(storage.NewMemoryStore())

	var items []string
	found, err := gw.Read(ctx, storage.KeySkills, &items)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)

	require.NoError(t, gw.Write(ctx, storage.KeySkills, []string{"go", "sql"}))
	found, err = gw.Read(ctx, storage.KeySkills, &items)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"go", "sql"}, items)
}

func TestGateway_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Put(ctx, storage.KeyProjects, []byte(`[{"id":`)))
	gw := storage.NewGateway(store)

	var items []map[string]any
	_, err := gw.Read(ctx, storage.KeyProjects, &items)
	assert.ErrorIs(t, err, storage.ErrCorrupt)

	_, _, err = gw.ReadRaw(ctx, storage.KeyProjects)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestGateway_WrongShapeIsCorrupt(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewGateway(storage.NewMemoryStore())
	require.NoError(t, gw.WriteRaw(ctx, storage.KeyEducation, json.RawMessage(`{"not":"a list"}`)))

	var items []map[string]any
	_, err := gw.Read(ctx, storage.KeyEducation, &items)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestGateway_WriteRawCompacts(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	gw := storage.NewGateway(store)

	require.NoError(t, gw.WriteRaw(ctx, storage.KeyPortfolio, json.RawMessage("{\n  \"name\": \"Ada\"\n}")))
	got, err := store.Get(ctx, storage.KeyPortfolio)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ada"}`, string(got))

	assert.ErrorIs(t, gw.WriteRaw(ctx, storage.KeyPortfolio, json.RawMessage(`{`)), storage.ErrCorrupt)
}
