package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurufapp/huruf/internal/engine"
)

func calcResult(t *testing.T, text string) *engine.Result {
	t.Helper()
	result, err := engine.New(nil).Calculate(context.Background(), engine.CalculationRequest{
		Type: engine.TypeGeneral,
		Text: text,
	})
	require.NoError(t, err)
	return result
}

func tempStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.json"), maxEntries)
	require.NoError(t, err)
	return store
}

func TestAppendAndList(t *testing.T) {
	store := tempStore(t, 10)

	first := calcResult(t, "محمد")
	second := calcResult(t, "علي")
	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	entries := store.List(0)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	limited := store.List(1)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}

func TestAppendEvictsOldest(t *testing.T) {
	store := tempStore(t, 3)

	var ids []string
	for _, text := range []string{"محمد", "علي", "فاطمة", "حسن"} {
		result := calcResult(t, text)
		ids = append(ids, result.ID)
		require.NoError(t, store.Append(result))
	}

	assert.Equal(t, 3, store.Count())
	entries := store.List(0)
	assert.Equal(t, ids[3], entries[0].ID)
	assert.Equal(t, ids[1], entries[2].ID)

	// The evicted entry is gone.
	_, err := store.Get(ids[0])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendValidation(t *testing.T) {
	store := tempStore(t, 10)

	assert.Error(t, store.Append(nil))
	assert.Error(t, store.Append(&engine.Result{}))
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	store, err := NewStore(path, 10)
	require.NoError(t, err)
	result := calcResult(t, "محمد")
	require.NoError(t, store.Append(result))
	require.NoError(t, store.Save())

	reloaded, err := NewStore(path, 10)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	require.Equal(t, 1, reloaded.Count())
	entry, err := reloaded.Get(result.ID)
	require.NoError(t, err)
	assert.Equal(t, engine.TypeGeneral, entry.Type)
	assert.Equal(t, result.Core.Kabir, entry.Core.Kabir)
	require.NotNil(t, entry.GeneralInsights)
}

func TestLoadMissingFile(t *testing.T) {
	store := tempStore(t, 10)

	require.NoError(t, store.Load())
	assert.Zero(t, store.Count())
}

func TestLoadCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewStore(path, 10)
	require.NoError(t, err)
	assert.ErrorIs(t, store.Load(), ErrStoreCorrupted)
}

func TestLoadUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "entries": []}`), 0o600))

	store, err := NewStore(path, 10)
	require.NoError(t, err)
	assert.ErrorIs(t, store.Load(), ErrStoreCorrupted)
}

func TestGetByPrefix(t *testing.T) {
	store := tempStore(t, 10)
	result := calcResult(t, "محمد")
	require.NoError(t, store.Append(result))

	entry, err := store.Get(result.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, result.ID, entry.ID)

	_, err = store.Get("zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByType(t *testing.T) {
	store := tempStore(t, 10)
	require.NoError(t, store.Append(calcResult(t, "محمد")))

	nameResult, err := engine.New(nil).Calculate(context.Background(), engine.CalculationRequest{
		Type: engine.TypeName,
		Name: "علي",
	})
	require.NoError(t, err)
	require.NoError(t, store.Append(nameResult))

	names := store.ListByType(engine.TypeName, 0)
	require.Len(t, names, 1)
	assert.Equal(t, nameResult.ID, names[0].ID)

	assert.Empty(t, store.ListByType(engine.TypeQuran, 0))
}

func TestClear(t *testing.T) {
	store := tempStore(t, 10)
	require.NoError(t, store.Append(calcResult(t, "محمد")))

	store.Clear()
	assert.Zero(t, store.Count())
	require.NoError(t, store.Save())

	reloaded, err := NewStore(store.FilePath(), 10)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Zero(t, reloaded.Count())
}
