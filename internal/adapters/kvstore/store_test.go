package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plansync/internal/adapters/kvstore"
)

func TestStore_SetGet(t *testing.T) {
	s := kvstore.NewStore(t.TempDir())

	require.NoError(t, s.Set("training_plan/week/3", []byte("payload")))

	got, err := s.Get("training_plan/week/3")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestStore_Get_Absent(t *testing.T) {
	s := kvstore.NewStore(t.TempDir())

	got, err := s.Get("training_plan/week/99")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Set_Overwrites(t *testing.T) {
	s := kvstore.NewStore(t.TempDir())

	require.NoError(t, s.Set("weekly_summary/current", []byte("old")))
	require.NoError(t, s.Set("weekly_summary/current", []byte("new")))

	got, err := s.Get("weekly_summary/current")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestStore_Remove(t *testing.T) {
	s := kvstore.NewStore(t.TempDir())

	require.NoError(t, s.Set("workouts_v2/recent", []byte("x")))
	require.NoError(t, s.Remove("workouts_v2/recent"))

	got, err := s.Get("workouts_v2/recent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Remove_Absent(t *testing.T) {
	s := kvstore.NewStore(t.TempDir())
	assert.NoError(t, s.Remove("never/written"))
}

func TestStore_BucketLayout(t *testing.T) {
	root := t.TempDir()
	s := kvstore.NewStore(root)

	require.NoError(t, s.Set("training_plan/week/3", []byte("x")))

	entries, err := os.ReadDir(filepath.Join(root, "training_plan"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".dat", filepath.Ext(entries[0].Name()))
}

func TestStore_DistinctKeysDistinctFiles(t *testing.T) {
	root := t.TempDir()
	s := kvstore.NewStore(root)

	require.NoError(t, s.Set("training_plan/week/1", []byte("a")))
	require.NoError(t, s.Set("training_plan/week/2", []byte("b")))

	entries, err := os.ReadDir(filepath.Join(root, "training_plan"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	got, err := s.Get("training_plan/week/1")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, "training_plan", kvstore.BucketFor("training_plan/week/3"))
	assert.Equal(t, "weekly_summary", kvstore.BucketFor("weekly_summary/current"))
	assert.Empty(t, kvstore.BucketFor("bare"))
}
