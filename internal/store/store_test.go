package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/config"
	"github.com/f3rmion/shiksha/internal/scansion"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(t *testing.T, line string) scansion.Record {
	t.Helper()
	r, err := scansion.New(config.DefaultTable()).Analyze(line)
	require.NoError(t, err)
	return r.Record(chandas.ProlongedExtended)
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	rec := record(t, "agnimIDe purohitaM")
	saved, err := s.Save(ctx, rec)
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	require.NoError(t, err)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, rec, got.Record)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))

	g, err := got.Record.Group()
	require.NoError(t, err)
	assert.Equal(t, rec.Total, g.Total())
	assert.Equal(t, rec.Pattern, g.Pattern())
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, line := range []string{"kha", "kA", "agni"} {
		_, err := s.Save(ctx, record(t, line))
		require.NoError(t, err)
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "agni", all[0].Record.Text)
	assert.Equal(t, "kha", all[2].Record.Text)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestFindPatternAndDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	a, err := s.Save(ctx, record(t, "kA"))
	require.NoError(t, err)
	_, err = s.Save(ctx, record(t, "kaM"))
	require.NoError(t, err)
	_, err = s.Save(ctx, record(t, "kha"))
	require.NoError(t, err)

	heavy, err := s.FindPattern(ctx, "G")
	require.NoError(t, err)
	assert.Len(t, heavy, 2)

	require.NoError(t, s.Delete(ctx, a.ID))
	assert.ErrorIs(t, s.Delete(ctx, a.ID), ErrNotFound)

	heavy, err = s.FindPattern(ctx, "G")
	require.NoError(t, err)
	require.Len(t, heavy, 1)
	assert.Equal(t, "kaM", heavy[0].Record.Text)
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scans.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	saved, err := s.Save(ctx, record(t, "kha"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "L", got.Record.Pattern)
}

type affected struct {
	n   int64
	err error
}

func (a affected) LastInsertId() (int64, error) { return 0, nil }
func (a affected) RowsAffected() (int64, error) { return a.n, a.err }

func TestDeletedChecksRowsAffected(t *testing.T) {
	assert.NoError(t, deleted(affected{n: 1}, "x"))
	assert.ErrorIs(t, deleted(affected{}, "x"), ErrNotFound)

	errUnsupported := errors.New("rows affected unsupported")
	err := deleted(affected{err: errUnsupported}, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnsupported)
	assert.NotErrorIs(t, err, ErrNotFound)
}
