package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"anostudio/internal/domain"
)

type stubExecutor struct {
	payload []byte
	err     error
	exec    struct {
		query string
		args  []any
	}
}

func (s *stubExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.exec.query = query
	s.exec.args = args
	return pgconn.CommandTag{}, s.err
}

func (s *stubExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return stubRow{payload: s.payload, err: s.err}
}

func (s *stubExecutor) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

type stubRow struct {
	payload []byte
	err     error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	ptr, ok := dest[0].(*[]byte)
	if !ok {
		return errors.New("invalid dest")
	}
	*ptr = r.payload
	return nil
}

func TestLoadReturnsDefaultsWhenUnset(t *testing.T) {
	store := NewStore(&stubExecutor{err: pgx.ErrNoRows})
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != domain.DefaultSettings() {
		t.Fatalf("settings = %+v", got)
	}
}

func TestLoadNormalizesStoredValues(t *testing.T) {
	store := NewStore(&stubExecutor{payload: []byte(`{"theme":"neon","language":"fr","numberOfResults":9}`)})
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Theme != "dark" || got.Language != "id" || got.NumberOfResults != 4 {
		t.Fatalf("settings not normalized: %+v", got)
	}
}

func TestSaveNormalizesBeforeWriting(t *testing.T) {
	exec := &stubExecutor{}
	store := NewStore(exec)
	saved, err := store.Save(context.Background(), domain.AppSettings{Theme: "light", Language: "en", NumberOfResults: 7})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.NumberOfResults != 4 {
		t.Fatalf("NumberOfResults = %d", saved.NumberOfResults)
	}
	if len(exec.exec.args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(exec.exec.args))
	}
}
