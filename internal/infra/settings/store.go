// Package settings persists application preferences as a JSON document so
// they survive restarts and are shared by every client of the service.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"anostudio/internal/domain"
	"anostudio/internal/infra"
	"anostudio/internal/sqlinline"
)

const defaultScope = "app"

type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

// Load returns the stored settings, or the defaults when nothing has been
// saved yet. Loaded settings are normalized so an old or hand-edited row
// cannot inject out-of-range values.
func (s *Store) Load(ctx context.Context) (domain.AppSettings, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectAppSettings, defaultScope)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if infra.IsNoRows(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.AppSettings{}, fmt.Errorf("load settings: %w", err)
	}
	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.AppSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings.Normalize(), nil
}

// Save normalizes and upserts the settings document.
func (s *Store) Save(ctx context.Context, settings domain.AppSettings) (domain.AppSettings, error) {
	settings = settings.Normalize()
	raw, err := json.Marshal(settings)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("encode settings: %w", err)
	}
	if _, err := s.sql.Exec(ctx, sqlinline.QUpsertAppSettings, defaultScope, raw); err != nil {
		return domain.AppSettings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
