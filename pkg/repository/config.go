package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/callscope/pkg/domain"
)

// ConfigRepository stores the current call configuration
type ConfigRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// configSQL represents the call configuration row
type configSQL struct {
	ID                int64     `db:"id"`
	Method            string    `db:"method"`
	Script            string    `db:"script"`
	VoiceSettings     string    `db:"voice_settings"`
	CallSettings      string    `db:"call_settings"`
	AssistantSettings string    `db:"assistant_settings"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(db *sqlx.DB) *ConfigRepository {
	return &ConfigRepository{db: db, now: time.Now}
}

// GetConfig returns the current configuration, nil without error if none was saved yet
func (r *ConfigRepository) GetConfig(ctx context.Context) (*domain.CallConfig, error) {
	var row configSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM call_configs WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get call config: %w", err)
	}
	return row.toDomain()
}

// SaveConfig replaces the current configuration wholesale and returns the stored value
func (r *ConfigRepository) SaveConfig(ctx context.Context, cfg domain.CallConfig) (*domain.CallConfig, error) {
	voice, err := json.Marshal(cfg.Voice)
	if err != nil {
		return nil, fmt.Errorf("marshal voice settings: %w", err)
	}
	call, err := json.Marshal(cfg.Call)
	if err != nil {
		return nil, fmt.Errorf("marshal call settings: %w", err)
	}
	assistant := ""
	if cfg.Assistant != nil {
		data, err := json.Marshal(cfg.Assistant)
		if err != nil {
			return nil, fmt.Errorf("marshal assistant settings: %w", err)
		}
		assistant = string(data)
	}

	now := r.now().UTC()
	query := `
		INSERT INTO call_configs (id, method, script, voice_settings, call_settings, assistant_settings, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			method = excluded.method,
			script = excluded.script,
			voice_settings = excluded.voice_settings,
			call_settings = excluded.call_settings,
			assistant_settings = excluded.assistant_settings,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, string(cfg.Method), cfg.Script, string(voice), string(call),
		assistant, now, now); err != nil {
		return nil, fmt.Errorf("save call config: %w", err)
	}

	return r.GetConfig(ctx)
}

// DeleteConfig removes the stored configuration, used by clear-all
func (r *ConfigRepository) DeleteConfig(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM call_configs"); err != nil {
		return fmt.Errorf("delete call config: %w", err)
	}
	return nil
}

func (c *configSQL) toDomain() (*domain.CallConfig, error) {
	res := &domain.CallConfig{
		Method:    domain.CallMethod(c.Method),
		Script:    c.Script,
		UpdatedAt: c.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(c.VoiceSettings), &res.Voice); err != nil {
		return nil, fmt.Errorf("unmarshal voice settings: %w", err)
	}
	if err := json.Unmarshal([]byte(c.CallSettings), &res.Call); err != nil {
		return nil, fmt.Errorf("unmarshal call settings: %w", err)
	}
	if c.AssistantSettings != "" {
		res.Assistant = &domain.AssistantSettings{}
		if err := json.Unmarshal([]byte(c.AssistantSettings), res.Assistant); err != nil {
			return nil, fmt.Errorf("unmarshal assistant settings: %w", err)
		}
	}
	return res, nil
}
