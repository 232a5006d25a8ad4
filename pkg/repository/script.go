package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/callscope/pkg/domain"
)

// ErrDefaultScript is returned on attempts to delete the default script
var ErrDefaultScript = errors.New("cannot delete default script")

// ScriptRepository handles the interview script library
type ScriptRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type scriptSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Content   string    `db:"content"`
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewScriptRepository creates a new script repository
func NewScriptRepository(db *sqlx.DB) *ScriptRepository {
	return &ScriptRepository{db: db, now: time.Now}
}

// GetScripts lists all scripts, default first
func (r *ScriptRepository) GetScripts(ctx context.Context) ([]domain.Script, error) {
	var rows []scriptSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM scripts ORDER BY is_default DESC, id"); err != nil {
		return nil, fmt.Errorf("get scripts: %w", err)
	}
	res := make([]domain.Script, len(rows))
	for i, s := range rows {
		res[i] = s.toDomain()
	}
	return res, nil
}

// GetScript retrieves a script by ID
func (r *ScriptRepository) GetScript(ctx context.Context, id int64) (*domain.Script, error) {
	var row scriptSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM scripts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("script %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}
	s := row.toDomain()
	return &s, nil
}

// CreateScript inserts a script. A new default script takes the default flag from the old one.
func (r *ScriptRepository) CreateScript(ctx context.Context, s *domain.Script) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if s.IsDefault {
		if _, err := tx.ExecContext(ctx, "UPDATE scripts SET is_default = 0"); err != nil {
			return fmt.Errorf("reset default script: %w", err)
		}
	}

	now := r.now().UTC()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO scripts (name, content, is_default, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		s.Name, s.Content, s.IsDefault, now, now)
	if err != nil {
		return fmt.Errorf("create script: %w", err)
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit script: %w", err)
	}
	s.CreatedAt, s.UpdatedAt = now, now
	return nil
}

// ScriptUpdate lists script fields to change, nil fields are kept
type ScriptUpdate struct {
	Name      *string
	Content   *string
	IsDefault *bool
}

// UpdateScript changes the given fields of a script and returns the updated script
func (r *ScriptRepository) UpdateScript(ctx context.Context, id int64, upd ScriptUpdate) (*domain.Script, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var row scriptSQL
	err = tx.GetContext(ctx, &row, "SELECT * FROM scripts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("script %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}

	if upd.Name != nil && *upd.Name != "" {
		row.Name = *upd.Name
	}
	if upd.Content != nil && *upd.Content != "" {
		row.Content = *upd.Content
	}
	if upd.IsDefault != nil {
		if *upd.IsDefault && !row.IsDefault {
			if _, err := tx.ExecContext(ctx, "UPDATE scripts SET is_default = 0"); err != nil {
				return nil, fmt.Errorf("reset default script: %w", err)
			}
		}
		row.IsDefault = *upd.IsDefault
	}
	row.UpdatedAt = r.now().UTC()

	query := "UPDATE scripts SET name = ?, content = ?, is_default = ?, updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, query, row.Name, row.Content, row.IsDefault, row.UpdatedAt, id); err != nil {
		return nil, fmt.Errorf("update script: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit script: %w", err)
	}

	s := row.toDomain()
	return &s, nil
}

// DeleteScript removes a script, the default one is protected
func (r *ScriptRepository) DeleteScript(ctx context.Context, id int64) error {
	s, err := r.GetScript(ctx, id)
	if err != nil {
		return err
	}
	if s.IsDefault {
		return ErrDefaultScript
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM scripts WHERE id = ? AND is_default = 0", id); err != nil {
		return fmt.Errorf("delete script: %w", err)
	}
	return nil
}

func (s scriptSQL) toDomain() domain.Script {
	return domain.Script{
		ID:        s.ID,
		Name:      s.Name,
		Content:   s.Content,
		IsDefault: s.IsDefault,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
