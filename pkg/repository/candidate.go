package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/callscope/pkg/domain"
)

// CandidateRepository handles candidate-related database operations
type CandidateRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// candidateSQL represents a candidate for SQL operations
type candidateSQL struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Phone         string     `db:"phone"`
	Email         string     `db:"email"`
	Position      string     `db:"position"`
	Status        string     `db:"status"`
	CallID        string     `db:"call_id"`
	CallProvider  string     `db:"call_provider"`
	CallResult    string     `db:"call_result"`
	CallNotes     string     `db:"call_notes"`
	AddedAt       *time.Time `db:"added_at"`
	CallStartTime *time.Time `db:"call_start_time"`
	CallEndTime   *time.Time `db:"call_end_time"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *sqlx.DB) *CandidateRepository {
	return &CandidateRepository{db: db, now: time.Now}
}

const insertCandidateQuery = `
	INSERT INTO candidates (name, phone, email, position, status, call_id, call_provider, call_result,
		call_notes, added_at, call_start_time, call_end_time, created_at, updated_at)
	VALUES (:name, :phone, :email, :position, :status, :call_id, :call_provider, :call_result,
		:call_notes, :added_at, :call_start_time, :call_end_time, :created_at, :updated_at)
`

// CreateCandidate inserts a new candidate and sets its ID
func (r *CandidateRepository) CreateCandidate(ctx context.Context, c *domain.Candidate) error {
	row := r.toSQL(c)
	result, err := r.db.NamedExecContext(ctx, insertCandidateQuery, row)
	if err != nil {
		return fmt.Errorf("create candidate: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	c.ID = id
	c.CreatedAt, c.UpdatedAt = row.CreatedAt, row.UpdatedAt
	return nil
}

// CreateCandidates inserts candidates in a single transaction
func (r *CandidateRepository) CreateCandidates(ctx context.Context, candidates []domain.Candidate) ([]domain.Candidate, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := r.insertCandidates(ctx, tx, candidates)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit candidates: %w", err)
	}
	return res, nil
}

func (r *CandidateRepository) insertCandidates(ctx context.Context, tx *sqlx.Tx, candidates []domain.Candidate) ([]domain.Candidate, error) {
	res := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		row := r.toSQL(&c)
		result, err := tx.NamedExecContext(ctx, insertCandidateQuery, row)
		if err != nil {
			return nil, fmt.Errorf("create candidate %q: %w", c.Name, err)
		}
		if c.ID, err = result.LastInsertId(); err != nil {
			return nil, fmt.Errorf("get insert id: %w", err)
		}
		c.CreatedAt, c.UpdatedAt = row.CreatedAt, row.UpdatedAt
		res = append(res, c)
	}
	return res, nil
}

// AddToQueue inserts candidates as pending with the current time as their queue time.
// Candidates whose phone is already pending or calling are skipped, only inserted ones are returned.
func (r *CandidateRepository) AddToQueue(ctx context.Context, candidates []domain.Candidate) ([]domain.Candidate, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var phones []string
	if err := tx.SelectContext(ctx, &phones, "SELECT phone FROM candidates WHERE status IN (?, ?)",
		domain.StatusPending, domain.StatusCalling); err != nil {
		return nil, fmt.Errorf("get queued phones: %w", err)
	}
	queuedPhones := make(map[string]bool, len(phones))
	for _, p := range phones {
		queuedPhones[p] = true
	}

	now := r.now().UTC()
	queued := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if queuedPhones[c.Phone] {
			continue
		}
		queuedPhones[c.Phone] = true
		c.Status = domain.StatusPending
		c.AddedAt = &now
		queued = append(queued, c)
	}

	res, err := r.insertCandidates(ctx, tx, queued)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit queue: %w", err)
	}
	return res, nil
}

// GetCandidate retrieves a candidate by ID
func (r *CandidateRepository) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	var row candidateSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM candidates WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("candidate %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return row.toDomain(), nil
}

// GetCandidateByCallID retrieves the candidate a provider call was placed for
func (r *CandidateRepository) GetCandidateByCallID(ctx context.Context, callID string) (*domain.Candidate, error) {
	var row candidateSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM candidates WHERE call_id = ? ORDER BY id DESC LIMIT 1", callID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("candidate for call %s: %w", callID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate by call id: %w", err)
	}
	return row.toDomain(), nil
}

// GetCandidates returns all candidates, newest first
func (r *CandidateRepository) GetCandidates(ctx context.Context) ([]domain.Candidate, error) {
	var rows []candidateSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM candidates ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}
	return toDomainCandidates(rows), nil
}

// GetCandidatesByStatus returns candidates with the given status, newest first
func (r *CandidateRepository) GetCandidatesByStatus(ctx context.Context, status domain.CandidateStatus) ([]domain.Candidate, error) {
	var rows []candidateSQL
	query := "SELECT * FROM candidates WHERE status = ? ORDER BY created_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &rows, query, string(status)); err != nil {
		return nil, fmt.Errorf("get candidates by status: %w", err)
	}
	return toDomainCandidates(rows), nil
}

// GetQueue returns pending and in-progress candidates
func (r *CandidateRepository) GetQueue(ctx context.Context) ([]domain.Candidate, error) {
	var rows []candidateSQL
	query := "SELECT * FROM candidates WHERE status IN (?, ?) ORDER BY created_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &rows, query, string(domain.StatusPending), string(domain.StatusCalling)); err != nil {
		return nil, fmt.Errorf("get queue: %w", err)
	}
	return toDomainCandidates(rows), nil
}

// GetHistory returns candidates with a finished call
func (r *CandidateRepository) GetHistory(ctx context.Context) ([]domain.Candidate, error) {
	var rows []candidateSQL
	query := "SELECT * FROM candidates WHERE status IN (?, ?) ORDER BY call_end_time DESC, id DESC"
	if err := r.db.SelectContext(ctx, &rows, query, string(domain.StatusCompleted), string(domain.StatusFailed)); err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return toDomainCandidates(rows), nil
}

// UpdateStatus changes a candidate status. Moving to calling stamps the call start time, moving to
// completed or failed stamps the call end time. Non-empty fields of upd are written too.
// Retries on SQLite lock errors because webhook callbacks race with dashboard writes.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id int64, status domain.CandidateStatus, upd domain.CallUpdate) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		now := r.now().UTC()
		var startTime, endTime *time.Time
		switch status {
		case domain.StatusCalling:
			startTime = &now
		case domain.StatusCompleted, domain.StatusFailed:
			endTime = &now
		}

		query := `
			UPDATE candidates
			SET status = ?,
			    call_id = CASE WHEN ? != '' THEN ? ELSE call_id END,
			    call_provider = CASE WHEN ? != '' THEN ? ELSE call_provider END,
			    call_result = CASE WHEN ? != '' THEN ? ELSE call_result END,
			    call_notes = CASE WHEN ? != '' THEN ? ELSE call_notes END,
			    call_start_time = COALESCE(?, call_start_time),
			    call_end_time = COALESCE(?, call_end_time),
			    updated_at = ?
			WHERE id = ?
		`
		res, err := r.db.ExecContext(ctx, query, string(status),
			upd.CallID, upd.CallID, upd.CallProvider, upd.CallProvider,
			upd.CallResult, upd.CallResult, upd.CallNotes, upd.CallNotes,
			startTime, endTime, now, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update candidate status: %w", err)}
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return &criticalError{err: fmt.Errorf("candidate %d: %w", id, ErrNotFound)}
		}
		return nil
	}, errCritical)
}

// DeleteByStatus removes all candidates with the given status
func (r *CandidateRepository) DeleteByStatus(ctx context.Context, status domain.CandidateStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM candidates WHERE status = ?", string(status))
	if err != nil {
		return 0, fmt.Errorf("delete candidates by status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get affected rows: %w", err)
	}
	return n, nil
}

// DeleteAll removes every candidate
func (r *CandidateRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM candidates"); err != nil {
		return fmt.Errorf("delete candidates: %w", err)
	}
	return nil
}

// ReplaceAll swaps all candidates for the given list in one transaction, used by data import
func (r *CandidateRepository) ReplaceAll(ctx context.Context, candidates []domain.Candidate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM candidates"); err != nil {
		return fmt.Errorf("clear candidates: %w", err)
	}
	for _, c := range candidates {
		if _, err := tx.NamedExecContext(ctx, insertCandidateQuery, r.toSQL(&c)); err != nil {
			return fmt.Errorf("import candidate %q: %w", c.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// CountCandidates returns the number of stored candidates
func (r *CandidateRepository) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM candidates"); err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return count, nil
}

func (r *CandidateRepository) toSQL(c *domain.Candidate) *candidateSQL {
	now := r.now().UTC()
	status := c.Status
	if status == "" {
		status = domain.StatusPending
	}
	row := &candidateSQL{
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Position:      c.Position,
		Status:        string(status),
		CallID:        c.CallID,
		CallProvider:  c.CallProvider,
		CallResult:    c.CallResult,
		CallNotes:     c.CallNotes,
		AddedAt:       c.AddedAt,
		CallStartTime: c.CallStartTime,
		CallEndTime:   c.CallEndTime,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     now,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	return row
}

func (c *candidateSQL) toDomain() *domain.Candidate {
	return &domain.Candidate{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Position:      c.Position,
		Status:        domain.CandidateStatus(c.Status),
		CallID:        c.CallID,
		CallProvider:  c.CallProvider,
		CallResult:    c.CallResult,
		CallNotes:     c.CallNotes,
		AddedAt:       c.AddedAt,
		CallStartTime: c.CallStartTime,
		CallEndTime:   c.CallEndTime,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toDomainCandidates(rows []candidateSQL) []domain.Candidate {
	res := make([]domain.Candidate, len(rows))
	for i := range rows {
		res[i] = *rows[i].toDomain()
	}
	return res
}
