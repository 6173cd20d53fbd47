package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/daybook/daybook-go/internal/model"
)

var ErrDiaryNotFound = errors.New("diary entry not found")

// DiaryRepository handles diary entry and tag persistence. Every query is
// scoped to the owning account, so a row belonging to someone else behaves
// exactly like a missing row.
type DiaryRepository struct {
	db *sql.DB
}

// NewDiaryRepository creates a new DiaryRepository.
func NewDiaryRepository(db *sql.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

// BeginTx starts a new database transaction.
func (r *DiaryRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// listQuery is the list projection: pinned entries first, then newest
// diary date first. The content body and the secret code itself are never
// part of it.
const listQuery = `SELECT id, diary_date, title, pinned, secret_code IS NOT NULL
	FROM diary_content
	WHERE account_id = ?
	ORDER BY pinned DESC, diary_date DESC
	LIMIT ? OFFSET ?`

// List retrieves one page of diary metadata.
func (r *DiaryRepository) List(ctx context.Context, accountID string, limit, offset int) ([]model.DiaryListRow, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.DiaryListRow
	for rows.Next() {
		var e model.DiaryListRow
		if err := rows.Scan(&e.ID, &e.DiaryDate, &e.Title, &e.Pinned, &e.HasSecretCode); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetByID retrieves a full diary entry including its stored secret code.
// Callers must apply the secret-code gate before exposing the content.
func (r *DiaryRepository) GetByID(ctx context.Context, accountID, diaryID string) (*model.DiaryEntry, error) {
	query := `SELECT id, account_id, diary_date, title, content, pinned, secret_code, created_at, updated_at
		FROM diary_content WHERE id = ? AND account_id = ? LIMIT 1`

	entry := &model.DiaryEntry{}
	err := r.db.QueryRowContext(ctx, query, diaryID, accountID).Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.DiaryDate,
		&entry.Title,
		&entry.Content,
		&entry.Pinned,
		&entry.SecretCode,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDiaryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// listTagsQuery orders by id so tag order in responses does not depend on
// the storage engine.
const listTagsQuery = `SELECT id, tag FROM diary_tag WHERE account_id = ? AND diary_id = ? ORDER BY id`

// ListTags retrieves the tags of a single diary entry.
func (r *DiaryRepository) ListTags(ctx context.Context, accountID, diaryID string) ([]model.DiaryTag, error) {
	rows, err := r.db.QueryContext(ctx, listTagsQuery, accountID, diaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []model.DiaryTag
	for rows.Next() {
		var t model.DiaryTag
		if err := rows.Scan(&t.ID, &t.Tag); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

// TagsByDiaryIDs retrieves the tags of a batch of diary entries in one
// query, keyed by diary id. Entries without tags are absent from the map.
func (r *DiaryRepository) TagsByDiaryIDs(ctx context.Context, accountID string, diaryIDs []string) (map[string][]model.DiaryTag, error) {
	if len(diaryIDs) == 0 {
		return map[string][]model.DiaryTag{}, nil
	}

	query := `SELECT diary_id, id, tag FROM diary_tag WHERE account_id = ? AND diary_id IN (` +
		placeholders(len(diaryIDs)) + `) ORDER BY diary_id, id`

	args := make([]any, 0, len(diaryIDs)+1)
	args = append(args, accountID)
	for _, id := range diaryIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[string][]model.DiaryTag)
	for rows.Next() {
		var diaryID string
		var t model.DiaryTag
		if err := rows.Scan(&diaryID, &t.ID, &t.Tag); err != nil {
			return nil, err
		}
		tags[diaryID] = append(tags[diaryID], t)
	}

	return tags, rows.Err()
}

// InsertTx inserts a new diary entry within the provided transaction.
func (r *DiaryRepository) InsertTx(ctx context.Context, tx *sql.Tx, entry *model.DiaryEntry) error {
	query := `INSERT INTO diary_content
		(id, account_id, diary_date, title, content, pinned, secret_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query,
		entry.ID,
		entry.AccountID,
		entry.DiaryDate,
		entry.Title,
		entry.Content,
		entry.Pinned,
		entry.SecretCode,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return err
}

// InsertTagsTx bulk-inserts a tag set in a single multi-row statement
// within the provided transaction.
func (r *DiaryRepository) InsertTagsTx(ctx context.Context, tx *sql.Tx, accountID, diaryID string, tags []model.DiaryTag) error {
	if len(tags) == 0 {
		return nil
	}

	query := `INSERT INTO diary_tag (id, account_id, diary_id, tag) VALUES ` + valueRows(len(tags), 4)

	args := make([]any, 0, len(tags)*4)
	for _, t := range tags {
		args = append(args, t.ID, accountID, diaryID, t.Tag)
	}

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// UpdateTx fully replaces a diary entry's fields, including the stored
// secret code, within the provided transaction.
func (r *DiaryRepository) UpdateTx(ctx context.Context, tx *sql.Tx, entry *model.DiaryEntry) error {
	query := `UPDATE diary_content
		SET diary_date = ?, title = ?, content = ?, pinned = ?, secret_code = ?, updated_at = ?
		WHERE id = ? AND account_id = ?`

	_, err := tx.ExecContext(ctx, query,
		entry.DiaryDate,
		entry.Title,
		entry.Content,
		entry.Pinned,
		entry.SecretCode,
		entry.UpdatedAt,
		entry.ID,
		entry.AccountID,
	)
	return err
}

// DeleteTagsTx removes every tag of a diary entry within the provided
// transaction.
func (r *DiaryRepository) DeleteTagsTx(ctx context.Context, tx *sql.Tx, accountID, diaryID string) error {
	query := `DELETE FROM diary_tag WHERE account_id = ? AND diary_id = ?`

	_, err := tx.ExecContext(ctx, query, accountID, diaryID)
	return err
}

// DeleteEntryTx removes a diary entry within the provided transaction.
func (r *DiaryRepository) DeleteEntryTx(ctx context.Context, tx *sql.Tx, accountID, diaryID string) error {
	query := `DELETE FROM diary_content WHERE id = ? AND account_id = ?`

	_, err := tx.ExecContext(ctx, query, diaryID, accountID)
	return err
}

// placeholders renders "?, ?, ?" for an IN clause of n values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// valueRows renders "(?, ?), (?, ?)" for a bulk insert of rows x cols
// parameters.
func valueRows(rows, cols int) string {
	row := "(" + placeholders(cols) + ")"
	parts := make([]string, rows)
	for i := range parts {
		parts[i] = row
	}
	return strings.Join(parts, ", ")
}
