package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/daybook/daybook-go/internal/model"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoRowsAffected  = errors.New("no rows affected")
)

// AccountRepository handles account persistence operations.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// BeginTx starts a new database transaction.
func (r *AccountRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// EmailExists reports whether any account already uses the email.
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT id FROM accounts WHERE email = ? LIMIT 1`

	var id string
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NicknameExists reports whether any account already uses the nickname.
func (r *AccountRepository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	query := `SELECT id FROM accounts WHERE nickname = ? LIMIT 1`

	var id string
	err := r.db.QueryRowContext(ctx, query, nickname).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateTx inserts a new account row within the provided transaction.
func (r *AccountRepository) CreateTx(ctx context.Context, tx *sql.Tx, account *model.Account) error {
	query := `INSERT INTO accounts
		(id, email, password, phone_number, gender, first_name, last_name, nickname, birth_date, mbti_type, blood_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.Password,
		account.PhoneNumber,
		account.Gender,
		account.FirstName,
		account.LastName,
		account.Nickname,
		account.BirthDate,
		account.MbtiType,
		account.BloodType,
	)
	return err
}

// CreateSettingTx inserts the app_settings row for a newly registered
// account, both visibility flags off, within the provided transaction.
func (r *AccountRepository) CreateSettingTx(ctx context.Context, tx *sql.Tx, accountID string) error {
	query := `INSERT INTO app_settings (account_id, visibility_mbti, visibility_blood_type) VALUES (?, FALSE, FALSE)`

	_, err := tx.ExecContext(ctx, query, accountID)
	return err
}

// GetByEmail retrieves an account by email, including the password hash.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT id, email, password, phone_number, gender, first_name, last_name, nickname, birth_date, mbti_type, blood_type
		FROM accounts WHERE email = ? LIMIT 1`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves an account by its identifier.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT id, email, password, phone_number, gender, first_name, last_name, nickname, birth_date, mbti_type, blood_type
		FROM accounts WHERE id = ? LIMIT 1`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) scanAccount(row *sql.Row) (*model.Account, error) {
	account := &model.Account{}
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.PhoneNumber,
		&account.Gender,
		&account.FirstName,
		&account.LastName,
		&account.Nickname,
		&account.BirthDate,
		&account.MbtiType,
		&account.BloodType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// UpdateProfile fully replaces every optional profile field plus the
// nickname. Fields the caller left nil are cleared.
func (r *AccountRepository) UpdateProfile(ctx context.Context, accountID string, req model.ChangeProfileRequest) error {
	query := `UPDATE accounts SET phone_number = ?, gender = ?, first_name = ?, last_name = ?, nickname = ?, birth_date = ?, mbti_type = ?, blood_type = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		req.PhoneNumber,
		req.Gender,
		req.FirstName,
		req.LastName,
		req.Nickname,
		req.BirthDate,
		req.MbtiType,
		req.BloodType,
		accountID,
	)
	return err
}

// GetEmail reads back the stored email for the verify-then-write email
// change sequence.
func (r *AccountRepository) GetEmail(ctx context.Context, accountID string) (string, error) {
	query := `SELECT email FROM accounts WHERE id = ? LIMIT 1`

	var email string
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrAccountNotFound
		}
		return "", err
	}
	return email, nil
}

// UpdateEmail sets the stored email.
func (r *AccountRepository) UpdateEmail(ctx context.Context, accountID, email string) error {
	query := `UPDATE accounts SET email = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, email, accountID)
	return err
}

// GetPasswordHash reads the stored password hash.
func (r *AccountRepository) GetPasswordHash(ctx context.Context, accountID string) (string, error) {
	query := `SELECT password FROM accounts WHERE id = ? LIMIT 1`

	var hash string
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrAccountNotFound
		}
		return "", err
	}
	return hash, nil
}

// UpdatePassword replaces the stored password hash. A write that matches
// no row is reported as ErrNoRowsAffected; the new hash always differs
// from the old one, so an affected count of zero means the row is gone.
func (r *AccountRepository) UpdatePassword(ctx context.Context, accountID, hash string) error {
	query := `UPDATE accounts SET password = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, hash, accountID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
