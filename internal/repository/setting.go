package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/daybook/daybook-go/internal/model"
)

var ErrSettingNotFound = errors.New("app setting not found")

// SettingRepository handles the per-account visibility settings. The row
// itself is created during registration, so only read and replace exist.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves the visibility flags for an account.
func (r *SettingRepository) Get(ctx context.Context, accountID string) (model.AppSetting, error) {
	query := `SELECT visibility_mbti, visibility_blood_type FROM app_settings WHERE account_id = ? LIMIT 1`

	var setting model.AppSetting
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&setting.VisibilityMbti, &setting.VisibilityBloodType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AppSetting{}, ErrSettingNotFound
		}
		return model.AppSetting{}, err
	}
	return setting, nil
}

// Update replaces both visibility flags.
func (r *SettingRepository) Update(ctx context.Context, accountID string, setting model.AppSetting) error {
	query := `UPDATE app_settings SET visibility_mbti = ?, visibility_blood_type = ? WHERE account_id = ?`

	_, err := r.db.ExecContext(ctx, query, setting.VisibilityMbti, setting.VisibilityBloodType, accountID)
	return err
}
