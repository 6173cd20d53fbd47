package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/daybook/daybook-go/internal/apperr"
	"github.com/daybook/daybook-go/internal/crypto"
	"github.com/daybook/daybook-go/internal/model"
	"github.com/daybook/daybook-go/internal/repository"
	"github.com/daybook/daybook-go/internal/validate"
)

// AccountService handles account registration, authentication, profile and
// settings business logic.
type AccountService struct {
	accounts  *repository.AccountRepository
	settings  *repository.SettingRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts *repository.AccountRepository, settings *repository.SettingRepository, jwtSecret string, jwtExpiry time.Duration) *AccountService {
	return &AccountService{
		accounts:  accounts,
		settings:  settings,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// validateProfileFields applies each optional field's own rule. Nil fields
// are always acceptable; a non-nil field must pass its format or enum check.
func validateProfileFields(phone, gender, birthDate, mbti, blood *string) error {
	if phone != nil && !validate.PhoneNumber(*phone) {
		return apperr.ErrPhoneNotValid
	}
	if gender != nil && !validate.Gender(*gender) {
		return apperr.ErrGenderNotValid
	}
	if birthDate != nil && !validate.Date(*birthDate) {
		return apperr.ErrBirthDateInvalid
	}
	if mbti != nil && !validate.MbtiType(*mbti) {
		return apperr.ErrMbtiNotValid
	}
	if blood != nil && !validate.BloodType(*blood) {
		return apperr.ErrBloodNotValid
	}
	return nil
}

// Register creates a new account with its settings row and returns a
// signed token. Email and nickname uniqueness are checked up front so the
// response can say which field collided.
func (s *AccountService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if !validate.EmailAddress(req.Email) {
		return model.AuthResponse{}, apperr.ErrEmailIncorrect
	}
	if err := validateProfileFields(req.PhoneNumber, req.Gender, req.BirthDate, req.MbtiType, req.BloodType); err != nil {
		return model.AuthResponse{}, err
	}

	emailTaken, err := s.accounts.EmailExists(ctx, req.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if emailTaken {
		return model.AuthResponse{}, apperr.ErrEmailExists
	}

	nicknameTaken, err := s.accounts.NicknameExists(ctx, req.Nickname)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if nicknameTaken {
		return model.AuthResponse{}, apperr.ErrNicknameExists
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	account := &model.Account{
		ID:          uuid.NewString(),
		Email:       req.Email,
		Password:    hash,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nickname:    req.Nickname,
		BirthDate:   req.BirthDate,
		MbtiType:    req.MbtiType,
		BloodType:   req.BloodType,
	}

	tx, err := s.accounts.BeginTx(ctx)
	if err != nil {
		return model.AuthResponse{}, err
	}
	defer tx.Rollback()

	if err := s.accounts.CreateTx(ctx, tx, account); err != nil {
		return model.AuthResponse{}, err
	}
	if err := s.accounts.CreateSettingTx(ctx, tx, account.ID); err != nil {
		return model.AuthResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(account.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Nickname: account.Nickname, AccessToken: token}, nil
}

// Login authenticates by email and password and returns a signed token.
func (s *AccountService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if !validate.EmailAddress(req.Email) {
		return model.AuthResponse{}, apperr.ErrEmailIncorrect
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.AuthResponse{}, apperr.ErrAccountNotFound
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, account.Password) {
		return model.AuthResponse{}, apperr.ErrPasswordMismatch
	}

	token, err := crypto.GenerateToken(account.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Nickname: account.Nickname, AccessToken: token}, nil
}

// GetProfile returns the full profile projection without any secret.
func (s *AccountService) GetProfile(ctx context.Context, accountID string) (model.ProfileResponse, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.ProfileResponse{}, apperr.ErrAccountNotFound
		}
		return model.ProfileResponse{}, err
	}

	return profileOf(account), nil
}

// ChangeProfile fully replaces the optional profile fields and returns the
// updated projection. The same per-field rules as Register apply.
func (s *AccountService) ChangeProfile(ctx context.Context, accountID string, req model.ChangeProfileRequest) (model.ProfileResponse, error) {
	if err := validateProfileFields(req.PhoneNumber, req.Gender, req.BirthDate, req.MbtiType, req.BloodType); err != nil {
		return model.ProfileResponse{}, err
	}

	if err := s.accounts.UpdateProfile(ctx, accountID, req); err != nil {
		return model.ProfileResponse{}, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.ProfileResponse{}, apperr.ErrAccountNotFound
		}
		return model.ProfileResponse{}, err
	}

	return profileOf(account), nil
}

// ChangeEmail performs the two-step verify-then-write email change: the
// stored email is read back and compared against the caller's view before
// the update is issued.
func (s *AccountService) ChangeEmail(ctx context.Context, accountID string, req model.ChangeEmailRequest) (model.ChangeEmailResponse, error) {
	if !validate.EmailAddress(req.ChangeRequestEmail) {
		return model.ChangeEmailResponse{}, apperr.ErrChangeEmailIncorrect
	}
	if req.CurrentEmail == req.ChangeRequestEmail {
		return model.ChangeEmailResponse{}, apperr.ErrEmailSameAsCurrent
	}

	storedEmail, err := s.accounts.GetEmail(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.ChangeEmailResponse{}, apperr.ErrAccountNotFound
		}
		return model.ChangeEmailResponse{}, err
	}
	if storedEmail != req.CurrentEmail {
		return model.ChangeEmailResponse{}, apperr.ErrCurrentEmailMismatch
	}

	if err := s.accounts.UpdateEmail(ctx, accountID, req.ChangeRequestEmail); err != nil {
		return model.ChangeEmailResponse{}, err
	}

	return model.ChangeEmailResponse{ChangedEmail: req.ChangeRequestEmail}, nil
}

// ChangePassword verifies the current password against the stored hash and
// replaces it with a hash of the new one.
func (s *AccountService) ChangePassword(ctx context.Context, accountID string, req model.ChangePasswordRequest) error {
	if req.CurrentPassword == req.ChangeRequestPassword {
		return apperr.ErrPasswordSameAsCurrent
	}

	storedHash, err := s.accounts.GetPasswordHash(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return apperr.ErrAccountNotFound
		}
		return err
	}
	if !crypto.VerifyPassword(req.CurrentPassword, storedHash) {
		return apperr.ErrCurrentPasswordMismatch
	}

	newHash, err := crypto.HashPassword(req.ChangeRequestPassword)
	if err != nil {
		return err
	}

	if err := s.accounts.UpdatePassword(ctx, accountID, newHash); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return apperr.ErrPasswordChangeFailed
		}
		return err
	}
	return nil
}

// GetSettings returns the visibility flags.
func (s *AccountService) GetSettings(ctx context.Context, accountID string) (model.AppSetting, error) {
	setting, err := s.settings.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return model.AppSetting{}, apperr.ErrAccountNotFound
		}
		return model.AppSetting{}, err
	}
	return setting, nil
}

// ChangeSettings replaces both visibility flags.
func (s *AccountService) ChangeSettings(ctx context.Context, accountID string, setting model.AppSetting) (model.AppSetting, error) {
	if err := s.settings.Update(ctx, accountID, setting); err != nil {
		return model.AppSetting{}, err
	}
	return setting, nil
}

func profileOf(account *model.Account) model.ProfileResponse {
	return model.ProfileResponse{
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		Gender:      account.Gender,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Nickname:    account.Nickname,
		BirthDate:   account.BirthDate,
		MbtiType:    account.MbtiType,
		BloodType:   account.BloodType,
	}
}
