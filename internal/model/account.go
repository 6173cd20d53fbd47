package model

// Account is a registered account as stored in the accounts table.
// Password holds the bcrypt hash and is never serialized.
type Account struct {
	ID          string
	Email       string
	Password    string
	PhoneNumber *string
	Gender      *string
	FirstName   *string
	LastName    *string
	Nickname    string
	BirthDate   *string
	MbtiType    *string
	BloodType   *string
}

// RegisterRequest represents an account registration request.
// Optional profile fields are pointers; nil means "not provided".
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	PhoneNumber *string `json:"phone_number"`
	Gender      *string `json:"gender"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Nickname    string  `json:"nickname"`
	BirthDate   *string `json:"birth_date"`
	MbtiType    *string `json:"mbti_type"`
	BloodType   *string `json:"blood_type"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Nickname    string `json:"nickname"`
	AccessToken string `json:"access_token"`
}

// ProfileResponse is the account projection returned to the owner.
// It never carries the password in any form.
type ProfileResponse struct {
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Gender      *string `json:"gender"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Nickname    string  `json:"nickname"`
	BirthDate   *string `json:"birth_date"`
	MbtiType    *string `json:"mbti_type"`
	BloodType   *string `json:"blood_type"`
}

// ChangeProfileRequest replaces every optional profile field at once.
// There is no partial merge: a nil field clears the stored value.
type ChangeProfileRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Gender      *string `json:"gender"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Nickname    string  `json:"nickname"`
	BirthDate   *string `json:"birth_date"`
	MbtiType    *string `json:"mbti_type"`
	BloodType   *string `json:"blood_type"`
}

// ChangeEmailRequest carries the caller's view of the current email so the
// server can reject a stale client before writing.
type ChangeEmailRequest struct {
	CurrentEmail       string `json:"current_email"`
	ChangeRequestEmail string `json:"change_request_email"`
}

// ChangeEmailResponse confirms the stored email after a change.
type ChangeEmailResponse struct {
	ChangedEmail string `json:"changed_email"`
}

// ChangePasswordRequest carries the current and the replacement password.
type ChangePasswordRequest struct {
	CurrentPassword       string `json:"current_password"`
	ChangeRequestPassword string `json:"change_request_password"`
}

// AppSetting holds the per-account visibility flags. The same shape is
// used for reads, change requests and change responses.
type AppSetting struct {
	VisibilityMbti      bool `json:"visibility_mbti"`
	VisibilityBloodType bool `json:"visibility_blood_type"`
}
