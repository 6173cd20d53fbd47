package apperr

import "net/http"

// Error binds an HTTP status to a fixed machine-readable code string.
// API clients match on the code string, so the values below are part of
// the wire contract and must not be reworded.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New creates an API error with the given status and code string.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

var (
	// Account registration and login.
	ErrEmailIncorrect   = New(http.StatusBadRequest, "EMAIL_ADDRESS_INCORRECT")
	ErrPhoneNotValid    = New(http.StatusBadRequest, "PHONE_NUMBER_IS_NOT_VALID")
	ErrGenderNotValid   = New(http.StatusBadRequest, "GENDER_TYPE_IS_NOT_VALID")
	ErrBirthDateInvalid = New(http.StatusBadRequest, "BIRTH_DATE_IS_NOT_VALID")
	ErrMbtiNotValid     = New(http.StatusBadRequest, "MBTI_TYPE_IS_NOT_VALID")
	ErrBloodNotValid    = New(http.StatusBadRequest, "BLOOD_TYPE_IS_NOT_VALID")
	ErrEmailExists      = New(http.StatusConflict, "EMAIL_ADDRESS_ALREADY_EXISTS")
	ErrNicknameExists   = New(http.StatusConflict, "NICKNAME_ALREADY_EXISTS")
	ErrAccountNotFound  = New(http.StatusBadRequest, "ACCOUNT_NOT_FOUND")
	ErrPasswordMismatch = New(http.StatusBadRequest, "PASSWORD_MISMATCH")

	// Email change.
	ErrChangeEmailIncorrect = New(http.StatusBadRequest, "CHANGE_REQUEST_EMAIL_ADDRESS_INCORRECT")
	ErrEmailSameAsCurrent   = New(http.StatusBadRequest, "CURRENT_EMAIL_ADDRESS_SAME_CHANGE_REQUEST_EMAIL_ADDRESS")
	ErrCurrentEmailMismatch = New(http.StatusBadRequest, "MISMATCH_AND_WRONG_CURRENT_EMAIL_ADDRESS")

	// Password change.
	ErrPasswordSameAsCurrent   = New(http.StatusBadRequest, "CURRENT_PASSWORD_SAME_CHANGE_REQUEST_PASSWORD")
	ErrCurrentPasswordMismatch = New(http.StatusBadRequest, "CURRENT_PASSWORD_MISMATCH")
	ErrPasswordChangeFailed    = New(http.StatusBadRequest, "PASSWORD_CHANGE_FAILED")

	// Access gate.
	ErrTokenInvalid = New(http.StatusUnauthorized, "API_ACCESS_TOKEN_IS_INVALID_OR_EXPIRED")

	// Diary.
	ErrDiaryDateInvalid         = New(http.StatusBadRequest, "DIARY_DATE_IS_NOT_VALID")
	ErrTitleInvalid             = New(http.StatusBadRequest, "TITLE_IS_NOT_VALID")
	ErrContentInvalid           = New(http.StatusBadRequest, "CONTENT_IS_NOT_VALID")
	ErrSecretCodeMismatch       = New(http.StatusBadRequest, "SECRET_CODE_MISMATCH")
	ErrDiaryNotFound            = New(http.StatusNotFound, "DIARY_NOT_FOUND")
	ErrDiaryTagUpdateFailed     = New(http.StatusInternalServerError, "DIARY_TAG_UPDATE_FAILED")
	ErrDiaryTagDeleteFailed     = New(http.StatusInternalServerError, "DIARY_TAG_DELETE_FAILED")
	ErrDiaryContentDeleteFailed = New(http.StatusInternalServerError, "DIARY_CONTENT_DELETE_FAILED")

	// Everything else.
	ErrRequestBody     = New(http.StatusBadRequest, "REQUEST_BODY_IS_NOT_VALID")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "TOO_MANY_REQUESTS")
	ErrInternal        = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
)
