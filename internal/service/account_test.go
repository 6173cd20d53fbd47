package service

import (
	"context"
	"testing"
	"time"

	"github.com/daybook/daybook-go/internal/apperr"
	"github.com/daybook/daybook-go/internal/model"
	"github.com/daybook/daybook-go/internal/repository"
)

func newTestAccountService() *AccountService {
	return NewAccountService(
		repository.NewAccountRepository(nil),
		repository.NewSettingRepository(nil),
		"test-secret",
		2*time.Hour,
	)
}

func strptr(s string) *string { return &s }

func TestRegister_InvalidEmail(t *testing.T) {
	svc := newTestAccountService()

	for _, email := range []string{"", "nope", "UPPER@case.com", "user@"} {
		_, err := svc.Register(context.Background(), model.RegisterRequest{
			Email:    email,
			Password: "password123",
			Nickname: "writer",
		})
		if err != apperr.ErrEmailIncorrect {
			t.Errorf("email %q: expected ErrEmailIncorrect, got %v", email, err)
		}
	}
}

func TestRegister_InvalidOptionalFields(t *testing.T) {
	svc := newTestAccountService()

	cases := []struct {
		name string
		req  model.RegisterRequest
		want *apperr.Error
	}{
		{
			name: "phone",
			req:  model.RegisterRequest{PhoneNumber: strptr("12345678")},
			want: apperr.ErrPhoneNotValid,
		},
		{
			name: "gender",
			req:  model.RegisterRequest{Gender: strptr("UNKNOWN")},
			want: apperr.ErrGenderNotValid,
		},
		{
			name: "birth date",
			req:  model.RegisterRequest{BirthDate: strptr("1995-1-1")},
			want: apperr.ErrBirthDateInvalid,
		},
		{
			name: "mbti",
			req:  model.RegisterRequest{MbtiType: strptr("ABCD")},
			want: apperr.ErrMbtiNotValid,
		},
		{
			name: "blood type",
			req:  model.RegisterRequest{BloodType: strptr("C")},
			want: apperr.ErrBloodNotValid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Email = "user@example.com"
			tc.req.Password = "password123"
			tc.req.Nickname = "writer"

			_, err := svc.Register(context.Background(), tc.req)
			if err != tc.want {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLogin_InvalidEmail(t *testing.T) {
	svc := newTestAccountService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "not-an-email",
		Password: "password123",
	})
	if err != apperr.ErrEmailIncorrect {
		t.Errorf("expected ErrEmailIncorrect, got %v", err)
	}
}

func TestChangeProfile_InvalidField(t *testing.T) {
	svc := newTestAccountService()

	_, err := svc.ChangeProfile(context.Background(), "account-1", model.ChangeProfileRequest{
		Nickname: "writer",
		MbtiType: strptr("XXXX"),
	})
	if err != apperr.ErrMbtiNotValid {
		t.Errorf("expected ErrMbtiNotValid, got %v", err)
	}
}

func TestChangeEmail_InvalidNewEmail(t *testing.T) {
	svc := newTestAccountService()

	_, err := svc.ChangeEmail(context.Background(), "account-1", model.ChangeEmailRequest{
		CurrentEmail:       "old@example.com",
		ChangeRequestEmail: "broken",
	})
	if err != apperr.ErrChangeEmailIncorrect {
		t.Errorf("expected ErrChangeEmailIncorrect, got %v", err)
	}
}

func TestChangeEmail_SameAsCurrent(t *testing.T) {
	svc := newTestAccountService()

	_, err := svc.ChangeEmail(context.Background(), "account-1", model.ChangeEmailRequest{
		CurrentEmail:       "same@example.com",
		ChangeRequestEmail: "same@example.com",
	})
	if err != apperr.ErrEmailSameAsCurrent {
		t.Errorf("expected ErrEmailSameAsCurrent, got %v", err)
	}
}

func TestChangePassword_SameAsCurrent(t *testing.T) {
	svc := newTestAccountService()

	err := svc.ChangePassword(context.Background(), "account-1", model.ChangePasswordRequest{
		CurrentPassword:       "password123",
		ChangeRequestPassword: "password123",
	})
	if err != apperr.ErrPasswordSameAsCurrent {
		t.Errorf("expected ErrPasswordSameAsCurrent, got %v", err)
	}
}
