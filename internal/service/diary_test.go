package service

import (
	"context"
	"testing"
	"time"

	"github.com/daybook/daybook-go/internal/apperr"
	"github.com/daybook/daybook-go/internal/model"
	"github.com/daybook/daybook-go/internal/repository"
)

func newTestDiaryService() *DiaryService {
	return NewDiaryService(repository.NewDiaryRepository(nil))
}

func TestCreate_InvalidDate(t *testing.T) {
	svc := newTestDiaryService()

	for _, date := range []string{"", "2026-8-1", "yesterday", "2026-13-40"} {
		_, err := svc.Create(context.Background(), "account-1", model.CreateDiaryRequest{
			DiaryDate: date,
			Title:     "a day",
			Content:   "something happened",
		})
		if err != apperr.ErrDiaryDateInvalid {
			t.Errorf("date %q: expected ErrDiaryDateInvalid, got %v", date, err)
		}
	}
}

func TestCreate_EmptyTitle(t *testing.T) {
	svc := newTestDiaryService()

	_, err := svc.Create(context.Background(), "account-1", model.CreateDiaryRequest{
		DiaryDate: "2026-08-31",
		Title:     "",
		Content:   "something happened",
	})
	if err != apperr.ErrTitleInvalid {
		t.Errorf("expected ErrTitleInvalid, got %v", err)
	}
}

func TestCreate_EmptyContent(t *testing.T) {
	svc := newTestDiaryService()

	_, err := svc.Create(context.Background(), "account-1", model.CreateDiaryRequest{
		DiaryDate: "2026-08-31",
		Title:     "a day",
		Content:   "",
	})
	if err != apperr.ErrContentInvalid {
		t.Errorf("expected ErrContentInvalid, got %v", err)
	}
}

func TestSecretCodeMatches(t *testing.T) {
	code := strptr("1234")
	wrong := strptr("wrong")
	empty := strptr("")

	cases := []struct {
		name             string
		stored, supplied *string
		want             bool
	}{
		{"ungated entry, no code supplied", nil, nil, true},
		{"ungated entry, code supplied anyway", nil, code, true},
		{"gated entry, no code supplied", code, nil, false},
		{"gated entry, empty code supplied", code, empty, false},
		{"gated entry, wrong code supplied", code, wrong, false},
		{"gated entry, exact match", code, strptr("1234"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := secretCodeMatches(tc.stored, tc.supplied); got != tc.want {
				t.Errorf("secretCodeMatches(%v, %v) = %v, want %v", tc.stored, tc.supplied, got, tc.want)
			}
		})
	}
}

func TestParseDiaryDate_NormalizesToUTC(t *testing.T) {
	got, err := parseDiaryDate("2026-08-31")
	if err != nil {
		t.Fatalf("parseDiaryDate failed: %v", err)
	}

	// Midnight KST is 15:00 UTC the previous day.
	want := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFormatDiaryDate_RoundTrip(t *testing.T) {
	for _, date := range []string{"2026-01-01", "2026-08-31", "2026-12-31"} {
		parsed, err := parseDiaryDate(date)
		if err != nil {
			t.Fatalf("parseDiaryDate(%q) failed: %v", date, err)
		}
		if got := formatDiaryDate(parsed); got != date {
			t.Errorf("round trip of %q produced %q", date, got)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit                  int
		wantPage, wantLimit, wantOff int
	}{
		{1, 10, 1, 10, 0},
		{3, 10, 3, 10, 20},
		{0, 5, 1, 5, 0},
		{-2, 0, 1, 10, 0},
	}

	for _, tc := range cases {
		page, limit, offset := normalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit || offset != tc.wantOff {
			t.Errorf("normalizePage(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tc.page, tc.limit, page, limit, offset, tc.wantPage, tc.wantLimit, tc.wantOff)
		}
	}
}

func TestFreshTags(t *testing.T) {
	if freshTags(nil) != nil {
		t.Error("expected nil for an empty tag list")
	}

	first := freshTags([]string{"a", "b"})
	if len(first) != 2 || first[0].Tag != "a" || first[1].Tag != "b" {
		t.Fatalf("unexpected tag set: %+v", first)
	}

	second := freshTags([]string{"a", "b"})
	if first[0].ID == second[0].ID || first[1].ID == second[1].ID {
		t.Error("replacement tags must get fresh identifiers")
	}
}
