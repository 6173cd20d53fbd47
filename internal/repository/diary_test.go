package repository

import (
	"strings"
	"testing"
)

func TestListQuery_PinnedFirstNewestFirst(t *testing.T) {
	if !strings.Contains(listQuery, "ORDER BY pinned DESC, diary_date DESC") {
		t.Error("list query must order pinned entries first, then newest diary date first")
	}
	if !strings.Contains(listQuery, "LIMIT ? OFFSET ?") {
		t.Error("list query must page with limit and offset parameters")
	}
	if strings.Contains(listQuery, ", content") {
		t.Error("list query must not select the content body")
	}
	if !strings.Contains(listQuery, "secret_code IS NOT NULL") {
		t.Error("list query must expose only the presence of a secret code")
	}
}

func TestListTagsQuery_DeterministicOrder(t *testing.T) {
	if !strings.Contains(listTagsQuery, "ORDER BY id") {
		t.Error("tag query must have a deterministic order")
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1); got != "?" {
		t.Errorf("placeholders(1) = %q", got)
	}
	if got := placeholders(3); got != "?, ?, ?" {
		t.Errorf("placeholders(3) = %q", got)
	}
}

func TestValueRows(t *testing.T) {
	if got := valueRows(1, 4); got != "(?, ?, ?, ?)" {
		t.Errorf("valueRows(1, 4) = %q", got)
	}
	if got := valueRows(2, 2); got != "(?, ?), (?, ?)" {
		t.Errorf("valueRows(2, 2) = %q", got)
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrDiaryNotFound == nil || ErrAccountNotFound == nil || ErrSettingNotFound == nil {
		t.Fatal("sentinel errors must not be nil")
	}
	if ErrDiaryNotFound.Error() != "diary entry not found" {
		t.Errorf("unexpected error message: %s", ErrDiaryNotFound.Error())
	}
}

func TestNewDiaryRepository(t *testing.T) {
	repo := NewDiaryRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil DiaryRepository")
	}
}
