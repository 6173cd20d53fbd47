package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/daybook/daybook-go/internal/apperr"
	"github.com/daybook/daybook-go/internal/model"
	"github.com/daybook/daybook-go/internal/repository"
	"github.com/daybook/daybook-go/internal/validate"
)

// diaryDateLayout is the wire format of a diary date.
const diaryDateLayout = "2006-01-02"

// sourceZone is the timezone diary dates are written and read in. Storage
// keeps them in UTC.
var sourceZone = time.FixedZone("KST", 9*60*60)

const defaultListLimit = 10

// DiaryService handles diary entry and tag business logic. Every operation
// is scoped to the verified account identifier the caller threads in.
type DiaryService struct {
	repo *repository.DiaryRepository
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(repo *repository.DiaryRepository) *DiaryService {
	return &DiaryService{repo: repo}
}

// parseDiaryDate interprets a YYYY-MM-DD string in the source timezone and
// normalizes it to UTC for storage.
func parseDiaryDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(diaryDateLayout, s, sourceZone)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// formatDiaryDate renders a stored UTC timestamp back in the source
// timezone as a plain date.
func formatDiaryDate(t time.Time) string {
	return t.In(sourceZone).Format(diaryDateLayout)
}

// secretCodeMatches reports whether the supplied code passes the gate for
// the stored one. A nil stored code means the entry is ungated; a non-nil
// stored code must be matched exactly.
func secretCodeMatches(stored, supplied *string) bool {
	if stored == nil {
		return true
	}
	return supplied != nil && *supplied == *stored
}

// normalizePage clamps page and limit to usable values and computes the
// offset as (page-1)*limit.
func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultListLimit
	}
	return page, limit, (page - 1) * limit
}

// List returns one page of diary metadata, pinned entries first, with each
// entry's tag set and a flag for the presence of a secret code.
func (s *DiaryService) List(ctx context.Context, accountID string, page, limit int) (model.DiaryListResponse, error) {
	page, limit, offset := normalizePage(page, limit)

	rows, err := s.repo.List(ctx, accountID, limit, offset)
	if err != nil {
		return model.DiaryListResponse{}, err
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	tagsByID, err := s.repo.TagsByDiaryIDs(ctx, accountID, ids)
	if err != nil {
		return model.DiaryListResponse{}, err
	}

	items := make([]model.DiaryListItem, len(rows))
	for i, row := range rows {
		items[i] = model.DiaryListItem{
			ID:            row.ID,
			DiaryDate:     formatDiaryDate(row.DiaryDate),
			Title:         row.Title,
			Pinned:        row.Pinned,
			HasSecretCode: row.HasSecretCode,
			Tags:          tagsByID[row.ID],
		}
	}

	return model.DiaryListResponse{
		Information: model.ListInformation{
			Page:      page,
			Limit:     limit,
			DataCount: len(items),
		},
		Data: items,
	}, nil
}

// GetByID returns the full entry with its tags. If the entry carries a
// secret code the supplied code must match exactly, or nothing is returned,
// not even metadata.
func (s *DiaryService) GetByID(ctx context.Context, accountID, diaryID, secretCode string) (model.DiaryResponse, error) {
	entry, err := s.repo.GetByID(ctx, accountID, diaryID)
	if err != nil {
		if errors.Is(err, repository.ErrDiaryNotFound) {
			return model.DiaryResponse{}, apperr.ErrDiaryNotFound
		}
		return model.DiaryResponse{}, err
	}

	if !secretCodeMatches(entry.SecretCode, &secretCode) {
		return model.DiaryResponse{}, apperr.ErrSecretCodeMismatch
	}

	tags, err := s.repo.ListTags(ctx, accountID, diaryID)
	if err != nil {
		return model.DiaryResponse{}, err
	}

	return diaryResponseOf(entry, tags), nil
}

// Create validates and stores a new diary entry, bulk-inserting its tags in
// the same transaction when any were supplied.
func (s *DiaryService) Create(ctx context.Context, accountID string, req model.CreateDiaryRequest) (model.DiaryResponse, error) {
	if !validate.Date(req.DiaryDate) {
		return model.DiaryResponse{}, apperr.ErrDiaryDateInvalid
	}
	if req.Title == "" {
		return model.DiaryResponse{}, apperr.ErrTitleInvalid
	}
	if req.Content == "" {
		return model.DiaryResponse{}, apperr.ErrContentInvalid
	}

	diaryDate, err := parseDiaryDate(req.DiaryDate)
	if err != nil {
		return model.DiaryResponse{}, apperr.ErrDiaryDateInvalid
	}

	now := time.Now().UTC().Truncate(time.Second)
	entry := &model.DiaryEntry{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		DiaryDate:  diaryDate,
		Title:      req.Title,
		Content:    req.Content,
		Pinned:     req.Pinned,
		SecretCode: req.SecretCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	tags := freshTags(req.Tags)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return model.DiaryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.InsertTx(ctx, tx, entry); err != nil {
		return model.DiaryResponse{}, err
	}
	if err := s.repo.InsertTagsTx(ctx, tx, accountID, entry.ID, tags); err != nil {
		return model.DiaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.DiaryResponse{}, err
	}

	return diaryResponseOf(entry, tags), nil
}

// Update fully replaces a diary entry after passing the secret-code gate.
// The stored secret code is set to the change-request code, which may be
// nil to clear the gate. The prior tag set is always deleted and replaced.
func (s *DiaryService) Update(ctx context.Context, accountID, diaryID string, req model.UpdateDiaryRequest) (model.DiaryResponse, error) {
	stored, err := s.repo.GetByID(ctx, accountID, diaryID)
	if err != nil {
		if errors.Is(err, repository.ErrDiaryNotFound) {
			return model.DiaryResponse{}, apperr.ErrDiaryNotFound
		}
		return model.DiaryResponse{}, err
	}

	if !secretCodeMatches(stored.SecretCode, req.SecretCode) {
		return model.DiaryResponse{}, apperr.ErrSecretCodeMismatch
	}

	if !validate.Date(req.DiaryDate) {
		return model.DiaryResponse{}, apperr.ErrDiaryDateInvalid
	}
	diaryDate, err := parseDiaryDate(req.DiaryDate)
	if err != nil {
		return model.DiaryResponse{}, apperr.ErrDiaryDateInvalid
	}

	entry := &model.DiaryEntry{
		ID:         stored.ID,
		AccountID:  accountID,
		DiaryDate:  diaryDate,
		Title:      req.Title,
		Content:    req.Content,
		Pinned:     req.Pinned,
		SecretCode: req.ChangeRequestSecretCode,
		CreatedAt:  stored.CreatedAt,
		UpdatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	tags := freshTags(req.Tags)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return model.DiaryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.UpdateTx(ctx, tx, entry); err != nil {
		return model.DiaryResponse{}, err
	}
	if err := s.repo.DeleteTagsTx(ctx, tx, accountID, diaryID); err != nil {
		return model.DiaryResponse{}, apperr.ErrDiaryTagUpdateFailed
	}
	if err := s.repo.InsertTagsTx(ctx, tx, accountID, diaryID, tags); err != nil {
		return model.DiaryResponse{}, apperr.ErrDiaryTagUpdateFailed
	}
	if err := tx.Commit(); err != nil {
		return model.DiaryResponse{}, err
	}

	return diaryResponseOf(entry, tags), nil
}

// Delete removes an entry and its tags, tags first. The two deletes carry
// distinct error codes so a caller can tell which half failed.
func (s *DiaryService) Delete(ctx context.Context, accountID, diaryID string) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.DeleteTagsTx(ctx, tx, accountID, diaryID); err != nil {
		return apperr.ErrDiaryTagDeleteFailed
	}
	if err := s.repo.DeleteEntryTx(ctx, tx, accountID, diaryID); err != nil {
		return apperr.ErrDiaryContentDeleteFailed
	}
	return tx.Commit()
}

// freshTags assigns a new identifier to every tag in the replacement set.
// Tag identity never survives an update.
func freshTags(tags []string) []model.DiaryTag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]model.DiaryTag, len(tags))
	for i, tag := range tags {
		out[i] = model.DiaryTag{ID: uuid.NewString(), Tag: tag}
	}
	return out
}

func diaryResponseOf(entry *model.DiaryEntry, tags []model.DiaryTag) model.DiaryResponse {
	return model.DiaryResponse{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		DiaryDate: formatDiaryDate(entry.DiaryDate),
		Title:     entry.Title,
		Content:   entry.Content,
		Pinned:    entry.Pinned,
		Tags:      tags,
	}
}
