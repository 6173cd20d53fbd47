package model

import "time"

// DiaryEntry is a diary row as stored in the diary_content table.
// DiaryDate is kept in UTC; the API boundary renders it in the source
// timezone as a plain date.
type DiaryEntry struct {
	ID         string
	AccountID  string
	DiaryDate  time.Time
	Title      string
	Content    string
	Pinned     bool
	SecretCode *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DiaryTag is a tag attached to a diary entry. Tags are always replaced
// as a whole set, so IDs never survive an update.
type DiaryTag struct {
	ID  string `json:"id"`
	Tag string `json:"tag"`
}

// DiaryListRow is one row of the list projection: metadata only, never
// the content body or the secret code itself.
type DiaryListRow struct {
	ID            string
	DiaryDate     time.Time
	Title         string
	Pinned        bool
	HasSecretCode bool
}

// CreateDiaryRequest represents a diary creation request.
type CreateDiaryRequest struct {
	DiaryDate  string   `json:"diary_date"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Pinned     bool     `json:"pinned"`
	SecretCode *string  `json:"secret_code"`
	Tags       []string `json:"tags"`
}

// UpdateDiaryRequest is a full replace of a diary entry. SecretCode is
// the code the caller supplies to pass the gate; ChangeRequestSecretCode
// is the replacement code, nil to clear it.
type UpdateDiaryRequest struct {
	DiaryDate               string   `json:"diary_date"`
	Title                   string   `json:"title"`
	Content                 string   `json:"content"`
	Pinned                  bool     `json:"pinned"`
	SecretCode              *string  `json:"secret_code"`
	ChangeRequestSecretCode *string  `json:"change_request_secret_code"`
	Tags                    []string `json:"tags"`
}

// DiaryResponse is the full entry returned by create, update and get.
type DiaryResponse struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DiaryDate string     `json:"diary_date"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Pinned    bool       `json:"pinned"`
	Tags      []DiaryTag `json:"tags"`
}

// DiaryListItem is one entry in the list view.
type DiaryListItem struct {
	ID            string     `json:"id"`
	DiaryDate     string     `json:"diary_date"`
	Title         string     `json:"title"`
	Pinned        bool       `json:"pinned"`
	HasSecretCode bool       `json:"has_secret_code"`
	Tags          []DiaryTag `json:"tags"`
}

// ListInformation echoes the paging parameters alongside the result count.
type ListInformation struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	DataCount int `json:"data_count"`
}

// DiaryListResponse is the envelope returned by the list endpoint.
type DiaryListResponse struct {
	Information ListInformation `json:"information"`
	Data        []DiaryListItem `json:"data"`
}
