package model

import (
	"time"

	"github.com/google/uuid"
)

// URLPrefix là prefix của display URL, dùng cho redirect và links
const URLPrefix = "/catalog/author/"

// DateLayout dùng để hiển thị và lưu ngày (không có giờ)
const DateLayout = "2006-01-02"

// Author represents the core Author entity
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// URL trả về display URL của author, derived từ ID
func (a Author) URL() string {
	return URLPrefix + a.ID.String()
}

// Name returns "family, first", or "" when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan returns "birth - death" with missing dates left blank.
func (a Author) Lifespan() string {
	return formatDate(a.DateOfBirth) + " - " + formatDate(a.DateOfDeath)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// DuplicateFilter là điều kiện để tìm author đã tồn tại trước khi insert.
// Family name không nằm trong filter (xem DESIGN.md, "duplicate matching").
// Nil date chỉ match record không có date đó.
type DuplicateFilter struct {
	FirstName   string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// DuplicateFilter build filter từ candidate author
func (a Author) DuplicateFilter() DuplicateFilter {
	return DuplicateFilter{
		FirstName:   a.FirstName,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
	}
}

// Matches reports whether a satisfies f. Used by in-memory stores and tests.
func (f DuplicateFilter) Matches(a Author) bool {
	return a.FirstName == f.FirstName &&
		sameDate(a.DateOfBirth, f.DateOfBirth) &&
		sameDate(a.DateOfDeath, f.DateOfDeath)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Format(DateLayout) == b.Format(DateLayout)
}
