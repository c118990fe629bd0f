package model

import (
	"html"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AuthorForm là raw form data của POST /catalog/author/create
type AuthorForm struct {
	FirstName   string `form:"first_name"`
	FamilyName  string `form:"family_name"`
	DateOfBirth string `form:"date_of_birth"`
	DateOfDeath string `form:"date_of_death"`
}

// Violation là một lỗi validation của một field
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldRules gom các rule của một field. Mỗi rule được chạy độc lập,
// field không dừng ở lỗi đầu tiên.
type fieldRules struct {
	field string
	value func(f AuthorForm) string
	rules []validation.Rule
}

var authorFormRules = []fieldRules{
	{
		field: "first_name",
		value: func(f AuthorForm) string { return strings.TrimSpace(f.FirstName) },
		rules: []validation.Rule{
			validation.Required.Error("First name must be specified."),
			is.Alphanumeric.Error("First name has non-alphanumeric characters"),
		},
	},
	{
		field: "family_name",
		value: func(f AuthorForm) string { return strings.TrimSpace(f.FamilyName) },
		rules: []validation.Rule{
			validation.Required.Error("Family name must be specified"),
			is.Alphanumeric.Error("Family name has non-alphanumeric characters"),
		},
	},
	{
		field: "date_of_birth",
		value: func(f AuthorForm) string { return f.DateOfBirth },
		rules: []validation.Rule{
			ISODate.Error("Invalid date of birth"),
		},
	},
	{
		field: "date_of_death",
		value: func(f AuthorForm) string { return f.DateOfDeath },
		rules: []validation.Rule{
			ISODate.Error("Invalid date of death"),
		},
	},
}

// Validate chạy toàn bộ rules theo thứ tự field và trả về tất cả violations.
// Empty slice nghĩa là form hợp lệ.
func (f AuthorForm) Validate() []Violation {
	violations := []Violation{}
	for _, fr := range authorFormRules {
		value := fr.value(f)
		for _, rule := range fr.rules {
			if err := rule.Validate(value); err != nil {
				violations = append(violations, Violation{Field: fr.field, Message: err.Error()})
			}
		}
	}
	return violations
}

// Sanitize trim + escape names và parse dates thành candidate Author (chưa có ID).
// Chạy bất kể kết quả Validate; date không parse được trở thành nil.
func (f AuthorForm) Sanitize() Author {
	return Author{
		FirstName:   html.EscapeString(strings.TrimSpace(f.FirstName)),
		FamilyName:  html.EscapeString(strings.TrimSpace(f.FamilyName)),
		DateOfBirth: toDate(f.DateOfBirth),
		DateOfDeath: toDate(f.DateOfDeath),
	}
}

// isoLayouts là các dạng ISO-8601 được chấp nhận, từ chính xác nhất tới thô nhất
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
	"2006-01",
	"2006",
}

// ParseISODate parse s theo isoLayouts và trả về calendar date (00:00 UTC)
func ParseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func toDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, ok := ParseISODate(s)
	if !ok {
		return nil
	}
	return &t
}

// ISODate validates that a non-empty string is an ISO-8601 date. Empty values pass.
var ISODate = isoDateRule{message: "must be a valid ISO-8601 date"}

type isoDateRule struct {
	message string
}

func (r isoDateRule) Validate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := ParseISODate(s); !ok {
		return validation.NewError("validation_is_iso8601", r.message)
	}
	return nil
}

// Error sets a custom error message.
func (r isoDateRule) Error(message string) isoDateRule {
	r.message = message
	return r
}
