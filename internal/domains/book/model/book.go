package model

import "github.com/google/uuid"

// URLPrefix là prefix của display URL của book
const URLPrefix = "/catalog/book/"

// Book là record được tạo ở nơi khác; author controller chỉ đọc.
// Khi lấy theo author chỉ đọc ID, Title, Summary; AuthorID là key đã query.
type Book struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Summary  string    `json:"summary" db:"summary"`
	AuthorID uuid.UUID `json:"author_id,omitempty" db:"author_id"`
}

func (b Book) URL() string {
	return URLPrefix + b.ID.String()
}
