package utils

import (
	"github.com/google/uuid"
)

// ParseStringToUUID trả về uuid.Nil khi s rỗng hoặc sai format
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}
