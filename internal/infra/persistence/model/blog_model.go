package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BlogModel mirrors the 'blogs' table. Tags are stored as a native
// text[] column so tag-overlap filtering can run in the database.
type BlogModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	Body        string         `gorm:"type:text;not null"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	State       string         `gorm:"type:varchar(16);not null;default:draft;index"`
	ReadingTime string         `gorm:"type:varchar(32);not null"`
	ReadCount   int            `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
