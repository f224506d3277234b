package models

import "time"

// Author is a user designated as a blog contributor. The user reference is
// nulled when the underlying user is deleted; the author record and its
// posts persist. One author per user.
type Author struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"uniqueIndex"`
	User      *User     `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Bio       string    `json:"bio" gorm:"type:text"`
	Posts     []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAuthorRequest struct {
	UserID uint   `json:"user_id" form:"user_id" binding:"required"`
	Bio    string `json:"bio" form:"bio" binding:"required"`
}
