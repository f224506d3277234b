package models

import "time"

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:128;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  *uint     `json:"author_id" gorm:"index"`
	Author    *Author   `json:"author,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostForm carries the writable post fields for both create and update.
type PostForm struct {
	Title   string `json:"title" form:"title" binding:"required,max=128"`
	Content string `json:"content" form:"content" binding:"required,max=3000"`
}
