package services

import (
	"gopress/models"

	"gorm.io/gorm"
)

type AuthorService struct {
	db *gorm.DB
}

func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{db: db}
}

func (s *AuthorService) CreateAuthor(req *models.CreateAuthorRequest) (*models.Author, error) {
	author := &models.Author{
		UserID: &req.UserID,
		Bio:    req.Bio,
	}

	if err := s.db.Create(author).Error; err != nil {
		return nil, err
	}

	return author, nil
}

// GetAuthorByUserID resolves the author profile for a user. The user_id
// column carries a unique index, so at most one row matches.
func (s *AuthorService) GetAuthorByUserID(userID uint) (*models.Author, error) {
	var author models.Author
	err := s.db.Where("user_id = ?", userID).First(&author).Error
	return &author, err
}

func (s *AuthorService) GetAuthorByID(id uint) (*models.Author, error) {
	var author models.Author
	err := s.db.Preload("User").First(&author, id).Error
	return &author, err
}
