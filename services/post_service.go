package services

import (
	"gopress/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HomePageSize is the fixed window of posts shown on the home listing.
const HomePageSize = 5

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// ListRecent returns the newest posts first, capped at HomePageSize.
// The id tiebreak keeps the order stable when posts share a timestamp.
func (s *PostService) ListRecent() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(HomePageSize).
		Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.User").
		First(&post, id).Error
	return &post, err
}

func (s *PostService) CreatePost(authorID uint, form *models.PostForm) (*models.Post, error) {
	post := &models.Post{
		Title:    form.Title,
		Content:  form.Content,
		AuthorID: &authorID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost overwrites title and content; gorm bumps updated_at on save.
func (s *PostService) UpdatePost(post *models.Post, form *models.PostForm) error {
	post.Title = form.Title
	post.Content = form.Content
	return s.db.Omit(clause.Associations).Save(post).Error
}

func (s *PostService) DeletePost(id uint) error {
	return s.db.Delete(&models.Post{}, id).Error
}
