package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/timediary/internal/common"
	"github.com/dmitrijs2005/timediary/internal/logging"
	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/repositories/diaries"
	"github.com/google/uuid"
)

// ContentService defines read and mutate operations on the diary collection.
// Diaries and comments are append-only: no edit, no delete.
type ContentService interface {
	// List returns all diaries in stored order.
	List(ctx context.Context) ([]models.Diary, error)

	// Popular returns up to n diaries ordered by views, most viewed first.
	Popular(ctx context.Context, n int) ([]models.Diary, error)

	// GetByID returns one diary, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Diary, error)

	// GetByCategory returns all diaries with the given category label.
	GetByCategory(ctx context.Context, category string) ([]models.Diary, error)

	// Open counts a view and returns the diary. Opening an unknown id
	// returns common.ErrNotFound without touching any counter.
	Open(ctx context.Context, id string) (*models.Diary, error)

	// AddComment appends a comment authored by user to the diary. The
	// author's username and avatar are snapshotted at call time. Rejects
	// anonymous users, blank content and unknown diary ids.
	AddComment(ctx context.Context, diaryID string, user *models.User, content string) (*models.Comment, error)
}

type contentService struct {
	diaries diaries.Repository
	log     logging.Logger
}

// NewContentService constructs a ContentService over the diaries repository.
func NewContentService(d diaries.Repository, log logging.Logger) ContentService {
	return &contentService{diaries: d, log: log}
}

func (s *contentService) List(ctx context.Context) ([]models.Diary, error) {
	return s.diaries.GetAll(ctx)
}

func (s *contentService) Popular(ctx context.Context, n int) ([]models.Diary, error) {
	all, err := s.diaries.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]models.Diary, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func (s *contentService) GetByID(ctx context.Context, id string) (*models.Diary, error) {
	return s.diaries.GetByID(ctx, id)
}

func (s *contentService) GetByCategory(ctx context.Context, category string) ([]models.Diary, error) {
	return s.diaries.GetByCategory(ctx, category)
}

func (s *contentService) Open(ctx context.Context, id string) (*models.Diary, error) {
	diary, err := s.diaries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.diaries.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to count view: %w", err)
	}

	diary.Views++
	return diary, nil
}

func (s *contentService) AddComment(ctx context.Context, diaryID string, user *models.User, content string) (*models.Comment, error) {
	if user == nil {
		return nil, common.ErrUnauthenticated
	}
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrEmptyContent
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		DiaryID:   diaryID,
		UserID:    user.ID,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.diaries.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "comment added", "diary", diaryID, "username", user.Username)
	return comment, nil
}
