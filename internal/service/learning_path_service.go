package service

import (
	"context"
	"errors"
	"strings"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LearningPathService struct {
	PathRepo     *repository.LearningPathRepository
	ProgressRepo *repository.ProgressRepository
	Catalog      *CatalogService
}

func NewLearningPathService(
	pathRepo *repository.LearningPathRepository,
	progressRepo *repository.ProgressRepository,
	catalog *CatalogService,
) *LearningPathService {
	return &LearningPathService{
		PathRepo:     pathRepo,
		ProgressRepo: progressRepo,
		Catalog:      catalog,
	}
}

// PathWithProgress decorates a path with the caller's progress row.
type PathWithProgress struct {
	model.LearningPath
	Progress *model.LearningPathProgress `json:"progress,omitempty"`
}

func (s *LearningPathService) List(userID uint, subject string) ([]PathWithProgress, error) {
	paths, err := s.PathRepo.List(subject)
	if err != nil {
		return nil, err
	}

	progressByPath, err := s.ProgressRepo.MapByPath(userID)
	if err != nil {
		return nil, err
	}

	out := make([]PathWithProgress, len(paths))
	for i, p := range paths {
		out[i] = PathWithProgress{LearningPath: p, Progress: progressByPath[p.ID]}
	}
	return out, nil
}

func (s *LearningPathService) Get(userID uint, id string) (*PathWithProgress, error) {
	path, err := s.PathRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	out := &PathWithProgress{LearningPath: *path}
	if p, err := s.ProgressRepo.FindCurrent(userID, id); err == nil {
		out.Progress = p
	}
	return out, nil
}

// ImportFromCatalog ingests catalog courses as learning paths, skipping
// titles that already exist. Returns the number of paths created.
func (s *LearningPathService) ImportFromCatalog(ctx context.Context, subject string) (int, error) {
	courses := s.Catalog.FetchCourses(ctx, subject)

	created := 0
	for _, course := range courses {
		if course.Name == "" {
			continue
		}
		if _, err := s.PathRepo.FindByTitle(course.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		path := &model.LearningPath{
			Title:          course.Name,
			Description:    course.Description,
			Difficulty:     normalizeDifficulty(course.Difficulty),
			Topics:         topicsFromDescription(course.Name),
			EstimatedHours: 10,
		}
		if err := s.PathRepo.Create(path); err != nil {
			return created, err
		}
		created++
		logger.Log.Info("imported catalog course", zap.String("title", course.Name))
	}

	return created, nil
}

func normalizeDifficulty(raw string) model.Difficulty {
	switch strings.ToLower(raw) {
	case "intermediate":
		return model.DifficultyIntermediate
	case "advanced":
		return model.DifficultyAdvanced
	default:
		return model.DifficultyBeginner
	}
}

func topicsFromDescription(title string) model.StringList {
	return model.StringList{
		"Introduction to " + title,
		"Core Concepts",
		"Applied Practice",
		"Assessment and Review",
	}
}
