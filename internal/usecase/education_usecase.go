package usecase

import (
	"context"
	"time"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EducationUsecase interface {
	List(ctx context.Context, category string) ([]*entity.Education, error)
	Get(ctx context.Context, id string) (*entity.Education, error)
	Create(ctx context.Context, caller *entity.User, req *dto.CreateEducationRequest) (*entity.Education, error)
	Update(ctx context.Context, caller *entity.User, id string, req *dto.UpdateEducationRequest) (*entity.Education, error)
	Delete(ctx context.Context, caller *entity.User, id string) error
}

type educationUsecase struct {
	log       *logrus.Logger
	education repository.EducationRepository
}

func NewEducationUsecase(log *logrus.Logger, education repository.EducationRepository) EducationUsecase {
	return &educationUsecase{log: log, education: education}
}

func (u *educationUsecase) List(ctx context.Context, category string) ([]*entity.Education, error) {
	var (
		items []*entity.Education
		err   error
	)
	if category != "" {
		items, err = u.education.FindByCategory(ctx, category)
	} else {
		items, err = u.education.All(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list education content: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get education content", err)
	}
	return items, nil
}

func (u *educationUsecase) Get(ctx context.Context, id string) (*entity.Education, error) {
	content, err := u.education.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find education content: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get education content", err)
	}
	if content == nil {
		return nil, apperr.NotFoundf("Content not found")
	}
	return content, nil
}

func (u *educationUsecase) Create(ctx context.Context, caller *entity.User, req *dto.CreateEducationRequest) (*entity.Education, error) {
	if !caller.IsAdmin() {
		return nil, apperr.Forbiddenf("Forbidden - Admin only")
	}

	content := &entity.Education{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Content:     req.Content,
		Language:    req.Language,
		VideoURL:    req.VideoURL,
		ImageURL:    req.ImageURL,
		CreatedBy:   caller.ID,
		CreatedAt:   time.Now(),
	}
	if err := u.education.Create(ctx, content); err != nil {
		u.log.Warnf("Failed to create education content: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to create content", err)
	}
	return content, nil
}

func (u *educationUsecase) Update(ctx context.Context, caller *entity.User, id string, req *dto.UpdateEducationRequest) (*entity.Education, error) {
	if !caller.IsAdmin() {
		return nil, apperr.Forbiddenf("Forbidden - Admin only")
	}

	content, err := u.education.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find education content: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to update content", err)
	}
	if content == nil {
		return nil, apperr.NotFoundf("Content not found")
	}

	previousCategory := content.Category
	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Category != nil {
		content.Category = *req.Category
	}
	if req.Description != nil {
		content.Description = *req.Description
	}
	if req.Content != nil {
		content.Content = *req.Content
	}
	if req.Language != nil {
		content.Language = *req.Language
	}
	if req.VideoURL != nil {
		content.VideoURL = *req.VideoURL
	}
	if req.ImageURL != nil {
		content.ImageURL = *req.ImageURL
	}
	content.UpdatedAt = time.Now()

	if err := u.education.Update(ctx, content, previousCategory); err != nil {
		u.log.Warnf("Failed to update education content: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to update content", err)
	}
	return content, nil
}

func (u *educationUsecase) Delete(ctx context.Context, caller *entity.User, id string) error {
	if !caller.IsAdmin() {
		return apperr.Forbiddenf("Forbidden - Admin only")
	}

	content, err := u.education.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find education content: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete content", err)
	}
	if content == nil {
		return apperr.NotFoundf("Content not found")
	}

	if err := u.education.Delete(ctx, content); err != nil {
		u.log.Warnf("Failed to delete education content: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete content", err)
	}
	return nil
}
