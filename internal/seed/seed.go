// Package seed loads the initial education library and optionally creates
// the bootstrap admin account at startup.
package seed

import (
	"context"
	"time"

	"maternacare/config"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/identity"
	"maternacare/internal/infrastructure/kv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const seedCompleteKey = "system:seed-complete"

type Seeder struct {
	log       *logrus.Logger
	store     kv.Store
	education repository.EducationRepository
	users     repository.UserRepository
	provider  identity.Provider
}

func NewSeeder(
	log *logrus.Logger,
	store kv.Store,
	education repository.EducationRepository,
	users repository.UserRepository,
	provider identity.Provider,
) *Seeder {
	return &Seeder{
		log:       log,
		store:     store,
		education: education,
		users:     users,
		provider:  provider,
	}
}

// Run seeds the education library once and bootstraps the admin account if
// one is configured. Both steps are idempotent.
func (s *Seeder) Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Seed.Enabled {
		if err := s.seedEducation(ctx); err != nil {
			return err
		}
	}
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := s.bootstrapAdmin(ctx, cfg.Admin); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedEducation(ctx context.Context) error {
	done, err := s.store.Get(ctx, seedCompleteKey)
	if err != nil {
		return errors.Wrap(err, "check seed flag")
	}
	if done != nil {
		s.log.Info("Education content already seeded")
		return nil
	}

	now := time.Now()
	articles := []*entity.Education{
		{
			ID:          "edu_1",
			Title:       "First Trimester Care",
			Category:    "pregnancy",
			Description: "Essential tips for the first 12 weeks of pregnancy",
			Content:     "During the first trimester, focus on proper nutrition, prenatal vitamins, and regular checkups...",
			Language:    "en",
			CreatedAt:   now,
		},
		{
			ID:          "edu_2",
			Title:       "Nutrition During Pregnancy",
			Category:    "nutrition",
			Description: "What to eat and avoid during pregnancy",
			Content:     "A balanced diet is crucial for both mother and baby. Focus on fruits, vegetables, lean proteins...",
			Language:    "en",
			CreatedAt:   now,
		},
		{
			ID:          "edu_3",
			Title:       "Preparing for Labor",
			Category:    "childbirth",
			Description: "What to expect during labor and delivery",
			Content:     "Understanding the stages of labor can help reduce anxiety. Pack your hospital bag early...",
			Language:    "en",
			CreatedAt:   now,
		},
		{
			ID:          "edu_4",
			Title:       "Breastfeeding Basics",
			Category:    "baby-care",
			Description: "Getting started with breastfeeding",
			Content:     "Breastfeeding is natural but may take practice. Ensure proper latch and positioning...",
			Language:    "en",
			CreatedAt:   now,
		},
		{
			ID:          "edu_5",
			Title:       "Exercise During Pregnancy",
			Category:    "wellness",
			Description: "Safe exercises for expectant mothers",
			Content:     "Gentle exercise like walking, swimming, and prenatal yoga can be beneficial...",
			Language:    "en",
			CreatedAt:   now,
		},
	}

	for _, article := range articles {
		existing, err := s.education.FindByID(ctx, article.ID)
		if err != nil {
			return errors.Wrapf(err, "check article %s", article.ID)
		}
		if existing != nil {
			continue
		}
		if err := s.education.Create(ctx, article); err != nil {
			return errors.Wrapf(err, "seed article %s", article.ID)
		}
	}

	if err := s.store.Set(ctx, seedCompleteKey, []byte("true")); err != nil {
		return errors.Wrap(err, "set seed flag")
	}
	s.log.Info("Education content seeded")
	return nil
}

func (s *Seeder) bootstrapAdmin(ctx context.Context, cfg config.AdminConfig) error {
	existingID, err := s.users.FindIDByEmail(ctx, cfg.Email)
	if err != nil {
		return errors.Wrap(err, "check admin email")
	}
	if existingID != "" {
		return nil
	}

	userID, err := s.provider.Register(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return errors.Wrap(err, "register admin credentials")
	}

	admin := &entity.User{
		ID:        userID,
		Email:     cfg.Email,
		Name:      cfg.Name,
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create admin user")
	}
	s.log.Infof("Bootstrap admin account created for %s", cfg.Email)
	return nil
}
