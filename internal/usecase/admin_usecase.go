package usecase

import (
	"context"
	"time"

	"maternacare/internal/converter"
	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/identity"
	"maternacare/pkg/apperr"

	"github.com/sirupsen/logrus"
)

type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	ListPendingClinics(ctx context.Context) ([]*dto.UserResponse, error)
	ApproveClinic(ctx context.Context, caller *entity.User, clinicID string) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, caller *entity.User, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	MakeAdmin(ctx context.Context, req *dto.MakeAdminRequest) (*dto.UserResponse, error)
}

type adminUsecase struct {
	log      *logrus.Logger
	users    repository.UserRepository
	mothers  repository.MotherRepository
	clinics  repository.ClinicRepository
	provider identity.Provider
	notifier Notifier
}

func NewAdminUsecase(
	log *logrus.Logger,
	users repository.UserRepository,
	mothers repository.MotherRepository,
	clinics repository.ClinicRepository,
	provider identity.Provider,
	notifier Notifier,
) AdminUsecase {
	return &adminUsecase{
		log:      log,
		users:    users,
		mothers:  mothers,
		clinics:  clinics,
		provider: provider,
		notifier: notifier,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get users", err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp, err := u.enrich(ctx, user)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (u *adminUsecase) ListPendingClinics(ctx context.Context) ([]*dto.UserResponse, error) {
	ids, err := u.clinics.PendingIDs(ctx)
	if err != nil {
		u.log.Warnf("Failed to list pending clinics: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get pending clinics", err)
	}

	responses := make([]*dto.UserResponse, 0, len(ids))
	for _, id := range ids {
		user, err := u.users.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to load pending clinic user: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get pending clinics", err)
		}
		if user == nil {
			continue
		}
		profile, err := u.clinics.Find(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to load pending clinic profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get pending clinics", err)
		}
		responses = append(responses, converter.EnrichClinic(converter.UserToResponse(user), profile))
	}
	return responses, nil
}

func (u *adminUsecase) ApproveClinic(ctx context.Context, caller *entity.User, clinicID string) (*dto.UserResponse, error) {
	user, err := u.users.FindByID(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to load clinic user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to approve clinic", err)
	}
	if user == nil || !user.IsClinic() {
		return nil, apperr.NotFoundf("Clinic not found")
	}

	profile, err := u.clinics.Find(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to load clinic profile: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to approve clinic", err)
	}
	if profile == nil {
		profile = &entity.ClinicProfile{UserID: clinicID}
	}

	now := time.Now()
	profile.Approved = true
	profile.ApprovedAt = &now
	profile.ApprovedBy = caller.ID
	if err := u.clinics.Save(ctx, profile); err != nil {
		u.log.Warnf("Failed to save clinic profile: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to approve clinic", err)
	}
	if err := u.clinics.RemovePending(ctx, clinicID); err != nil {
		u.log.Warnf("Failed to remove pending clinic: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to approve clinic", err)
	}

	if err := u.notifier.Notify(ctx, clinicID,
		"Account approved",
		"Your clinic account has been approved",
		entity.NotificationTypeSystem,
	); err != nil {
		return nil, err
	}

	return converter.EnrichClinic(converter.UserToResponse(user), profile), nil
}

func (u *adminUsecase) CreateUser(ctx context.Context, caller *entity.User, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existingID, err := u.users.FindIDByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email index: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to create user", err)
	}
	if existingID != "" {
		return nil, apperr.Conflictf("A user with this email address has already been registered")
	}

	userID, err := u.provider.Register(ctx, req.Email, req.Password)
	if err != nil {
		u.log.Warnf("Failed to register credentials: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to create user", err)
	}

	user := &entity.User{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      entity.Role(req.Role),
		Phone:     req.Phone,
		Location:  req.Location,
		CreatedBy: caller.ID,
		CreatedAt: time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to create user", err)
	}

	resp := converter.UserToResponse(user)

	switch user.Role {
	case entity.RoleMother:
		profile := &entity.MotherProfile{
			UserID:  userID,
			LMP:     req.LMP,
			DueDate: entity.DueDate(req.LMP),
		}
		if err := u.mothers.Save(ctx, profile); err != nil {
			u.log.Warnf("Failed to create mother profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to create user", err)
		}
		converter.EnrichMother(resp, profile, time.Now())
	case entity.RoleClinic:
		// Clinics created by an admin are approved immediately and never
		// enter the pending queue.
		now := time.Now()
		profile := &entity.ClinicProfile{
			UserID:     userID,
			Approved:   true,
			ApprovedAt: &now,
			ApprovedBy: caller.ID,
		}
		if err := u.clinics.Save(ctx, profile); err != nil {
			u.log.Warnf("Failed to create clinic profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to create user", err)
		}
		converter.EnrichClinic(resp, profile)
	}

	return resp, nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load user: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
	}
	if user == nil {
		return apperr.NotFoundf("User not found")
	}

	switch user.Role {
	case entity.RoleMother:
		if err := u.mothers.Delete(ctx, userID); err != nil {
			u.log.Warnf("Failed to delete mother profile: %+v", err)
			return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
		}
	case entity.RoleClinic:
		if err := u.clinics.Delete(ctx, userID); err != nil {
			u.log.Warnf("Failed to delete clinic profile: %+v", err)
			return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
		}
		if err := u.clinics.RemovePending(ctx, userID); err != nil {
			u.log.Warnf("Failed to remove pending clinic: %+v", err)
			return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
		}
	}

	if err := u.provider.Revoke(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke sessions: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
	}
	if err := u.provider.Remove(ctx, user.Email); err != nil {
		u.log.Warnf("Failed to remove credentials: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
	}

	if err := u.users.Delete(ctx, user); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete user", err)
	}
	return nil
}

func (u *adminUsecase) MakeAdmin(ctx context.Context, req *dto.MakeAdminRequest) (*dto.UserResponse, error) {
	userID, err := u.users.FindIDByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to resolve email: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to promote user", err)
	}
	if userID == "" {
		return nil, apperr.NotFoundf("User not found")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to promote user", err)
	}
	if user == nil {
		return nil, apperr.NotFoundf("User not found")
	}

	user.Role = entity.RoleAdmin
	user.UpdatedAt = time.Now()
	if err := u.users.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to promote user", err)
	}

	return converter.UserToResponse(user), nil
}

func (u *adminUsecase) enrich(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	resp := converter.UserToResponse(user)
	switch user.Role {
	case entity.RoleMother:
		profile, err := u.mothers.Find(ctx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load mother profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to load profile", err)
		}
		converter.EnrichMother(resp, profile, time.Now())
	case entity.RoleClinic:
		profile, err := u.clinics.Find(ctx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load clinic profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to load profile", err)
		}
		converter.EnrichClinic(resp, profile)
	}
	return resp, nil
}
