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

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Session(ctx context.Context, caller *entity.User) (*dto.UserResponse, error)
	Logout(ctx context.Context, caller *entity.User) error
	UpdateProfile(ctx context.Context, caller *entity.User, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	log      *logrus.Logger
	users    repository.UserRepository
	mothers  repository.MotherRepository
	clinics  repository.ClinicRepository
	provider identity.Provider
}

func NewAuthUsecase(
	log *logrus.Logger,
	users repository.UserRepository,
	mothers repository.MotherRepository,
	clinics repository.ClinicRepository,
	provider identity.Provider,
) AuthUsecase {
	return &authUsecase{
		log:      log,
		users:    users,
		mothers:  mothers,
		clinics:  clinics,
		provider: provider,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	existingID, err := u.users.FindIDByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email index: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "signup failed", err)
	}
	if existingID != "" {
		return nil, apperr.Conflictf("A user with this email address has already been registered")
	}

	userID, err := u.provider.Register(ctx, req.Email, req.Password)
	if err != nil {
		u.log.Warnf("Failed to register credentials: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "signup failed", err)
	}

	user := &entity.User{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      entity.Role(req.Role),
		Phone:     req.Phone,
		Location:  req.Location,
		CreatedAt: time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "signup failed", err)
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
			return nil, apperr.Wrap(apperr.Unexpected, "signup failed", err)
		}
		converter.EnrichMother(resp, profile, time.Now())
	case entity.RoleClinic:
		profile := &entity.ClinicProfile{UserID: userID}
		if err := u.clinics.Save(ctx, profile); err != nil {
			u.log.Warnf("Failed to create clinic profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "signup failed", err)
		}
		if err := u.clinics.AddPending(ctx, userID); err != nil {
			u.log.Warnf("Failed to add pending clinic: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "signup failed", err)
		}
	}

	return resp, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	userID, err := u.users.FindIDByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to resolve email: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "login failed", err)
	}
	if userID == "" {
		return nil, apperr.NotFoundf("User not found")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "login failed", err)
	}
	if user == nil {
		return nil, apperr.NotFoundf("User profile not found")
	}

	if err := u.provider.Authenticate(ctx, req.Email, req.Password); err != nil {
		return nil, apperr.Unauthenticatedf("Invalid email or password")
	}

	// Clinics must be approved before they can sign in.
	if user.IsClinic() {
		clinic, err := u.clinics.Find(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to load clinic profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "login failed", err)
		}
		if clinic == nil || !clinic.Approved {
			return nil, apperr.Forbiddenf("Clinic account pending approval")
		}
	}

	token, err := u.provider.IssueToken(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to issue token: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "login failed", err)
	}

	resp, err := u.enrich(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:        resp,
		AccessToken: token,
		Message:     "Login successful",
	}, nil
}

func (u *authUsecase) Session(ctx context.Context, caller *entity.User) (*dto.UserResponse, error) {
	return u.enrich(ctx, caller)
}

func (u *authUsecase) Logout(ctx context.Context, caller *entity.User) error {
	if err := u.provider.Revoke(ctx, caller.ID); err != nil {
		u.log.Warnf("Failed to revoke sessions: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "logout failed", err)
	}
	return nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, caller *entity.User, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.Name != nil {
		caller.Name = *req.Name
	}
	if req.Phone != nil {
		caller.Phone = *req.Phone
	}
	if req.Location != nil {
		caller.Location = *req.Location
	}
	caller.UpdatedAt = time.Now()

	if err := u.users.Update(ctx, caller); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "profile update failed", err)
	}

	if caller.IsMother() && (req.LMP != nil || req.HasBaby != nil || req.BabyBirthDate != nil) {
		profile, err := u.mothers.Find(ctx, caller.ID)
		if err != nil {
			u.log.Warnf("Failed to load mother profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "profile update failed", err)
		}
		if profile == nil {
			profile = &entity.MotherProfile{UserID: caller.ID}
		}
		if req.LMP != nil {
			profile.LMP = *req.LMP
			profile.DueDate = entity.DueDate(*req.LMP)
		}
		if req.HasBaby != nil {
			profile.HasBaby = *req.HasBaby
		}
		if req.BabyBirthDate != nil {
			profile.BabyBirthDate = *req.BabyBirthDate
		}
		if err := u.mothers.Save(ctx, profile); err != nil {
			u.log.Warnf("Failed to save mother profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "profile update failed", err)
		}
	}

	return u.enrich(ctx, caller)
}

// enrich attaches role-specific profile data to the user response.
func (u *authUsecase) enrich(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	resp := converter.UserToResponse(user)
	if user.IsMother() {
		profile, err := u.mothers.Find(ctx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load mother profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to load profile", err)
		}
		converter.EnrichMother(resp, profile, time.Now())
	}
	return resp, nil
}
