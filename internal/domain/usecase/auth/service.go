package auth

import (
	"context"
	"errors"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/persistence"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
)

// Service implements the credential service: signup, login, token
// authentication and profile updates
type Service struct {
	userRepo     persistence.UserRepository
	tokenManager coreport.TokenManager
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new credential service
func NewService(
	userRepo persistence.UserRepository,
	tokenManager coreport.TokenManager,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Signup registers a new user. The role defaults to USER when absent; the
// password is hashed before anything touches storage.
func (s *Service) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	role, err := entity.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	if input.Password == "" {
		return nil, errs.NewValidationError("password", "Password is required")
	}

	email := entity.NormalizeEmail(input.Email)
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(input.Name, email, hash, role, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique index still decides the race; a concurrent signup with the
	// same email fails here with ErrDuplicateEmail.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
	})

	return user, nil
}

// Login verifies the credentials, applies the optional requested-role check
// and issues a signed bearer token
func (s *Service) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.logger.Warn("Login failed: bad credentials", map[string]any{
			"email": user.Email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	// Login-time UX check only; authorization always reads the stored role.
	if input.Role != "" {
		requested, err := entity.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		if requested != user.Role {
			return nil, errs.NewRoleMismatchError(string(requested), string(user.Role))
		}
	}

	token, err := s.tokenManager.Issue(coreport.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	})

	return &usecase.LoginResult{Token: token, User: user}, nil
}

// Authenticate validates the token and resolves the identity from storage,
// so a deleted user's still-live token stops working immediately
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.tokenManager.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies the non-empty fields; each is independently optional
func (s *Service) UpdateProfile(ctx context.Context, userID uint64, update usecase.ProfileUpdate) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}

	if update.Email != "" {
		email := entity.NormalizeEmail(update.Email)
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errs.ErrDuplicateEmail
			}
			user.Email = email
		}
	}

	if update.Password != "" {
		hash, err := s.hasher.Hash(update.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			return nil, errs.ErrInternalServer
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = s.timeProvider.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", map[string]any{
		"user_id": user.ID,
	})

	return user, nil
}
