package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/transport"
	"github.com/flashfiesta/backend/pkg/hash"
	"github.com/flashfiesta/backend/pkg/logging"
	"github.com/flashfiesta/backend/pkg/tokens"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("invalid refresh token")

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*transport.TokenPair, error) {
	accessExp := time.Now().Add(accessTTL)
	access, err := tokens.SignAccessToken(user.ID.String(), user.Profile.Role, s.JWTSecret, accessExp)
	if err != nil {
		return nil, err
	}

	refreshExp := time.Now().Add(refreshTTL)
	refresh, err := tokens.SignRefreshToken(user.ID.String(), s.RefreshSecret, refreshExp)
	if err != nil {
		return nil, err
	}

	claims, err := tokens.RefreshClaimsFromToken(refresh, s.RefreshSecret)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.AddRefreshToken(ctx, user.ID, refresh, claims.ID, refreshExp); err != nil {
		return nil, err
	}

	return &transport.TokenPair{Access: access, Refresh: refresh}, nil
}

// Register creates the account with its profile (role CUSTOMER) and
// returns a fresh token pair, mirroring the login response.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, *transport.TokenPair, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if req.Username == "" {
		return nil, nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if req.Password == "" {
		return nil, nil, fmt.Errorf("%w: password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, nil, err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwHash,
		Profile: models.Profile{
			Role:        models.RoleCustomer,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
			City:        req.City,
			ZipCode:     req.ZipCode,
		},
	}

	if err := s.Repo.CreateUserWithProfile(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "status", 400, "reason", "user already exist")
			return nil, nil, fmt.Errorf("%w: username taken", ErrValidation)
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, &user)
	if err != nil {
		l.Error("register_error", "status", 500, "error", err)
		return nil, nil, err
	}

	l.Info("register_success", "username", user.Username)
	return &user, pair, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, *transport.TokenPair, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	user, err := s.Repo.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "invalid username or password")
			return nil, nil, repo.ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, nil, err
	}

	l.Info("login_success")
	return user, pair, nil
}

// Refresh rotates the refresh token and mints a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, rawRefresh string) (*transport.TokenPair, error) {
	claims, err := tokens.RefreshClaimsFromToken(rawRefresh, s.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidRefreshToken)
	}

	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown user", ErrInvalidRefreshToken)
	}

	accessExp := time.Now().Add(accessTTL)
	access, err := tokens.SignAccessToken(user.ID.String(), user.Profile.Role, s.JWTSecret, accessExp)
	if err != nil {
		return nil, err
	}

	refreshExp := time.Now().Add(refreshTTL)
	newRefresh, err := tokens.SignRefreshToken(user.ID.String(), s.RefreshSecret, refreshExp)
	if err != nil {
		return nil, err
	}
	newClaims, err := tokens.RefreshClaimsFromToken(newRefresh, s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.RotateRefreshToken(ctx, claims.ID, user.ID, newRefresh, newClaims.ID, refreshExp); err != nil {
		if errors.Is(err, repo.ErrTokenExpiredOrRevoked) {
			return nil, fmt.Errorf("%w: expired or revoked", ErrInvalidRefreshToken)
		}
		return nil, err
	}

	return &transport.TokenPair{Access: access, Refresh: newRefresh}, nil
}

func (s *AuthService) Logout(ctx context.Context, rawRefresh string) error {
	if rawRefresh == "" {
		return nil
	}
	return s.Repo.RevokeRefreshToken(ctx, rawRefresh)
}

func (s *AuthService) GetProfile(ctx context.Context, p *authz.Principal) (*models.User, error) {
	if p == nil {
		return nil, authz.ErrPermissionDenied
	}
	return s.Repo.GetUserByID(ctx, p.UserID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, p *authz.Principal, req transport.UpdateProfileRequest) (*models.User, error) {
	if p == nil {
		return nil, authz.ErrPermissionDenied
	}

	user, err := s.Repo.GetUserByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
		if err := s.Repo.SaveUser(ctx, user); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != nil {
		user.Profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		user.Profile.Address = *req.Address
	}
	if req.City != nil {
		user.Profile.City = *req.City
	}
	if req.ZipCode != nil {
		user.Profile.ZipCode = *req.ZipCode
	}
	if err := s.Repo.SaveProfile(ctx, &user.Profile); err != nil {
		return nil, err
	}
	return user, nil
}

// ListEmployees and UpdateEmployeePermissions are owner-only: granting
// capabilities is itself not a grantable capability.
func (s *AuthService) ListEmployees(ctx context.Context, p *authz.Principal) ([]models.User, error) {
	if p == nil || p.Profile.Role != models.RoleOwner {
		return nil, authz.ErrPermissionDenied
	}
	return s.Repo.ListEmployees(ctx)
}

func (s *AuthService) UpdateEmployeePermissions(ctx context.Context, p *authz.Principal, userID uuid.UUID, req transport.UpdatePermissionsRequest) (*models.User, error) {
	if p == nil || p.Profile.Role != models.RoleOwner {
		return nil, authz.ErrPermissionDenied
	}

	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	if req.Role != nil {
		switch *req.Role {
		case models.RoleEmployee, models.RoleCustomer:
			user.Profile.Role = *req.Role
		default:
			return nil, fmt.Errorf("%w: role must be EMPLOYEE or CUSTOMER", ErrValidation)
		}
	}
	if req.CanViewStats != nil {
		user.Profile.CanViewStats = *req.CanViewStats
	}
	if req.CanManageProducts != nil {
		user.Profile.CanManageProducts = *req.CanManageProducts
	}
	if req.CanManageCategories != nil {
		user.Profile.CanManageCategories = *req.CanManageCategories
	}
	if req.CanManageOrders != nil {
		user.Profile.CanManageOrders = *req.CanManageOrders
	}

	if err := s.Repo.SaveProfile(ctx, &user.Profile); err != nil {
		return nil, err
	}
	return user, nil
}
