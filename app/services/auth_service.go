package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
)

var errBadCredentials = fmt.Errorf("%w: invalid email or password", errs.ErrNotAuthenticated)

type AuthService struct {
	userRepo   repositories.UserRepositoryImpl
	sellerRepo repositories.SellerProfileRepositoryImpl
	codec      *auth.TokenCodec
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, sellerRepo repositories.SellerProfileRepositoryImpl, codec *auth.TokenCodec) *AuthService {
	return &AuthService{userRepo: userRepo, sellerRepo: sellerRepo, codec: codec}
}

// Register creates a Buyer account.
func (s *AuthService) Register(ctx context.Context, req other.RegisterRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errs.Conflict("email %s is already registered", req.Email)
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.userRepo.Create(ctx, user, string(auth.RoleBuyer)); err != nil {
		if again, _ := s.userRepo.FindByEmail(ctx, req.Email); again != nil {
			return nil, errs.Conflict("email %s is already registered", req.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req other.LoginRequest) (*other.LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := helpers.Validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmailWithRoles(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		return nil, errBadCredentials
	}

	roles := auth.NewRoleSet(user.RoleNames()...)
	token, expiresAt, err := s.codec.Issue(user, roles)
	if err != nil {
		return nil, err
	}

	return &other.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(roles.Primary()),
		Roles:     roles.Names(),
	}, nil
}

func (s *AuthService) Profile(ctx context.Context, id auth.Identity) (*other.ProfileResponse, error) {
	if !id.IsAuthenticated() {
		return nil, errs.ErrNotAuthenticated
	}

	profile, err := s.sellerRepo.FindByUserID(ctx, id.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seller profile: %w", err)
	}

	return &other.ProfileResponse{
		FullName:      id.User.FullName,
		Email:         id.User.Email,
		Roles:         id.Roles.Names(),
		SellerProfile: other.NewSellerProfileSummary(profile),
	}, nil
}
