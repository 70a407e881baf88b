package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/jwt"
	"haven/infras/otel"
	adminModel "haven/internal/domains/admin/model"
	adminRepo "haven/internal/domains/admin/repository"
	"haven/internal/domains/auth/model/dto"
	permissionService "haven/internal/domains/permission/service"
	"haven/shared"
	"haven/shared/constant"
	"haven/shared/failure"
	"haven/shared/password"
	"haven/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context) (dto.MeResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	adminRepo  adminRepo.Admin
	permission permissionService.Permission
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(adminRepo adminRepo.Admin, permission permissionService.Permission, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		adminRepo:  adminRepo,
		permission: permission,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	admin, err := s.adminRepo.Get(ctx, adminRepo.FilterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin profile")

		return res, fmt.Errorf("failed to get admin profile: %w", err)
	}

	if admin.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if !admin.IsActive {
		return res, failure.BadRequestFromString("account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, admin.ID, admin.Email, admin.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := dto.UpdateLastLoginRequest{LastLogin: now}
	updatedFields := shared.TransformFields(lastLogin, admin.ID)

	if err = s.adminRepo.Update(ctx, updatedFields, shared.FilterByID(admin.ID, adminModel.FieldID, adminModel.TableName)); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")

		err = nil
	} else {
		admin.LastLogin = &now
	}

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(admin)

	return res, nil
}

// RefreshToken issues a new pair for a still active profile, carrying its current role.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	admin, err := s.adminRepo.Get(ctx, shared.FilterByID(claims.UserID, adminModel.FieldID, adminModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin profile")

		return res, fmt.Errorf("failed to get admin profile: %w", err)
	}

	if admin.ID == constant.Empty || !admin.IsActive {
		return res, failure.Unauthorized("invalid refresh token")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, admin.ID, admin.Email, admin.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	admin, err := s.adminRepo.Get(ctx, shared.FilterByID(userID, adminModel.FieldID, adminModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin profile")

		return res, fmt.Errorf("failed to get admin profile: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound("admin not found")
	}

	matrix, err := s.permission.Matrix(ctx, admin.Role)
	if err != nil {
		return res, err
	}

	res.Admin.FromModel(admin)
	res.Permissions = matrix

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, adminModel.FieldID, adminModel.TableName)

	admin, err := s.adminRepo.Get(ctx, filter, adminModel.FieldID, adminModel.FieldPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin profile")

		return fmt.Errorf("failed to get admin profile: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found")
	}

	if err = password.Verify(req.CurrentPassword, admin.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.adminRepo.Update(ctx, shared.TransformFields(updatePassword, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
