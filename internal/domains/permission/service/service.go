package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/otel"
	"haven/internal/domains/permission/model"
	"haven/internal/domains/permission/model/dto"
	"haven/internal/domains/permission/repository"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	gDto "haven/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cachePermission     = "permission"
	cacheRolePermission = "permission:role"
	cacheGetAll         = "permission:get_all"
)

type Permission interface {
	Matrix(ctx context.Context, role string) (dto.Matrix, error)
	Check(ctx context.Context, role, resource, action string) (bool, error)
	GetAll(ctx context.Context) ([]dto.RolePermissionResponse, error)
	Update(ctx context.Context, req dto.UpdateRolePermissionRequest) error
}

type serviceImpl struct {
	repo  repository.Permission
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Permission, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Permission {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Matrix returns every resource the role has a row for. Super admins get full access without a lookup.
func (s *serviceImpl) Matrix(ctx context.Context, role string) (res dto.Matrix, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Matrix")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if role == constant.RoleSuperAdmin {
		return dto.FullAccess(), nil
	}

	cacheKey := shared.BuildCacheKey(cacheRolePermission, role)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    role,
				Table:    model.TableName,
			},
		},
	}

	rows, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to get role permissions")

		return nil, fmt.Errorf("failed to get role permissions: %w", err)
	}

	res = dto.Matrix{}
	res.FromModels(rows)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Check(ctx context.Context, role, resource, action string) (allowed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if role == constant.RoleSuperAdmin {
		return true, nil
	}

	matrix, err := s.Matrix(ctx, role)
	if err != nil {
		return false, err
	}

	return matrix.Allows(resource, action), nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RolePermissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAll, &res)
	if err == nil {
		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldRole,
		SortDir: gDto.SortDirAsc,
	}

	rows, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get permissions")

		return nil, fmt.Errorf("failed to get permissions: %w", err)
	}

	res = make([]dto.RolePermissionResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	go s.save(context.WithoutCancel(ctx), cacheGetAll, res)

	return res, nil
}

// Update creates or replaces the grant of one role on one resource.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRolePermissionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	conflict := []string{model.FieldRole, model.FieldResource}

	if err = s.repo.Upsert(ctx, req.ToModel(user), conflict, dto.UpdateColumns); err != nil {
		log.Error().Err(err).Msg("failed to save role permission")

		return fmt.Errorf("failed to save role permission: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePermission)

	return nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save permission cache")
	}
}
