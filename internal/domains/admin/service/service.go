package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/otel"
	"haven/internal/domains/admin/model"
	"haven/internal/domains/admin/model/dto"
	"haven/internal/domains/admin/repository"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	"haven/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAdmin    = "admin:get"
	cacheGetAllAdmin = "admin:get_all"
	cacheCountAdmin  = "admin:count"
	cacheAccessAdmin = "admin:access"
)

type Admin interface {
	Create(ctx context.Context, req dto.CreateAdminRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdminsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AdminResponse, error)
	Update(ctx context.Context, req dto.UpdateAdminRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateAdminStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	Access(ctx context.Context, id string) (dto.AccessResponse, error)
	Bootstrap(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.Admin
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Admin, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Admin {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdminRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, repository.FilterByEmail(strings.ToLower(strings.TrimSpace(req.Email))))
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin email")

		return err
	}

	if exist {
		return failure.Conflict("an admin with this email already exists")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, hashedPassword)); err != nil {
		if shared.IsUniqueViolation(err) {
			return failure.Conflict("an admin with this email already exists")
		}

		log.Error().Err(err).Msg("failed to create admin")

		return fmt.Errorf("failed to create admin: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdminsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAdmin, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for admins")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return res, err
	}

	admins, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admins")

		return res, err
	}

	res.FromModels(admins, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAdmin, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return total, err
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, total)

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAdmin, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound("admin not found")
	}

	res.FromModel(admin)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAdminRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	admin, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldRole)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found")
	}

	if id == user && req.Role != nil && *req.Role != admin.Role {
		return failure.BadRequestFromString("you cannot change your own role")
	}

	if (req.Role != nil && *req.Role == constant.RoleSuperAdmin) || admin.Role == constant.RoleSuperAdmin {
		if err = requireSuperAdmin(ctx); err != nil {
			return err
		}
	}

	if req.NewPassword != constant.Empty {
		hashedPassword, err := password.Hash(req.NewPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return fmt.Errorf("failed to hash password: %w", err)
		}

		req.PasswordHash = &hashedPassword
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update admin")

		return fmt.Errorf("failed to update admin: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// UpdateStatus activates or deactivates a profile. Admins cannot deactivate themselves.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateAdminStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if id == user && req.IsActive != nil && !*req.IsActive {
		return failure.BadRequestFromString("you cannot deactivate your own account")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	admin, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldRole)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found")
	}

	if admin.Role == constant.RoleSuperAdmin {
		if err = requireSuperAdmin(ctx); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update admin status")

		return fmt.Errorf("failed to update admin status: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// Delete removes a profile unless it is protected or belongs to the caller.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if id == user {
		return failure.BadRequestFromString("you cannot delete your own account")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	admin, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldRole, model.FieldIsDeletable)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found")
	}

	if !admin.IsDeletable {
		return failure.Forbidden("this admin cannot be deleted")
	}

	if admin.Role == constant.RoleSuperAdmin {
		if err = requireSuperAdmin(ctx); err != nil {
			return err
		}
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete admin")

		return fmt.Errorf("failed to delete admin: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// Access reports the current role and status of a profile. The auth middleware
// calls it on every request so role changes and deactivation apply to live tokens.
func (s *serviceImpl) Access(ctx context.Context, id string) (res dto.AccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Access")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheAccessAdmin, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldRole, model.FieldIsActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin access")

		return res, fmt.Errorf("failed to get admin access: %w", err)
	}

	res.FromModel(admin)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

// Bootstrap seeds the configured owner account as a protected super admin when it does not exist yet.
func (s *serviceImpl) Bootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bootstrap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner := s.cfg.App.Bootstrap
	if owner.Email == constant.Empty || owner.Password == constant.Empty {
		log.Info().Msg("no bootstrap admin configured")

		return nil
	}

	req := dto.CreateAdminRequest{
		Email:    owner.Email,
		Password: owner.Password,
		FullName: owner.FullName,
		Role:     constant.RoleSuperAdmin,
	}

	exist, err := s.repo.Exist(ctx, repository.FilterByEmail(strings.ToLower(strings.TrimSpace(req.Email))))
	if err != nil {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}

	if exist {
		return nil
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := req.ToModel(constant.ContextSystem, hashedPassword)
	admin.IsDeletable = false

	if err = s.repo.Insert(ctx, admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("bootstrap super admin created")

	return nil
}

// requireSuperAdmin guards changes to super admin profiles.
func requireSuperAdmin(ctx context.Context) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleSuperAdmin {
		return failure.Forbidden("only a super admin can manage super admin accounts")
	}

	return nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save admin cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		for _, key := range []string{shared.BuildCacheKey(cacheGetAdmin, id), shared.BuildCacheKey(cacheAccessAdmin, id)} {
			if err := s.cache.Delete(ctx, key); err != nil {
				log.Error().Err(err).Str("cacheKey", key).Msg("failed to delete admin cache")
			}
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllAdmin)
	shared.InvalidateCaches(ctx, s.cache, cacheCountAdmin)
}
