package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/config"
	"haven/infras/otel/mocks"
	permissionMocks "haven/internal/domains/permission/mocks"
	"haven/internal/domains/permission/model"
	"haven/internal/domains/permission/model/dto"
	"haven/internal/domains/permission/service"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
	gDto "haven/shared/dto"
)

func newService(t *testing.T) (service.Permission, *permissionMocks.MockPermission, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := permissionMocks.NewMockPermission(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestPermissionService_Check(t *testing.T) {
	editorRows := []model.RolePermission{
		{Role: constant.RoleEditor, Resource: model.ResourceGallery, CanView: true, CanCreate: true, CanEdit: true},
	}

	tests := []struct {
		name      string
		role      string
		resource  string
		action    string
		setupMock func(repo *permissionMocks.MockPermission, cache *cacheMocks.MockRedisCache)
		want      bool
		wantErr   bool
	}{
		{
			name:      "super admin bypasses lookup",
			role:      constant.RoleSuperAdmin,
			resource:  model.ResourceUsers,
			action:    model.ActionDelete,
			setupMock: func(_ *permissionMocks.MockPermission, _ *cacheMocks.MockRedisCache) {},
			want:      true,
		},
		{
			name:     "granted action",
			role:     constant.RoleEditor,
			resource: model.ResourceGallery,
			action:   model.ActionEdit,
			setupMock: func(repo *permissionMocks.MockPermission, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "permission:role:editor", gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(editorRows, nil)
			},
			want: true,
		},
		{
			name:     "denied action",
			role:     constant.RoleEditor,
			resource: model.ResourceGallery,
			action:   model.ActionDelete,
			setupMock: func(repo *permissionMocks.MockPermission, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(editorRows, nil)
			},
		},
		{
			name:     "missing row is denied",
			role:     constant.RoleEditor,
			resource: model.ResourceUsers,
			action:   model.ActionView,
			setupMock: func(repo *permissionMocks.MockPermission, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(editorRows, nil)
			},
		},
		{
			name:     "repository error",
			role:     constant.RoleViewer,
			resource: model.ResourceEvents,
			action:   model.ActionView,
			setupMock: func(repo *permissionMocks.MockPermission, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			allowed, err := svc.Check(context.Background(), tt.role, tt.resource, tt.action)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestPermissionService_Matrix(t *testing.T) {
	svc, _, _ := newService(t)

	matrix, err := svc.Matrix(context.Background(), constant.RoleSuperAdmin)

	assert.NoError(t, err)
	assert.Len(t, matrix, len(model.Resources))
	assert.True(t, matrix.Allows(model.ResourceFooter, model.ActionEdit))
}

func TestPermissionService_Update(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), []string{model.FieldRole, model.FieldResource}, dto.UpdateColumns).
		DoAndReturn(func(_ context.Context, row model.RolePermission, _, _ []string) error {
			assert.Equal(t, constant.RoleViewer, row.Role)
			assert.True(t, row.CanView)
			assert.False(t, row.CanDelete)

			return nil
		})

	err := svc.Update(context.Background(), dto.UpdateRolePermissionRequest{
		Role:     constant.RoleViewer,
		Resource: model.ResourceInquiries,
		CanView:  true,
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestPermissionService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldRole, SortDir: gDto.SortDirAsc}, gomock.Any()).
		Return([]model.RolePermission{{Role: constant.RoleAdmin, Resource: model.ResourceEvents, CanView: true}}, nil)

	res, err := svc.GetAll(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.True(t, res[0].CanView)
}
