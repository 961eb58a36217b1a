package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	userMocks "lodge/internal/domains/user/mocks"
	"lodge/internal/domains/user/model"
	"lodge/internal/domains/user/model/dto"
	"lodge/internal/domains/user/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func allowUserCacheInvalidation(cache *cacheMocks.MockRedisCache) {
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func adminCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation hashes the password",
			req: dto.CreateUserRequest{
				Email:    "desk@lodge.test",
				Password: "password",
				FullName: "Front Desk",
				Role:     constant.RoleFrontDesk,
			},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user model.User) error {
						assert.NotEqual(t, "password", user.Password)
						assert.Equal(t, constant.RoleFrontDesk, user.Role)
						assert.True(t, user.Active)

						return nil
					})
				allowUserCacheInvalidation(cache)
			},
		},
		{
			name: "duplicate email",
			req: dto.CreateUserRequest{
				Email:    "desk@lodge.test",
				Password: "password",
				FullName: "Front Desk",
			},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			req: dto.CreateUserRequest{
				Email:    "desk@lodge.test",
				Password: "password",
				FullName: "Front Desk",
			},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Create(adminCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Update(t *testing.T) {
	active := false

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "deactivate an account",
			req:  dto.UpdateUserRequest{Active: &active},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						got, ok := fields[model.FieldActive].(*bool)
						assert.True(t, ok)
						assert.False(t, *got)

						return nil
					})
				allowUserCacheInvalidation(cache)
			},
		},
		{
			name: "promote to manager",
			req:  dto.UpdateUserRequest{Role: constant.RoleManager},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				allowUserCacheInvalidation(cache)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateUserRequest{},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{Role: constant.RoleManager},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Update(adminCtx(), tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			id:   "user-1",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				allowUserCacheInvalidation(cache)
			},
		},
		{
			name:      "deleting your own account",
			id:        "admin-id",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  409,
		},
		{
			name: "user not found",
			id:   "user-9",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Delete(adminCtx(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(adminCtx(), "user-9")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID:       "user-1",
			Email:    "desk@lodge.test",
			FullName: "Front Desk",
			Role:     constant.RoleFrontDesk,
			Active:   true,
		}, nil)

		res, err := svc.Get(adminCtx(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "desk@lodge.test", res.Email)
		assert.Equal(t, constant.RoleFrontDesk, res.Role)
	})
}
