package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	userMocks "inn/internal/domains/user/mocks"
	"inn/internal/domains/user/model"
	"inn/internal/domains/user/model/dto"
	"inn/internal/domains/user/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
)

func testUser(id, email string) model.User {
	return model.User{
		ID:     id,
		Email:  email,
		Level:  constant.RoleGuest,
		Active: true,
	}
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateUserRequest{
				Email:    "guest@example.com",
				Password: "secret-password",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, constant.RoleGuest, user.Level)
						assert.NotEqual(t, "secret-password", user.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "admin level is kept",
			req: dto.CreateUserRequest{
				Email:    "admin@example.com",
				Password: "secret-password",
				Level:    constant.RoleAdmin,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, constant.RoleAdmin, user.Level)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.CreateUserRequest{
				Email:    "guest@example.com",
				Password: "secret-password",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testUser("user-1", "guest@example.com"), nil)

		res, err := svc.Get(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, "guest@example.com", res.Email)
	})

	t.Run("user not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing-user")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("successful get all", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.User{testUser("user-1", "a@example.com")}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Users, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	fullName := "New Name"

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateUserRequest{FullName: &fullName},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateUserRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{FullName: &fullName},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
			err := svc.Update(ctx, tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("successful deactivation", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
		err := svc.Deactivate(ctx, "user-1")

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Deactivate(context.Background(), "missing-user")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
