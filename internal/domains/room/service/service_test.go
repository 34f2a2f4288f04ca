package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	s3Mocks "inn/infras/s3/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	bookingModel "inn/internal/domains/booking/model"
	roomMocks "inn/internal/domains/room/mocks"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func testRoom(id, number, availability string) model.Room {
	return model.Room{
		ID:           id,
		Floor:        2,
		RoomNumber:   number,
		Type:         constant.RoomTypeNormal,
		Price:        500_000,
		Availability: availability,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin-1",
			ModifiedBy: "admin-1",
		},
	}
}

func occupyingBooking(roomID string) bookingModel.Booking {
	today := timezone.Today()

	return bookingModel.Booking{
		ID:        "booking-1",
		RoomID:    roomID,
		UserID:    "user-1",
		StartDate: today.AddDate(0, 0, -1),
		EndDate:   today.AddDate(0, 0, 2),
		Status:    constant.BookingStatusConfirmed,
	}
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				Floor:      2,
				RoomNumber: "201",
				Type:       constant.RoomTypeNormal,
				Price:      500_000,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room number already in use",
			req: dto.CreateRoomRequest{
				Floor:      2,
				RoomNumber: "201",
				Type:       constant.RoomTypeNormal,
				Price:      500_000,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error on insert",
			req: dto.CreateRoomRequest{
				Floor:      2,
				RoomNumber: "202",
				Type:       constant.RoomTypePremium,
				Price:      900_000,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
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

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name             string
		setupMock        func()
		wantErr          bool
		wantCode         int
		wantAvailability string
	}{
		{
			name: "available room with no booking today",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", "201", constant.AvailabilityAvailable), nil)

				mockBookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantAvailability: constant.AvailabilityAvailable,
		},
		{
			name: "confirmed booking covering today reads as occupied",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", "201", constant.AvailabilityAvailable), nil)

				mockBookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{occupyingBooking("room-1")}, nil)
			},
			wantAvailability: constant.AvailabilityOccupied,
		},
		{
			name: "maintenance is not overlaid",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", "201", constant.AvailabilityMaintenance), nil)
			},
			wantAvailability: constant.AvailabilityMaintenance,
		},
		{
			name: "room not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "cache hit skips the repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res := value.(*dto.RoomResponse)
						res.FromModel(testRoom("room-1", "201", constant.AvailabilityAvailable))

						return nil
					})
			},
			wantAvailability: constant.AvailabilityAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "room-1", res.ID)
			assert.Equal(t, tt.wantAvailability, res.Availability)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
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

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel, mockS3)

	t.Run("listing overlays occupancy", func(t *testing.T) {
		rooms := []model.Room{
			testRoom("room-1", "201", constant.AvailabilityAvailable),
			testRoom("room-2", "202", constant.AvailabilityAvailable),
		}

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{occupyingBooking("room-2")}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}, "")

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, constant.AvailabilityAvailable, res.Rooms[0].Availability)
		assert.Equal(t, constant.AvailabilityOccupied, res.Rooms[1].Availability)
	})

	t.Run("filter by derived availability", func(t *testing.T) {
		rooms := []model.Room{
			testRoom("room-1", "201", constant.AvailabilityAvailable),
			testRoom("room-2", "202", constant.AvailabilityAvailable),
			testRoom("room-3", "203", constant.AvailabilityMaintenance),
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{occupyingBooking("room-2")}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}, constant.AvailabilityAvailable)

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, "room-1", res.Rooms[0].ID)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}, "")

		assert.Error(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel, mockS3)

	price := int64(750_000)

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateRoomRequest{Price: &price},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", "201", constant.AvailabilityAvailable), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{Price: &price},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error on update",
			req:  dto.UpdateRoomRequest{Price: &price},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom("room-1", "201", constant.AvailabilityAvailable), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Update(ctx, tt.req, "room-1")

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

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful soft delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookings.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[model.FieldActive])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room with live bookings cannot be removed",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookings.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Delete(ctx, "room-1")

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

// Only rooms still marked available are checked against the ledger, so a
// room already occupied or under maintenance costs no ledger query.
func TestRoomService_GetAllSkipsLedgerWhenNothingAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
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

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel, mockS3)

	rooms := []model.Room{
		testRoom("room-1", "201", constant.AvailabilityMaintenance),
		testRoom("room-2", "202", constant.AvailabilityOccupied),
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rooms, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}, "")

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, constant.AvailabilityMaintenance, res.Rooms[0].Availability)
	assert.Equal(t, constant.AvailabilityOccupied, res.Rooms[1].Availability)
}
