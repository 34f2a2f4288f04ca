package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// Room listings carry a derived occupancy status, so status changes
	// on the ledger invalidate them too.
	cacheRoomPrefix = "room"
)

type Booking interface {
	Request(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CanBook(ctx context.Context, roomID, startDate, endDate string) (dto.AvailabilityResponse, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	locks    roomLocks
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Request admits a new booking onto the ledger. The room's date range is
// checked and the row written while holding the room's lock, so two
// overlapping requests can never both get in: the loser sees the winner's
// row and is rejected with a conflict.
func (s *serviceImpl) Request(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	room, err := s.bookableRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	unlock := s.locks.Lock(req.RoomID)
	defer unlock()

	clashes, err := s.repo.Overlapping(ctx, req.RoomID, start, end, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return res, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	if len(clashes) > 0 {
		return res, failure.Conflict(fmt.Sprintf("room is already booked for the requested dates by booking %s", strings.Join(clashes, ", "))) // nolint:wrapcheck
	}

	booking := req.ToModel(user, start, end, room.Price)

	if err = s.repo.Create(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.invalidateLists(ctx)

	return res, nil
}

// CanBook probes availability without writing anything. The answer is only
// advisory: the definitive check happens again inside Request.
func (s *serviceImpl) CanBook(ctx context.Context, roomID, startDate, endDate string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CanBook")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := s.parseRange(startDate, endDate)
	if err != nil {
		return res, err
	}

	if _, err = s.bookableRoom(ctx, roomID); err != nil {
		return res, err
	}

	clashes, err := s.repo.Overlapping(ctx, roomID, start, end, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return res, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	res = dto.AvailabilityResponse{
		RoomID:    roomID,
		StartDate: start.Format(constant.DateOnlyFormat),
		EndDate:   end.Format(constant.DateOnlyFormat),
		Available: len(clashes) == 0,
	}

	return res, nil
}

// Confirm moves a pending booking to confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransition(booking.Status, constant.BookingStatusConfirmed) {
		return failure.InvalidTransition(fmt.Sprintf("cannot confirm a %s booking", booking.Status)) // nolint:wrapcheck
	}

	unlock := s.locks.Lock(booking.RoomID)
	defer unlock()

	// The pending row already blocks the dates, so a conflict here means
	// the ledger was corrupted outside this service. Refuse regardless.
	clashes, err := s.repo.Overlapping(ctx, booking.RoomID, booking.StartDate, booking.EndDate, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return fmt.Errorf("failed to check booking overlap: %w", err)
	}

	if len(clashes) > 0 {
		return failure.Conflict(fmt.Sprintf("room dates were taken by booking %s", strings.Join(clashes, ", "))) // nolint:wrapcheck
	}

	if err = s.setStatus(ctx, booking, constant.BookingStatusConfirmed); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// Cancel releases a booking's dates. Guests can only cancel their own
// bookings; admins can cancel any.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && booking.UserID != user {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, constant.BookingStatusCancelled) {
		return failure.InvalidTransition(fmt.Sprintf("cannot cancel a %s booking", booking.Status)) // nolint:wrapcheck
	}

	if err = s.setStatus(ctx, booking, constant.BookingStatusCancelled); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) parseRange(startDate, endDate string) (start, end time.Time, err error) {
	req := dto.CreateBookingRequest{StartDate: startDate, EndDate: endDate}

	start, end, err = req.Dates()
	if err != nil {
		return start, end, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !start.Before(end) {
		return start, end, failure.BadRequestFromString("start date must be before end date") // nolint:wrapcheck
	}

	return start, end, nil
}

// bookableRoom resolves a room that can still take bookings. Retired rooms
// read as absent.
func (s *serviceImpl) bookableRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Availability == constant.AvailabilityMaintenance {
		return room, failure.Conflict("room is under maintenance") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, booking model.Booking, status string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
