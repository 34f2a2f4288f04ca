package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"inn/config"
	"inn/infras/otel"
	"inn/infras/s3"
	bookingModel "inn/internal/domains/booking/model"
	bookingRepo "inn/internal/domains/booking/repository"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, availability string) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Room
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Room, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	numberFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomNumber,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, numberFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exists {
		return failure.Conflict("room number already in use") // nolint:wrapcheck
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, availability string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The derived status changes at midnight, so cache entries are keyed by day.
	today := timezone.Today()
	cacheKey := shared.BuildCacheKey(
		shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter),
		today.Format(constant.DateOnlyFormat),
		availability,
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	if availability != "" {
		res, err = s.getAllByAvailability(ctx, req, filter, availability)
		if err != nil {
			return res, err
		}
	} else {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count rooms")

			return res, fmt.Errorf("failed to count rooms: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return res, fmt.Errorf("failed to get rooms: %w", err)
		}

		if err = s.applyEffectiveAvailability(ctx, models); err != nil {
			return res, err
		}

		res.FromModels(models, total, req.Limit)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// getAllByAvailability filters on the derived status, which only exists after
// the booking overlay is applied. The whole result set is fetched and paged
// in memory; the catalog is small enough for that.
func (s *serviceImpl) getAllByAvailability(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, availability string) (res dto.GetRoomsResponse, err error) {
	all := gDto.QueryParams{SortBy: req.SortBy, SortDir: req.SortDir}

	models, err := s.repo.GetAll(ctx, all, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	if err = s.applyEffectiveAvailability(ctx, models); err != nil {
		return res, err
	}

	matched := make([]model.Room, 0, len(models))
	for _, room := range models {
		if room.Availability == availability {
			matched = append(matched, room)
		}
	}

	total := len(matched)

	if req.Page > 0 && req.Limit > 0 {
		offset := (req.Page - 1) * req.Limit
		if offset > total {
			offset = total
		}

		end := offset + req.Limit
		if end > total {
			end = total
		}

		matched = matched[offset:end]
	}

	res.FromModels(matched, total, req.Limit)

	return res, nil
}

// applyEffectiveAvailability overlays the booking ledger onto the stored
// status: a room with a confirmed booking covering today reads as occupied.
// Maintenance is a stronger state and is left alone.
func (s *serviceImpl) applyEffectiveAvailability(ctx context.Context, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	ids := make([]string, 0, len(rooms))
	for _, room := range rooms {
		if room.Availability == constant.AvailabilityAvailable {
			ids = append(ids, room.ID)
		}
	}

	if len(ids) == 0 {
		return nil
	}

	today := timezone.Today()

	occupiedFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldRoomID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.BookingStatusConfirmed,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "today_start",
				Field:    bookingModel.FieldStartDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    today,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "today_end",
				Field:    bookingModel.FieldEndDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    today,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, occupiedFilter, bookingModel.FieldRoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve room occupancy")

		return fmt.Errorf("failed to resolve room occupancy: %w", err)
	}

	occupied := make(map[string]bool, len(bookings))
	for _, booking := range bookings {
		occupied[booking.RoomID] = true
	}

	for i := range rooms {
		if occupied[rooms[i].ID] && rooms[i].Availability == constant.AvailabilityAvailable {
			rooms[i].Availability = constant.AvailabilityOccupied
		}
	}

	return nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id, timezone.Today().Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	rooms := []model.Room{room}
	if err = s.applyEffectiveAvailability(ctx, rooms); err != nil {
		return res, err
	}

	res.FromModel(rooms[0])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentRoom, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if currentRoom.ID == constant.Empty {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found")
	}

	return s.updateInternal(ctx, req, currentRoom, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateRoomRequest, currentRoom model.Room, user string, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		// Cleanup: delete newly uploaded image if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update room: %w", err)
	}

	// Delete old image if update succeeded and new image was uploaded
	if imageURL != constant.Empty && currentRoom.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentRoom.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetRoom, currentRoom.ID))
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

// Delete retires a room from the catalog. A room with a pending or
// confirmed booking cannot be removed; cancel the bookings first.
// The row is kept so the ledger history stays intact.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	liveFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.BookingStatusPending, constant.BookingStatusConfirmed},
				Table:    bookingModel.TableName,
			},
		},
	}

	hasLive, err := s.bookings.Exist(ctx, liveFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room bookings")

		return fmt.Errorf("failed to check room bookings: %w", err)
	}

	if hasLive {
		return failure.Conflict("room has pending or confirmed bookings") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetRoom, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}
