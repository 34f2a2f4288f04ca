package room

import (
	"net/http"
	"strconv"

	"inn/infras/otel"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new catalog room with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param floor formData integer true "Floor number"
// @Param room_number formData string true "Room number"
// @Param type formData string true "Room type (normal or premium)"
// @Param price formData integer true "Nightly rate"
// @Param breakfast formData boolean false "Breakfast included"
// @Param availability formData string false "Base availability (available, occupied, maintenance)"
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomNumber:   request.FormValue(model.FieldRoomNumber),
		Type:         request.FormValue(model.FieldType),
		Availability: request.FormValue(model.FieldAvailability),
	}

	if floorStr := request.FormValue(model.FieldFloor); floorStr != "" {
		if f, err := shared.ConvertStringToInt(floorStr); err == nil {
			req.Floor = f
		}
	}

	if priceStr := request.FormValue(model.FieldPrice); priceStr != "" {
		if p, err := strconv.ParseInt(priceStr, 10, 64); err == nil {
			req.Price = p
		}
	}

	if breakfastStr := request.FormValue(model.FieldBreakfast); breakfastStr != "" {
		req.Breakfast = shared.ConvertStringToBool(breakfastStr)
	}

	if activeStr := request.FormValue(model.FieldActive); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms matching the query constraints.
// Constraints combine with AND; an empty query returns the whole catalog.
// @Summary Get all rooms
// @Description Retrieve rooms with optional equality filters and pagination. The availability filter matches the derived status: rooms with a confirmed booking covering today read as occupied.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param floor query integer false "Filter by floor"
// @Param room_number query string false "Filter by room number"
// @Param type query string false "Filter by room type"
// @Param breakfast query boolean false "Filter by breakfast"
// @Param availability query string false "Filter by derived availability"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if roomNumber := r.URL.Query().Get(model.FieldRoomNumber); roomNumber != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.TableName,
		})
	}

	if roomType := r.URL.Query().Get(model.FieldType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if floorStr := r.URL.Query().Get(model.FieldFloor); floorStr != "" {
		floor, err := shared.ConvertStringToInt(floorStr)
		if err != nil {
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloor,
			Operator: gDto.FilterOperatorEq,
			Value:    floor,
			Table:    model.TableName,
		})
	}

	if breakfast := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldBreakfast)); breakfast != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBreakfast,
			Operator: gDto.FilterOperatorEq,
			Value:    *breakfast,
			Table:    model.TableName,
		})
	}

	// Retired rooms stay out of the catalog unless asked for explicitly.
	active := true
	if explicit := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); explicit != nil {
		active = *explicit
	}

	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldActive,
		Operator: gDto.FilterOperatorEq,
		Value:    active,
		Table:    model.TableName,
	})

	availability := r.URL.Query().Get(model.FieldAvailability)

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup, availability)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param floor formData integer false "Floor number"
// @Param room_number formData string false "Room number"
// @Param type formData string false "Room type (normal or premium)"
// @Param price formData integer false "Nightly rate"
// @Param breakfast formData boolean false "Breakfast included"
// @Param availability formData string false "Base availability"
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		RoomNumber:   r.FormValue(model.FieldRoomNumber),
		Type:         r.FormValue(model.FieldType),
		Availability: r.FormValue(model.FieldAvailability),
	}

	if floorStr := r.FormValue(model.FieldFloor); floorStr != "" {
		if f, err := shared.ConvertStringToInt(floorStr); err == nil {
			req.Floor = &f
		}
	}

	if priceStr := r.FormValue(model.FieldPrice); priceStr != "" {
		if p, err := strconv.ParseInt(priceStr, 10, 64); err == nil {
			req.Price = &p
		}
	}

	if breakfastStr := r.FormValue(model.FieldBreakfast); breakfastStr != "" {
		req.Breakfast = shared.ConvertStringToBool(breakfastStr)
	}

	if activeStr := r.FormValue(model.FieldActive); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom retires a room by its ID.
// @Summary Delete a room by ID
// @Description Retire a room from the catalog. Fails with a conflict when the room still has pending or confirmed bookings.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
