package booking

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RequestBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/mybookings", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Patch("/{id}/cancel", handler.CancelBooking)
	})
}

// RequestBooking places a new booking on the ledger.
// @Summary Request a booking
// @Description Request a room for a date range. The booking starts out pending and is rejected with a conflict when the range overlaps an existing pending or confirmed booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) RequestBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Request(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking requested successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// CheckAvailability probes whether a room is free for a date range.
// @Summary Check room availability
// @Description Report whether the room has no pending or confirmed booking overlapping the given range. Advisory only; booking admission re-checks.
// @Tags Booking
// @Accept json
// @Produce json
// @Param room_id query string true "Room ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	roomID := r.URL.Query().Get(model.FieldRoomID)
	startDate := r.URL.Query().Get(model.FieldStartDate)
	endDate := r.URL.Query().Get(model.FieldEndDate)

	if roomID == "" || startDate == "" || endDate == "" {
		err := failure.BadRequestFromString("room_id, start_date and end_date are required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	availability, err := handler.service.CanBook(ctx, roomID, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param user_id query string false "Filter by user ID"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := bookingFilters(r)

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings retrieves the bookings of the authenticated user.
// @Summary Get own bookings
// @Description Retrieve the bookings belonging to the authenticated user.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filterGroup := bookingFilters(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    user,
		Table:    model.TableName,
	})

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Own bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier. Guests can only read their own bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && booking.UserID != user {
		err := failure.ResourceRestrictedError
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// ConfirmBooking confirms a pending booking.
// @Summary Confirm a booking
// @Description Move a pending booking to confirmed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking confirmed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Confirm(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking confirmed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking confirmed successfully")
}

// CancelBooking cancels a booking.
// @Summary Cancel a booking
// @Description Cancel a pending or confirmed booking and release its dates. Guests can only cancel their own bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

func bookingFilters(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if userID := r.URL.Query().Get(model.FieldUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if status := dto.NormalizeStatus(r.URL.Query().Get(model.FieldStatus)); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
