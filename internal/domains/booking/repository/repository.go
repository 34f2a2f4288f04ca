package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/booking/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gRepo "inn/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Create(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Overlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Overlapping returns the ids of live bookings on the room intersecting
// the half-open range [start, end). excludeID leaves one booking out of the
// check, so a booking never conflicts with itself.
func (repo *repositoryImpl) Overlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]string, error) {
	bookings, err := repo.GetAll(ctx, gDto.QueryParams{}, overlapFilter(roomID, start, end, excludeID), model.FieldID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	return ids, nil
}

// overlapFilter matches live bookings on a room whose half-open range
// intersects [start, end). Cancelled rows never block a slot, so the
// status clause only admits pending and confirmed.
func overlapFilter(roomID string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    []string{constant.BookingStatusPending, constant.BookingStatusConfirmed},
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_end",
			Field:    model.FieldStartDate,
			Operator: gDto.FilterOperatorLess,
			Value:    end,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_start",
			Field:    model.FieldEndDate,
			Operator: gDto.FilterOperatorGreater,
			Value:    start,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters}
}

// Create writes a booking inside its own transaction.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) error {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil
}
