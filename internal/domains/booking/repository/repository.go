package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error)
	CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error)
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

// WithTx runs fn inside a write transaction, committing on success and
// rolling back on error or panic.
func (repo *repositoryImpl) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".WithTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error) {
	return repo.countOverlapping(ctx, repo.db.Read, roomID, checkIn, checkOut, excludeID)
}

func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error) {
	return repo.countOverlapping(ctx, tx, roomID, checkIn, checkOut, excludeID)
}

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// countOverlapping counts active bookings for the room whose half-open
// date range intersects [checkIn, checkOut). Back-to-back stays where one
// booking checks out the day another checks in do not count.
func (repo *repositoryImpl) countOverlapping(ctx context.Context, q queryer, roomID string, checkIn, checkOut time.Time, excludeID string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".countOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1 AND %s IN ($2, $3) AND %s < $4 AND %s > $5",
		model.FieldID, model.TableName, model.FieldRoomID, model.FieldStatus, model.FieldCheckIn, model.FieldCheckOut,
	)
	args := []interface{}{roomID, model.StatusConfirmed, model.StatusCheckedIn, checkOut, checkIn}

	if excludeID != "" {
		query += fmt.Sprintf(" AND %s != $6", model.FieldID)
		args = append(args, excludeID)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = q.GetContext(ctx, &count, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}
