package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	bookingModel "lodge/internal/domains/booking/model"
	customerModel "lodge/internal/domains/customer/model"
	"lodge/internal/domains/report/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/constant"
	"lodge/shared/logger"
)

type Report interface {
	CountBookingsByStatus(ctx context.Context, status string) (int, error)
	CountCheckInsOn(ctx context.Context, day time.Time) (int, error)
	CountRoomsByStatus(ctx context.Context, status string) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	GetRevenueRows(ctx context.Context, from, to time.Time) ([]model.RevenueRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) CountBookingsByStatus(ctx context.Context, status string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountBookingsByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1",
		bookingModel.FieldID, bookingModel.TableName, bookingModel.FieldStatus,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &count, query, status); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	return count, nil
}

// CountCheckInsOn counts confirmed bookings whose check-in date falls on
// the given day.
func (repo *repositoryImpl) CountCheckInsOn(ctx context.Context, day time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountCheckInsOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1 AND %s >= $2 AND %s < $3",
		bookingModel.FieldID, bookingModel.TableName, bookingModel.FieldStatus,
		bookingModel.FieldCheckIn, bookingModel.FieldCheckIn,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &count, query, bookingModel.StatusConfirmed, dayStart, dayEnd); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) CountRoomsByStatus(ctx context.Context, status string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountRoomsByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1",
		roomModel.FieldID, roomModel.TableName, roomModel.FieldStatus,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &count, query, status); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) CountCustomers(ctx context.Context) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s",
		customerModel.FieldID, customerModel.TableName,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &count, query); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}

// GetRevenueRows reads every booking checking in within [from, to) joined
// with its room, for single-pass aggregation in the service.
func (repo *repositoryImpl) GetRevenueRows(ctx context.Context, from, to time.Time) (rows []model.RevenueRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetRevenueRows")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT rooms.room_type, rooms.price_per_night, bookings.check_in, bookings.check_out, bookings.status "+
			"FROM %s JOIN %s ON rooms.%s = bookings.%s WHERE bookings.%s >= $1 AND bookings.%s < $2 "+
			"ORDER BY bookings.%s",
		bookingModel.TableName, roomModel.TableName, roomModel.FieldID, bookingModel.FieldRoomID,
		bookingModel.FieldCheckIn, bookingModel.FieldCheckIn, bookingModel.FieldCheckIn,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &rows, query, from, to); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get revenue rows: %w", err)
	}

	return rows, nil
}
