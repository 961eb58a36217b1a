package service

import (
	"context"
	"fmt"
	"sort"

	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/report/model"
	"lodge/internal/domains/report/model/dto"
	"lodge/internal/domains/report/repository"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Revenue(ctx context.Context, req dto.RevenueRequest) (dto.RevenueResponse, error)
}

// Reports are recomputed on every call. Caching them would serve stale
// aggregates, so the entity read-model cache is deliberately not used here.
type serviceImpl struct {
	repo repository.Report
	otel otel.Otel
}

func New(repo repository.Report, otel otel.Otel) Report {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.ActiveBookings, err = s.repo.CountBookingsByStatus(ctx, bookingModel.StatusCheckedIn)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings")

		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	res.TodaysCheckIns, err = s.repo.CountCheckInsOn(ctx, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's check-ins")

		return res, fmt.Errorf("failed to count today's check-ins: %w", err)
	}

	res.AvailableRooms, err = s.repo.CountRoomsByStatus(ctx, roomModel.StatusAvailable)
	if err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	res.TotalCustomers, err = s.repo.CountCustomers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	return res, nil
}

// Revenue sums nights times the current room rate over every non-cancelled
// booking checking in within [from, to], grouped by room type. Cancelled
// bookings still show up in the per-status counts.
func (s *serviceImpl) Revenue(ctx context.Context, req dto.RevenueRequest) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, err := timezone.Parse(constant.CalendarDateFormat, req.From)
	if err != nil {
		return res, failure.BadRequestFromString("invalid from date") // nolint:wrapcheck
	}

	to, err := timezone.Parse(constant.CalendarDateFormat, req.To)
	if err != nil {
		return res, failure.BadRequestFromString("invalid to date") // nolint:wrapcheck
	}

	if to.Before(from) {
		return res, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	rows, err := s.repo.GetRevenueRows(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue rows")

		return res, fmt.Errorf("failed to get revenue rows: %w", err)
	}

	res.From = req.From
	res.To = req.To
	res.BookingCounts = make(map[string]int)

	byRoomType := make(map[string]*dto.RoomTypeRevenue)

	for _, row := range rows {
		res.BookingCounts[row.Status]++

		if row.Status == bookingModel.StatusCancelled {
			continue
		}

		amount := rowAmount(row)
		res.TotalRevenue += amount

		group, ok := byRoomType[row.RoomType]
		if !ok {
			group = &dto.RoomTypeRevenue{RoomType: row.RoomType}
			byRoomType[row.RoomType] = group
		}

		group.Bookings++
		group.Revenue += amount
	}

	res.ByRoomType = make([]dto.RoomTypeRevenue, 0, len(byRoomType))
	for _, group := range byRoomType {
		res.ByRoomType = append(res.ByRoomType, *group)
	}

	sort.Slice(res.ByRoomType, func(i, j int) bool {
		return res.ByRoomType[i].RoomType < res.ByRoomType[j].RoomType
	})

	return res, nil
}

func rowAmount(row model.RevenueRow) int64 {
	booking := bookingModel.Booking{
		CheckIn:       row.CheckIn,
		CheckOut:      row.CheckOut,
		PricePerNight: row.PricePerNight,
	}

	return booking.TotalAmount()
}
