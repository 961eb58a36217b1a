package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	reportMocks "lodge/internal/domains/report/mocks"
	"lodge/internal/domains/report/model"
	"lodge/internal/domains/report/model/dto"
	"lodge/internal/domains/report/service"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
)

func newReportService(t *testing.T) (service.Report, *reportMocks.MockReport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := reportMocks.NewMockReport(ctrl)

	return service.New(repo, mocks.NewOtel()), repo
}

func day(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)

	return parsed
}

func TestReportService_Dashboard(t *testing.T) {
	t.Run("aggregates all four counters", func(t *testing.T) {
		svc, repo := newReportService(t)

		repo.EXPECT().CountBookingsByStatus(gomock.Any(), bookingModel.StatusCheckedIn).Return(3, nil)
		repo.EXPECT().CountCheckInsOn(gomock.Any(), gomock.Any()).Return(2, nil)
		repo.EXPECT().CountRoomsByStatus(gomock.Any(), roomModel.StatusAvailable).Return(7, nil)
		repo.EXPECT().CountCustomers(gomock.Any()).Return(42, nil)

		res, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, dto.DashboardResponse{
			ActiveBookings: 3,
			TodaysCheckIns: 2,
			AvailableRooms: 7,
			TotalCustomers: 42,
		}, res)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newReportService(t)

		repo.EXPECT().
			CountBookingsByStatus(gomock.Any(), bookingModel.StatusCheckedIn).
			Return(0, errors.New("database error"))

		_, err := svc.Dashboard(context.Background())

		assert.Error(t, err)
	})
}

func TestReportService_Revenue(t *testing.T) {
	t.Run("sums nights times rate per room type", func(t *testing.T) {
		svc, repo := newReportService(t)

		rows := []model.RevenueRow{
			{
				RoomType:      "Deluxe",
				PricePerNight: 12000,
				CheckIn:       day("2025-10-26"),
				CheckOut:      day("2025-10-28"),
				Status:        bookingModel.StatusCheckedOut,
			},
			{
				RoomType:      "Suite",
				PricePerNight: 20000,
				CheckIn:       day("2025-10-27"),
				CheckOut:      day("2025-10-30"),
				Status:        bookingModel.StatusConfirmed,
			},
			{
				RoomType:      "Deluxe",
				PricePerNight: 12000,
				CheckIn:       day("2025-10-29"),
				CheckOut:      day("2025-10-31"),
				Status:        bookingModel.StatusCancelled,
			},
		}

		repo.EXPECT().
			GetRevenueRows(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) ([]model.RevenueRow, error) {
				assert.True(t, from.Equal(day("2025-10-01")))
				assert.True(t, to.Equal(day("2025-11-01")))
				return rows, nil
			})

		res, err := svc.Revenue(context.Background(), dto.RevenueRequest{From: "2025-10-01", To: "2025-10-31"})

		assert.NoError(t, err)
		assert.Equal(t, int64(84000), res.TotalRevenue)
		assert.Equal(t, []dto.RoomTypeRevenue{
			{RoomType: "Deluxe", Bookings: 1, Revenue: 24000},
			{RoomType: "Suite", Bookings: 1, Revenue: 60000},
		}, res.ByRoomType)
		assert.Equal(t, map[string]int{
			bookingModel.StatusCheckedOut: 1,
			bookingModel.StatusConfirmed:  1,
			bookingModel.StatusCancelled:  1,
		}, res.BookingCounts)
	})

	t.Run("empty window", func(t *testing.T) {
		svc, repo := newReportService(t)

		repo.EXPECT().
			GetRevenueRows(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.Revenue(context.Background(), dto.RevenueRequest{From: "2025-01-01", To: "2025-01-31"})

		assert.NoError(t, err)
		assert.Zero(t, res.TotalRevenue)
		assert.Empty(t, res.ByRoomType)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Revenue(context.Background(), dto.RevenueRequest{From: "2025-10-31", To: "2025-10-01"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unparseable dates", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Revenue(context.Background(), dto.RevenueRequest{From: "not-a-date", To: "2025-10-31"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
