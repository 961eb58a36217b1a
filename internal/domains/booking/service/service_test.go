package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	customerMocks "lodge/internal/domains/customer/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type bookingServiceMocks struct {
	repo     *bookingMocks.MockBooking
	room     *roomMocks.MockRoom
	customer *customerMocks.MockCustomer
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newBookingService(t *testing.T) (service.Booking, bookingServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := bookingServiceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		customer: customerMocks.NewMockCustomer(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.room, m.customer, cfg, m.cache, mocks.NewOtel(), m.kafka)

	return svc, m
}

func runTx(fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func allowAsyncCalls(m bookingServiceMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func userCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleManager)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.AvailabilityRequest
		setupMock     func(m bookingServiceMocks)
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "room free",
			req:  dto.AvailabilityRequest{RoomID: "room-101", CheckIn: "2025-10-26", CheckOut: "2025-10-28"},
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), "room-101", gomock.Any(), gomock.Any(), "").
					Return(0, nil)
			},
			wantAvailable: true,
		},
		{
			name: "room taken for overlapping dates",
			req:  dto.AvailabilityRequest{RoomID: "room-101", CheckIn: "2025-10-27", CheckOut: "2025-10-30"},
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), "room-101", gomock.Any(), gomock.Any(), "").
					Return(1, nil)
			},
			wantAvailable: false,
		},
		{
			name:      "inverted range",
			req:       dto.AvailabilityRequest{RoomID: "room-101", CheckIn: "2025-10-28", CheckOut: "2025-10-26"},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name: "unknown room",
			req:  dto.AvailabilityRequest{RoomID: "room-404", CheckIn: "2025-10-26", CheckOut: "2025-10-28"},
			setupMock: func(m bookingServiceMocks) {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.CheckAvailability(userCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	room101 := roomModel.Room{
		ID:            "room-101",
		RoomNumber:    "101",
		RoomType:      "Deluxe",
		Status:        roomModel.StatusAvailable,
		PricePerNight: 12000,
	}

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(m bookingServiceMocks)
		wantErr    bool
		wantCode   int
		wantAmount int64
	}{
		{
			name: "successful booking of two nights",
			req: dto.CreateBookingRequest{
				RoomID:     "room-101",
				CustomerID: "cust-1",
				CheckIn:    "2025-10-26",
				CheckOut:   "2025-10-28",
			},
			setupMock: func(m bookingServiceMocks) {
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
				m.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-101").Return(room101, nil)
				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), "room-101", gomock.Any(), gomock.Any(), "").
					Return(0, nil)
				m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				allowAsyncCalls(m)
			},
			wantAmount: 24000,
		},
		{
			name: "overlapping booking rejected",
			req: dto.CreateBookingRequest{
				RoomID:     "room-101",
				CustomerID: "cust-1",
				CheckIn:    "2025-10-27",
				CheckOut:   "2025-10-30",
			},
			setupMock: func(m bookingServiceMocks) {
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
				m.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-101").Return(room101, nil)
				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), "room-101", gomock.Any(), gomock.Any(), "").
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "room under maintenance",
			req: dto.CreateBookingRequest{
				RoomID:     "room-101",
				CustomerID: "cust-1",
				CheckIn:    "2025-10-26",
				CheckOut:   "2025-10-28",
			},
			setupMock: func(m bookingServiceMocks) {
				maintenance := room101
				maintenance.Status = roomModel.StatusMaintenance

				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
				m.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), "room-101").Return(maintenance, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown customer",
			req: dto.CreateBookingRequest{
				RoomID:     "room-101",
				CustomerID: "cust-404",
				CheckIn:    "2025-10-26",
				CheckOut:   "2025-10-28",
			},
			setupMock: func(m bookingServiceMocks) {
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "check-in equal to check-out",
			req: dto.CreateBookingRequest{
				RoomID:     "room-101",
				CustomerID: "cust-1",
				CheckIn:    "2025-10-26",
				CheckOut:   "2025-10-26",
			},
			setupMock: func(m bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.Create(userCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusConfirmed, res.Status)
			assert.Equal(t, 2, res.Nights)
			assert.Equal(t, tt.wantAmount, res.TotalAmount)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2025-10-26")
	checkOut, _ := time.Parse("2006-01-02", "2025-10-28")

	booking := func(status string) model.Booking {
		return model.Booking{
			ID:       "booking-1",
			RoomID:   "room-101",
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Status:   status,
		}
	}

	tests := []struct {
		name      string
		target    string
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "check-in occupies the room",
			target: model.StatusCheckedIn,
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusConfirmed), nil)
				m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.room.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])
						return nil
					})
				allowAsyncCalls(m)
			},
		},
		{
			name:   "check-out sends occupied room to cleaning",
			target: model.StatusCheckedOut,
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusCheckedIn), nil)
				m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.room.EXPECT().
					LockTx(gomock.Any(), gomock.Any(), "room-101").
					Return(roomModel.Room{ID: "room-101", Status: roomModel.StatusOccupied}, nil)
				m.room.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusCleaning, fields[roomModel.FieldStatus])
						return nil
					})
				allowAsyncCalls(m)
			},
		},
		{
			name:   "cancelling a confirmed booking leaves the room alone",
			target: model.StatusCancelled,
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusConfirmed), nil)
				m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				allowAsyncCalls(m)
			},
		},
		{
			name:   "checked-out booking cannot be reconfirmed",
			target: model.StatusConfirmed,
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(model.StatusCheckedOut), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:   "booking not found",
			target: model.StatusCheckedIn,
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.UpdateStatus(userCtx(), dto.UpdateStatusRequest{Status: tt.target}, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.target, res.Status)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2025-10-26")
	checkOut, _ := time.Parse("2006-01-02", "2025-10-28")

	existing := model.Booking{
		ID:       "booking-1",
		RoomID:   "room-101",
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   model.StatusConfirmed,
	}

	t.Run("date change re-checks availability excluding itself", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		m.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fn func(tx *sqlx.Tx) error) error { return runTx(fn) })
		m.room.EXPECT().
			LockTx(gomock.Any(), gomock.Any(), "room-101").
			Return(roomModel.Room{ID: "room-101"}, nil)
		m.repo.EXPECT().
			CountOverlappingTx(gomock.Any(), gomock.Any(), "room-101", gomock.Any(), gomock.Any(), "booking-1").
			Return(0, nil)
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		allowAsyncCalls(m)

		err := svc.Update(userCtx(), dto.UpdateBookingRequest{CheckOut: "2025-10-30"}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("finalized booking cannot be edited", func(t *testing.T) {
		svc, m := newBookingService(t)

		finalized := existing
		finalized.Status = model.StatusCheckedOut
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(finalized, nil)

		err := svc.Update(userCtx(), dto.UpdateBookingRequest{CheckOut: "2025-10-30"}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _ := newBookingService(t)

		err := svc.Update(userCtx(), dto.UpdateBookingRequest{}, "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	terminal := model.Booking{ID: "booking-1", RoomID: "room-101", Status: model.StatusCheckedOut}
	active := model.Booking{ID: "booking-1", RoomID: "room-101", Status: model.StatusCheckedIn}

	t.Run("manager deletes finalized booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(terminal, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		allowAsyncCalls(m)

		assert.NoError(t, svc.Delete(userCtx(), "booking-1"))
	})

	t.Run("front-desk cannot delete", func(t *testing.T) {
		svc, _ := newBookingService(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleFrontDesk)

		err := svc.Delete(ctx, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("active booking cannot be deleted", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)

		err := svc.Delete(userCtx(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("database error"))

		assert.Error(t, svc.Delete(userCtx(), "booking-1"))
	})
}
