package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	paymentMocks "lodge/internal/domains/payment/mocks"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type paymentServiceMocks struct {
	repo    *paymentMocks.MockPayment
	booking *bookingMocks.MockBooking
	cache   *cacheMocks.MockRedisCache
}

func newPaymentService(t *testing.T) (service.Payment, paymentServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := paymentServiceMocks{
		repo:    paymentMocks.NewMockPayment(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.booking, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func allowAsyncCalls(m paymentServiceMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func userCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleFrontDesk)
}

func twoNightBooking(status string) bookingModel.Booking {
	checkIn, _ := time.Parse("2006-01-02", "2025-10-26")
	checkOut, _ := time.Parse("2006-01-02", "2025-10-28")

	return bookingModel.Booking{
		ID:            "booking-1",
		RoomID:        "room-101",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        status,
		PricePerNight: 12000,
	}
}

func TestPaymentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func(m paymentServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "payment matching the booking total",
			req:  dto.CreatePaymentRequest{BookingID: "booking-1", Amount: 24000, Method: "Credit Card"},
			setupMock: func(m paymentServiceMocks) {
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(twoNightBooking(bookingModel.StatusConfirmed), nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payment model.Payment) error {
						assert.Equal(t, model.StatusPaid, payment.Status)
						assert.Equal(t, int64(24000), payment.Amount)
						return nil
					})
				allowAsyncCalls(m)
			},
		},
		{
			name: "amount below the recomputed total",
			req:  dto.CreatePaymentRequest{BookingID: "booking-1", Amount: 12000, Method: "Cash"},
			setupMock: func(m paymentServiceMocks) {
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(twoNightBooking(bookingModel.StatusConfirmed), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "second payment for the same booking",
			req:  dto.CreatePaymentRequest{BookingID: "booking-1", Amount: 24000, Method: "UPI"},
			setupMock: func(m paymentServiceMocks) {
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(twoNightBooking(bookingModel.StatusConfirmed), nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "cancelled booking",
			req:  dto.CreatePaymentRequest{BookingID: "booking-1", Amount: 24000, Method: "Cash"},
			setupMock: func(m paymentServiceMocks) {
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(twoNightBooking(bookingModel.StatusCancelled), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown booking",
			req:  dto.CreatePaymentRequest{BookingID: "booking-404", Amount: 24000, Method: "Cash"},
			setupMock: func(m paymentServiceMocks) {
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPaymentService(t)
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
			assert.Equal(t, model.StatusPaid, res.Status)
			assert.Equal(t, tt.req.Amount, res.Amount)
		})
	}
}

func TestPaymentService_Refund(t *testing.T) {
	paid := model.Payment{ID: "payment-1", BookingID: "booking-1", Amount: 24000, Status: model.StatusPaid}

	tests := []struct {
		name      string
		setupMock func(m paymentServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "refund for a cancelled booking",
			setupMock: func(m paymentServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid, nil)
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(twoNightBooking(bookingModel.StatusCancelled), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusRefunded, fields[model.FieldStatus])
						return nil
					})
				allowAsyncCalls(m)
			},
		},
		{
			name: "booking not cancelled",
			setupMock: func(m paymentServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid, nil)
				m.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(twoNightBooking(bookingModel.StatusCheckedOut), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "already refunded",
			setupMock: func(m paymentServiceMocks) {
				refunded := paid
				refunded.Status = model.StatusRefunded
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(refunded, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "payment not found",
			setupMock: func(m paymentServiceMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPaymentService(t)
			tt.setupMock(m)

			res, err := svc.Refund(userCtx(), "payment-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusRefunded, res.Status)
		})
	}
}
