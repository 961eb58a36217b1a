package dto

import (
	"lodge/internal/domains/payment/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Amount    int64  `json:"amount"     validate:"required,gt=0"`
	Method    string `json:"method"     validate:"required,oneof=Cash 'Credit Card' 'Debit Card' UPI 'Net Banking'"`
}

func (p *CreatePaymentRequest) ToModel(user string) model.Payment {
	return model.Payment{
		ID:          uuid.NewString(),
		BookingID:   p.BookingID,
		PaymentDate: timezone.Now(),
		Amount:      p.Amount,
		Method:      p.Method,
		Status:      model.StatusPaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	PaymentDate string `json:"payment_date"`
	Amount      int64  `json:"amount"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PaymentDate = model.PaymentDate.Format(constant.CalendarDateFormat)
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
