package dto

import (
	"time"

	"lodge/internal/domains/customer/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FullName    string `json:"full_name"     validate:"required,max=100"`
	Email       string `json:"email"         validate:"required,email,max=100"`
	Phone       string `json:"phone"         validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Gender      string `json:"gender"        validate:"omitempty,oneof=Male Female Other"`
	Address     string `json:"address"       validate:"omitempty,max=255"`
}

func (c *CreateCustomerRequest) ToModel(user string) (model.Customer, error) {
	var dateOfBirth *time.Time

	if c.DateOfBirth != "" {
		parsed, err := timezone.Parse(constant.CalendarDateFormat, c.DateOfBirth)
		if err != nil {
			return model.Customer{}, err
		}

		dateOfBirth = &parsed
	}

	return model.Customer{
		ID:          uuid.NewString(),
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: dateOfBirth,
		Gender:      c.Gender,
		Address:     c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateCustomerRequest struct {
	FullName    string `db:"full_name" json:"full_name"     validate:"omitempty,max=100"`
	Email       string `db:"email"     json:"email"         validate:"omitempty,email,max=100"`
	Phone       string `db:"phone"     json:"phone"         validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth"                validate:"omitempty"`
	Gender      string `db:"gender"    json:"gender"        validate:"omitempty,oneof=Male Female Other"`
	Address     string `db:"address"   json:"address"       validate:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Gender = model.Gender
	r.Address = model.Address

	if model.DateOfBirth != nil {
		r.DateOfBirth = model.DateOfBirth.Format(constant.CalendarDateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
