package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldDateOfBirth = "date_of_birth"
	FieldGender      = "gender"
	FieldAddress     = "address"
)

type Customer struct {
	ID          string     `db:"id"`
	FullName    string     `db:"full_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Gender      string     `db:"gender"`
	Address     string     `db:"address"`
	model.Metadata
}
