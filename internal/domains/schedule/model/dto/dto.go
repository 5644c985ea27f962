package dto

import (
	"github.com/google/uuid"

	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
	"github.com/chenawi66/chefhu-2026/shared/constant"
	"github.com/chenawi66/chefhu-2026/shared/timezone"
)

const (
	ActionOpen  = "open"
	ActionClose = "close"
	ActionReset = "reset"
)

type ReserveRequest struct {
	Name         string `json:"name"         validate:"required,max=100"`
	Phone        string `json:"phone"        validate:"required,max=20"`
	Date         string `json:"date"         validate:"required"`
	Time         string `json:"time"         validate:"required"`
	Guests       int    `json:"guests"       validate:"required"`
	Relationship string `json:"relationship" validate:"required,max=200"`
}

func (r *ReserveRequest) ToModel() model.Reservation {
	return model.Reservation{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Phone:        r.Phone,
		Date:         r.Date,
		Time:         r.Time,
		Guests:       r.Guests,
		Relationship: r.Relationship,
		Confirmed:    false,
		CreatedAt:    timezone.Now().Format(constant.TimestampFormat),
	}
}

type ReserveResponse struct {
	Success     bool              `json:"success"`
	Reservation model.Reservation `json:"reservation"`
}

type ManageRequest struct {
	Password string `json:"password" validate:"required"`
	Action   string `json:"action"   validate:"required,oneof=open close reset"`
	Date     string `json:"date"     validate:"required_unless=Action reset"`
	Time     string `json:"time"     validate:"required_unless=Action reset"`
}

type SlotsResponse struct {
	Success bool             `json:"success"`
	Slots   []model.TimeSlot `json:"slots"`
}

type ManageResponse struct {
	Success bool             `json:"success"`
	Slots   []model.TimeSlot `json:"slots"`
}
