package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusBooked    VehicleStatus = "booked"
)

type Vehicle struct {
	ID             int32         `json:"id"`
	Name           string        `json:"name"`
	Model          string        `json:"model"`
	Registration   string        `json:"registration"`
	DailyRateCents int32         `json:"dailyRate"`
	Status         VehicleStatus `json:"availabilityStatus"`
	CreatedOn      time.Time     `json:"createdOn"`
	UpdatedOn      time.Time     `json:"updatedOn"`
}
