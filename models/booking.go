package models

import "time"

// BookingStatus is the lifecycle state of a finalized booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Terminal reports whether no further status change is allowed.
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Valid reports whether s is a known lifecycle status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking is an immutable snapshot of a finalized draft. Only Status is
// ever mutated, through the ledger's status-change operation.
type Booking struct {
	ID        int64         `bson:"id" json:"id"`
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`

	ServiceID    int64       `bson:"service_id" json:"serviceId"`
	ServiceKind  ListingKind `bson:"service_kind" json:"serviceType"`
	ServiceName  string      `bson:"service_name" json:"serviceName"`
	ServicePrice float64     `bson:"service_price" json:"servicePrice"`

	StartDate       string `bson:"start_date" json:"startDate"`
	EndDate         string `bson:"end_date" json:"endDate"`
	TotalDays       int    `bson:"total_days" json:"totalDays"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`

	PetName         string `bson:"pet_name,omitempty" json:"petName,omitempty"`
	PetType         string `bson:"pet_type,omitempty" json:"petType,omitempty"`
	PetBreed        string `bson:"pet_breed,omitempty" json:"petBreed,omitempty"`
	PetAge          *int   `bson:"pet_age,omitempty" json:"petAge,omitempty"`
	PetSpecialNeeds string `bson:"pet_special_needs,omitempty" json:"petSpecialNeeds,omitempty"`

	OwnerName    string `bson:"owner_name" json:"ownerName"`
	OwnerEmail   string `bson:"owner_email" json:"ownerEmail"`
	OwnerPhone   string `bson:"owner_phone" json:"ownerPhone"`
	OwnerAddress string `bson:"owner_address" json:"ownerAddress"`

	TotalPrice float64 `bson:"total_price" json:"totalPrice"`
}

// BookingFromDraft copies a completed draft into a booking record.
func BookingFromDraft(d *BookingDraft, id int64, now time.Time) *Booking {
	return &Booking{
		ID:              id,
		Status:          StatusPending,
		CreatedAt:       now,
		ServiceID:       d.ServiceID,
		ServiceKind:     d.ServiceKind,
		ServiceName:     d.ServiceName,
		ServicePrice:    d.ServicePrice,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		TotalDays:       d.TotalDays,
		SpecialRequests: d.SpecialRequests,
		PetName:         d.PetName,
		PetType:         d.PetType,
		PetBreed:        d.PetBreed,
		PetAge:          d.PetAge,
		PetSpecialNeeds: d.PetSpecialNeeds,
		OwnerName:       d.OwnerName,
		OwnerEmail:      d.OwnerEmail,
		OwnerPhone:      d.OwnerPhone,
		OwnerAddress:    d.OwnerAddress,
		TotalPrice:      d.TotalPrice,
	}
}
