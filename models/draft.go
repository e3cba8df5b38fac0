package models

// BookingDraft is the singleton in-progress booking per profile. Fields
// accumulate across the four form steps; TotalDays and TotalPrice are
// derived and recomputed after every merge.
type BookingDraft struct {
	// Step 1: service selection
	ServiceID    int64       `json:"serviceId,omitempty"`
	ServiceKind  ListingKind `json:"serviceType,omitempty"`
	ServiceName  string      `json:"serviceName,omitempty"`
	ServicePrice float64     `json:"servicePrice,omitempty"`

	// Step 2: dates and details
	StartDate       string `json:"startDate,omitempty"` // "YYYY-MM-DD"
	EndDate         string `json:"endDate,omitempty"`
	TotalDays       int    `json:"totalDays,omitempty"` // derived, inclusive of both endpoints
	SpecialRequests string `json:"specialRequests,omitempty"`

	// Step 3: pet details (skipped when booking a pet ad)
	PetName         string `json:"petName,omitempty"`
	PetType         string `json:"petType,omitempty"`
	PetBreed        string `json:"petBreed,omitempty"`
	PetAge          *int   `json:"petAge,omitempty"`
	PetSpecialNeeds string `json:"petSpecialNeeds,omitempty"`

	// Step 4: contact information
	OwnerName    string `json:"ownerName,omitempty"`
	OwnerEmail   string `json:"ownerEmail,omitempty"`
	OwnerPhone   string `json:"ownerPhone,omitempty"`
	OwnerAddress string `json:"ownerAddress,omitempty"`

	TotalPrice  float64 `json:"totalPrice,omitempty"` // derived
	CurrentStep int     `json:"currentStep"`          // 1..4
}

// DraftUpdate is a partial update merged into a draft: only non-nil fields
// overwrite the stored value.
type DraftUpdate struct {
	StartDate       *string `json:"startDate,omitempty"`
	EndDate         *string `json:"endDate,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	PetName         *string `json:"petName,omitempty"`
	PetType         *string `json:"petType,omitempty"`
	PetBreed        *string `json:"petBreed,omitempty"`
	PetAge          *int    `json:"petAge,omitempty"`
	PetSpecialNeeds *string `json:"petSpecialNeeds,omitempty"`

	OwnerName    *string `json:"ownerName,omitempty"`
	OwnerEmail   *string `json:"ownerEmail,omitempty"`
	OwnerPhone   *string `json:"ownerPhone,omitempty"`
	OwnerAddress *string `json:"ownerAddress,omitempty"`
}

// EmptyDraft returns a fresh draft positioned at step 1.
func EmptyDraft() *BookingDraft {
	return &BookingDraft{CurrentStep: 1}
}

// Apply merges the provided fields into the draft.
func (d *BookingDraft) Apply(upd DraftUpdate) {
	if upd.StartDate != nil {
		d.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		d.EndDate = *upd.EndDate
	}
	if upd.SpecialRequests != nil {
		d.SpecialRequests = *upd.SpecialRequests
	}
	if upd.PetName != nil {
		d.PetName = *upd.PetName
	}
	if upd.PetType != nil {
		d.PetType = *upd.PetType
	}
	if upd.PetBreed != nil {
		d.PetBreed = *upd.PetBreed
	}
	if upd.PetAge != nil {
		age := *upd.PetAge
		d.PetAge = &age
	}
	if upd.PetSpecialNeeds != nil {
		d.PetSpecialNeeds = *upd.PetSpecialNeeds
	}
	if upd.OwnerName != nil {
		d.OwnerName = *upd.OwnerName
	}
	if upd.OwnerEmail != nil {
		d.OwnerEmail = *upd.OwnerEmail
	}
	if upd.OwnerPhone != nil {
		d.OwnerPhone = *upd.OwnerPhone
	}
	if upd.OwnerAddress != nil {
		d.OwnerAddress = *upd.OwnerAddress
	}
}
