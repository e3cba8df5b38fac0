package models

// ListingKind distinguishes the two marketplace variants.
type ListingKind string

const (
	KindSitter ListingKind = "sitter" // a sitter offering a service
	KindPetAd  ListingKind = "petAd"  // an owner requesting a sitter
)

// ServiceType is the service category of a listing. Pet-sitting requests
// always carry ServiceSitting.
type ServiceType string

const (
	ServiceWalking  ServiceType = "walking"
	ServiceGrooming ServiceType = "grooming"
	ServiceBoarding ServiceType = "boarding"
	ServiceSitting  ServiceType = "sitting"
)

// PetInfo is the pet block attached to pet-sitting requests.
type PetInfo struct {
	Name         string `bson:"name" json:"petName"`
	Type         string `bson:"type" json:"petType"` // "dog" or "cat"
	Breed        string `bson:"breed" json:"breed"`
	StartDate    string `bson:"start_date" json:"startDate"` // "YYYY-MM-DD"
	EndDate      string `bson:"end_date" json:"endDate"`
	SpecialNeeds string `bson:"special_needs,omitempty" json:"specialNeeds,omitempty"`
}

// Listing is the canonical marketplace entry, covering both sitter offers
// and pet-sitting requests. Everything except IsFavorite is immutable once
// created.
type Listing struct {
	ID           int64       `bson:"id" json:"id"` // UnixMilli at creation time
	Kind         ListingKind `bson:"kind" json:"kind"`
	Title        string      `bson:"title" json:"title"`
	Name         string      `bson:"name" json:"name"` // provider / owner name
	Contact      string      `bson:"contact,omitempty" json:"contact,omitempty"`
	Description  string      `bson:"description" json:"description"`
	Location     string      `bson:"location" json:"location"`
	Price        float64     `bson:"price" json:"price"` // per day
	Currency     string      `bson:"currency" json:"currency"`
	ServiceType  ServiceType `bson:"service_type" json:"serviceType"`
	Image        string      `bson:"image" json:"image"`
	Rating       float64     `bson:"rating" json:"rating"`
	ReviewsCount int         `bson:"reviews_count" json:"reviewsCount"`
	IsFavorite   bool        `bson:"-" json:"isFavorite"`
	Pet          *PetInfo    `bson:"pet,omitempty" json:"pet,omitempty"`
}
