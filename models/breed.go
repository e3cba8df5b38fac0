package models

// BreedTraits holds the numeric trait scores the cat API reports.
type BreedTraits struct {
	AffectionLevel int `json:"affectionLevel,omitempty"`
	ChildFriendly  int `json:"childFriendly,omitempty"`
	DogFriendly    int `json:"dogFriendly,omitempty"`
	EnergyLevel    int `json:"energyLevel,omitempty"`
}

// BreedInfo is the normalized result of a breed lookup, keyed by pet type
// and breed name. A nil BreedInfo means "no info available".
type BreedInfo struct {
	Name        string       `json:"name"`
	Temperament string       `json:"temperament"`
	LifeSpan    string       `json:"lifeSpan"`
	Weight      string       `json:"weight"`
	Height      string       `json:"height,omitempty"`
	Description string       `json:"description,omitempty"`
	Origin      string       `json:"origin,omitempty"`
	Traits      *BreedTraits `json:"traits,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
}
