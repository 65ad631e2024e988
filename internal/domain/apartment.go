package domain

// ScarcityLevel classifies how scarce an apartment's viewing availability is
type ScarcityLevel string

const (
	ScarcityAbundant ScarcityLevel = "abundant"
	ScarcityMedium   ScarcityLevel = "medium"
	ScarcityCritical ScarcityLevel = "critical"
)

// ApartmentMetadata per-apartment availability profile.
// Only partially consumed today: the canibalizacion rule that would read
// AvailableDays and ScarcityLevel is defined but never triggers until
// exclusivity semantics are agreed on.
type ApartmentMetadata struct {
	ApartmentID   int64
	AvailableDays []string // weekday names, e.g. "Tuesday"
	HoursPerWeek  int
	ScarcityLevel ScarcityLevel
}

// Apartment запись каталога квартир (apartments.json)
type Apartment struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Street        string                 `json:"street"`
	City          string                 `json:"city"`
	Price         float64                `json:"price,omitempty"`
	Rooms         int                    `json:"rooms,omitempty"`
	SquareMeters  float64                `json:"square_meters,omitempty"`
	Description   string                 `json:"description,omitempty"`
	Qualification map[string]interface{} `json:"qualification,omitempty"`
}

// HasQualification returns true if the apartment carries qualification details
func (a *Apartment) HasQualification() bool {
	return len(a.Qualification) > 0
}
