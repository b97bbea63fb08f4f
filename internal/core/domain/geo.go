package domain

// GeoPlaceType is the level of a geographic place.
type GeoPlaceType string

const (
	PlaceCountry GeoPlaceType = "COUNTRY"
	PlaceState   GeoPlaceType = "STATE"
	PlaceCity    GeoPlaceType = "CITY"
)

// GeoPlace is a node in the geographic hierarchy. Workspaces anchor to CITY
// places; ADMIN moderation scope is a set of CITY place ids.
type GeoPlace struct {
	PlaceID  string       `json:"placeID" db:"place_id"`
	Name     string       `json:"name" db:"name"`
	Slug     string       `json:"slug" db:"slug"`
	Type     GeoPlaceType `json:"type" db:"type"`
	ParentID *string      `json:"parentID,omitempty" db:"parent_id"`
}
