package fio

// SystemConnection is one declared link from a system to another.
// Connections are usually declared from both endpoints.
type SystemConnection struct {
	SystemConnectionID string `json:"SystemConnectionId"`
	ConnectingID       string `json:"ConnectingId"`
}

// StarSystem mirrors one record of the FIO /systemstars response.
type StarSystem struct {
	SystemID    string             `json:"SystemId"`
	Name        string             `json:"Name"`
	NaturalID   string             `json:"NaturalId"`
	Type        string             `json:"Type"`
	PositionX   float64            `json:"PositionX"`
	PositionY   float64            `json:"PositionY"`
	PositionZ   float64            `json:"PositionZ"`
	SectorID    string             `json:"SectorId"`
	SubSectorID string             `json:"SubSectorId"`
	Connections []SystemConnection `json:"Connections"`
}

// ExchangeStation mirrors one record of the FIO /exchange/station response.
type ExchangeStation struct {
	StationID       string `json:"StationId"`
	NaturalID       string `json:"NaturalId"`
	SystemID        string `json:"SystemId"`
	SystemNaturalID string `json:"SystemNaturalId"`
	SystemName      string `json:"SystemName"`
	ComexCode       string `json:"ComexCode"`
	ComexName       string `json:"ComexName"`
}

// Ship mirrors one record of /ship/ships/{user}. Location is empty while the
// ship is in flight.
type Ship struct {
	ShipID       string `json:"ShipId"`
	Registration string `json:"Registration"`
	Name         string `json:"Name"`
	Location     string `json:"Location"`
}

// FlightLine is one address line of a flight segment. When Type is "system",
// LineNaturalID carries the system's natural ID.
type FlightLine struct {
	Type          string `json:"Type"`
	LineID        string `json:"LineId"`
	LineNaturalID string `json:"LineNaturalId"`
}

// FlightSegment is one leg of a flight.
type FlightSegment struct {
	OriginLines      []FlightLine `json:"OriginLines"`
	DestinationLines []FlightLine `json:"DestinationLines"`
}

// Flight mirrors one record of /ship/flights/{user}.
type Flight struct {
	FlightID    string          `json:"FlightId"`
	ShipID      string          `json:"ShipId"`
	Origin      string          `json:"Origin"`
	Destination string          `json:"Destination"`
	Segments    []FlightSegment `json:"Segments"`
}

// Site mirrors one record of /sites/{user}. PlanetIdentifier is empty for
// sites the API reports without a location.
type Site struct {
	SiteID           string `json:"SiteId"`
	PlanetIdentifier string `json:"PlanetIdentifier"`
	PlanetName       string `json:"PlanetName"`
}
