package app

import "prunmap/internal/fio"

// Message is a fetch result delivered to the game loop. Fetches run as plain
// goroutines; the loop drains all pending messages once per tick, so derived
// state is rebuilt fully inside a tick and never observed half-applied.
type Message interface{ message() }

// SystemsLoaded carries the /systemstars result (or a failure string).
type SystemsLoaded struct {
	Systems []fio.StarSystem
	Err     string
}

// ExchangeLoaded carries the /exchange/station result.
type ExchangeLoaded struct {
	Stations []fio.ExchangeStation
	Err      string
}

// UserDataLoaded carries the authenticated user-data result.
type UserDataLoaded struct {
	Data *fio.UserData
	Err  string
}

func (SystemsLoaded) message()  {}
func (ExchangeLoaded) message() {}
func (UserDataLoaded) message() {}
