package fio

import (
	"encoding/json"
	"time"
)

const (
	systemsPath  = "/systemstars"
	exchangePath = "/exchange/station"
)

// FetchSystems downloads the full system list. The raw payload is persisted to
// the snapshot store on success.
func (c *Client) FetchSystems() ([]StarSystem, error) {
	body, err := c.fetchSnapshotted(systemsPath)
	if err != nil {
		return nil, err
	}
	var systems []StarSystem
	if err := json.Unmarshal(body, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

// FetchExchangeStations downloads the public commodity exchange list.
func (c *Client) FetchExchangeStations() ([]ExchangeStation, error) {
	body, err := c.fetchSnapshotted(exchangePath)
	if err != nil {
		return nil, err
	}
	var stations []ExchangeStation
	if err := json.Unmarshal(body, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// CachedSystems returns the last persisted system list, if any.
func (c *Client) CachedSystems() ([]StarSystem, time.Time, bool) {
	return cachedList[StarSystem](c, systemsPath)
}

// CachedExchangeStations returns the last persisted exchange list, if any.
func (c *Client) CachedExchangeStations() ([]ExchangeStation, time.Time, bool) {
	return cachedList[ExchangeStation](c, exchangePath)
}

func cachedList[T any](c *Client, path string) ([]T, time.Time, bool) {
	if c.snapshots == nil {
		return nil, time.Time{}, false
	}
	payload, fetchedAt, ok := c.snapshots.LoadSnapshot(path)
	if !ok {
		return nil, time.Time{}, false
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, time.Time{}, false
	}
	return out, fetchedAt, true
}
