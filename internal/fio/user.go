package fio

import (
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// LoginResult is the FIO /auth/login response.
type LoginResult struct {
	AuthToken string `json:"AuthToken"`
	Expiry    string `json:"Expiry"`
}

// Login exchanges username/password for an auth token.
func (c *Client) Login(username, password string) (string, error) {
	payload := map[string]string{
		"UserName": username,
		"Password": password,
	}
	var res LoginResult
	if err := c.PostJSON("/auth/login", payload, &res); err != nil {
		return "", err
	}
	if res.AuthToken == "" {
		return "", fmt.Errorf("login succeeded but no token returned")
	}
	return res.AuthToken, nil
}

// FetchShips returns the user's ships.
func (c *Client) FetchShips(username, authToken string) ([]Ship, error) {
	var ships []Ship
	path := "/ship/ships/" + url.PathEscape(username)
	if err := c.GetJSONAuth(path, authToken, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

// FetchFlights returns the user's active flights.
func (c *Client) FetchFlights(username, authToken string) ([]Flight, error) {
	var flights []Flight
	path := "/ship/flights/" + url.PathEscape(username)
	if err := c.GetJSONAuth(path, authToken, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// FetchSites returns the user's bases.
func (c *Client) FetchSites(username, authToken string) ([]Site, error) {
	var sites []Site
	path := "/sites/" + url.PathEscape(username)
	if err := c.GetJSONAuth(path, authToken, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// UserData bundles the three user-owned data sets.
type UserData struct {
	Ships   []Ship
	Flights []Flight
	Sites   []Site
}

// FetchUserData fetches ships, flights and sites concurrently. A failure of
// any one endpoint leaves its slice empty rather than failing the whole fetch;
// the feed is inconsistent often enough that partial user data is normal.
func (c *Client) FetchUserData(username, authToken string) *UserData {
	data := &UserData{}
	var g errgroup.Group
	g.Go(func() error {
		if ships, err := c.FetchShips(username, authToken); err == nil {
			data.Ships = ships
		}
		return nil
	})
	g.Go(func() error {
		if flights, err := c.FetchFlights(username, authToken); err == nil {
			data.Flights = flights
		}
		return nil
	})
	g.Go(func() error {
		if sites, err := c.FetchSites(username, authToken); err == nil {
			data.Sites = sites
		}
		return nil
	})
	g.Wait()
	return data
}
