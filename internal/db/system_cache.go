package db

import "time"

// SaveSnapshot stores the raw JSON payload of a public endpoint so the map can
// render before (or without) a fresh fetch.
func (d *DB) SaveSnapshot(endpoint string, payload []byte) error {
	_, err := d.sql.Exec(`
		INSERT OR REPLACE INTO system_cache (endpoint, payload, fetched_at)
		VALUES (?, ?, ?)`,
		endpoint, payload, time.Now().Unix())
	return err
}

// LoadSnapshot returns the last stored payload for an endpoint and when it was
// fetched. Returns ok=false if no snapshot exists.
func (d *DB) LoadSnapshot(endpoint string) (payload []byte, fetchedAt time.Time, ok bool) {
	var unix int64
	err := d.sql.QueryRow(`
		SELECT payload, fetched_at FROM system_cache WHERE endpoint = ?`,
		endpoint).Scan(&payload, &unix)
	if err != nil {
		return nil, time.Time{}, false
	}
	return payload, time.Unix(unix, 0), true
}
