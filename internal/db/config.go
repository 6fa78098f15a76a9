package db

import (
	"fmt"
	"strconv"

	"prunmap/internal/config"
)

// LoadConfig reads config from SQLite. If empty, returns defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}

	if len(m) == 0 {
		return cfg
	}

	if v, ok := m["fio_base_url"]; ok && v != "" {
		cfg.FIOBaseURL = v
	}
	if v, ok := m["window_w"]; ok {
		cfg.WindowW, _ = strconv.Atoi(v)
	}
	if v, ok := m["window_h"]; ok {
		cfg.WindowH, _ = strconv.Atoi(v)
	}
	if v, ok := m["initial_zoom"]; ok {
		cfg.InitialZoom, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["show_connections"]; ok {
		cfg.ShowConnections, _ = strconv.ParseBool(v)
	}
	if v, ok := m["show_labels"]; ok {
		cfg.ShowLabels, _ = strconv.ParseBool(v)
	}
	if v, ok := m["show_exchanges"]; ok {
		cfg.ShowExchanges, _ = strconv.ParseBool(v)
	}
	if v, ok := m["show_bases"]; ok {
		cfg.ShowBases, _ = strconv.ParseBool(v)
	}
	if v, ok := m["show_ships"]; ok {
		cfg.ShowShips, _ = strconv.ParseBool(v)
	}

	return cfg
}

// SaveConfig writes config to SQLite (upsert all fields).
func (d *DB) SaveConfig(cfg *config.Config) error {
	pairs := map[string]string{
		"fio_base_url":     cfg.FIOBaseURL,
		"window_w":         strconv.Itoa(cfg.WindowW),
		"window_h":         strconv.Itoa(cfg.WindowH),
		"initial_zoom":     fmt.Sprintf("%g", cfg.InitialZoom),
		"show_connections": strconv.FormatBool(cfg.ShowConnections),
		"show_labels":      strconv.FormatBool(cfg.ShowLabels),
		"show_exchanges":   strconv.FormatBool(cfg.ShowExchanges),
		"show_bases":       strconv.FormatBool(cfg.ShowBases),
		"show_ships":       strconv.FormatBool(cfg.ShowShips),
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for k, v := range pairs {
		if _, err := stmt.Exec(k, v); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
