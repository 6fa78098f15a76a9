package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"prunmap/internal/app"
	"prunmap/internal/auth"
	"prunmap/internal/db"
	"prunmap/internal/fio"
	"prunmap/internal/logger"
)

var version = "dev"

func main() {
	username := flag.String("username", envOrDefault("FIO_USERNAME", ""), "FIO username to log in as")
	password := flag.String("password", envOrDefault("FIO_PASSWORD", ""), "FIO password; only needed once, the token is stored")
	logout := flag.Bool("logout", false, "forget the stored FIO session and exit")
	offline := flag.Bool("offline", false, "render from the last snapshot without fetching")
	flag.Parse()

	logger.Banner(version)

	// Open SQLite database
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	// Load config from SQLite
	cfg := database.LoadConfig()
	sessions := auth.NewSessionStore(database.SqlDB())

	if *logout {
		sessions.Delete()
		logger.Info("AUTH", "Stored session removed")
		return
	}

	client := fio.NewClient(cfg.FIOBaseURL, database)

	if *username != "" && *password != "" {
		token, err := client.Login(*username, *password)
		if err != nil {
			logger.Error("AUTH", fmt.Sprintf("Login failed: %v", err))
			os.Exit(1)
		}
		sess := &auth.Session{Username: *username, AuthToken: token, SavedAt: time.Now()}
		if err := sessions.Save(sess); err != nil {
			logger.Warn("AUTH", fmt.Sprintf("Could not store session: %v", err))
		}
		logger.Success("AUTH", "Logged in as "+*username)
	}

	a := app.New(cfg, client, sessions)
	if *offline {
		logger.Info("FIO", "Offline mode, using stored snapshots only")
	} else {
		a.StartFetches()
	}

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		logger.Error("APP", fmt.Sprintf("%v", err))
		os.Exit(1)
	}

	a.SyncConfig()
	if err := database.SaveConfig(cfg); err != nil {
		logger.Warn("CFG", fmt.Sprintf("Could not save settings: %v", err))
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
