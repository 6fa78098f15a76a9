package auth

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *SessionStore {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	_, err = sqlDB.Exec(`
		CREATE TABLE auth_session (
			username   TEXT PRIMARY KEY,
			auth_token TEXT NOT NULL,
			saved_at   INTEGER NOT NULL
		)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return NewSessionStore(sqlDB)
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := openTestStore(t)

	if store.Get() != nil {
		t.Error("Get() on empty store should return nil")
	}

	sess := &Session{Username: "moltke", AuthToken: "tok-123"}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := store.Get()
	if got == nil {
		t.Fatal("Get() after Save returned nil")
	}
	if got.Username != "moltke" || got.AuthToken != "tok-123" {
		t.Errorf("Get() = %+v", got)
	}
	if got.SavedAt.IsZero() {
		t.Error("SavedAt not set")
	}

	store.Delete()
	if store.Get() != nil {
		t.Error("Get() after Delete should return nil")
	}
}

func TestSessionStore_SaveReplacesPrevious(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(&Session{Username: "first", AuthToken: "t1"}); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(&Session{Username: "second", AuthToken: "t2"}); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got := store.Get()
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if got.Username != "second" || got.AuthToken != "t2" {
		t.Errorf("Get() = %+v, want the second session", got)
	}
}

func TestSessionStore_SaveNil(t *testing.T) {
	store := openTestStore(t)
	if err := store.Save(nil); err == nil {
		t.Error("Save(nil) should error")
	}
}
