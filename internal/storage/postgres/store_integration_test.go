package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/weiminglau/family-tree-be/internal/models"
	"github.com/weiminglau/family-tree-be/internal/storage"
)

// TestStoreIntegration exercises the store against a live Postgres database.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	store, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("dbtest_%d", suffix)
	email := fmt.Sprintf("%s@example.com", username)

	userID, err := store.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "not-a-real-hash",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if userID <= 0 {
		t.Fatalf("create user returned id %d", userID)
	}

	if _, err := store.CreateUser(ctx, models.User{
		Username:     username + "_other",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate email: want ErrAlreadyExists, got %v", err)
	}

	dob := models.NewDate(1950, time.March, 14)
	created, err := store.CreateMember(ctx, models.FamilyMember{
		UserID:      userID,
		Name:        "Grandma",
		DateOfBirth: &dob,
	})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if created.ID == 0 || created.Gender != nil || created.Bio != nil {
		t.Fatalf("create member returned unexpected row: %+v", created)
	}

	bio := "new text"
	updated, err := store.UpdateMember(ctx, userID, created.ID, models.MemberPatch{Bio: &bio})
	if err != nil {
		t.Fatalf("update member: %v", err)
	}
	if updated.Bio == nil || *updated.Bio != bio || updated.Name != "Grandma" {
		t.Fatalf("update member returned unexpected row: %+v", updated)
	}
	if updated.DateOfBirth == nil || updated.DateOfBirth.String() != "1950-03-14" {
		t.Fatalf("date of birth did not survive the update: %+v", updated.DateOfBirth)
	}

	if _, err := store.GetMember(ctx, userID+1, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("cross-owner get: want ErrNotFound, got %v", err)
	}

	if err := store.DeleteMember(ctx, userID, created.ID); err != nil {
		t.Fatalf("delete member: %v", err)
	}
	if err := store.DeleteMember(ctx, userID, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
