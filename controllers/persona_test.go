package controllers

import (
	"testing"

	"github.com/miscanchas/canchas-api/utils"
)

func TestResolvePassword(t *testing.T) {
	storedHash, err := utils.HashPassword("claveVieja")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	t.Run("same hash is dropped", func(t *testing.T) {
		// The client echoed the stored hash back; it must not be re-hashed.
		value, changed, err := resolvePassword(storedHash, storedHash)
		if err != nil {
			t.Fatalf("resolvePassword() error = %v", err)
		}
		if changed {
			t.Error("resolvePassword() changed = true, want false for echoed hash")
		}
		if value != "" {
			t.Errorf("resolvePassword() value = %q, want empty", value)
		}
	})

	t.Run("new plaintext gets hashed", func(t *testing.T) {
		value, changed, err := resolvePassword("claveNueva", storedHash)
		if err != nil {
			t.Fatalf("resolvePassword() error = %v", err)
		}
		if !changed {
			t.Fatal("resolvePassword() changed = false, want true for new password")
		}
		if value == "claveNueva" {
			t.Error("resolvePassword() stored the plaintext")
		}
		if value == storedHash {
			t.Error("resolvePassword() kept the old hash")
		}
		if !utils.CheckPassword("claveNueva", value) {
			t.Error("new hash does not verify against the new plaintext")
		}
	})
}
