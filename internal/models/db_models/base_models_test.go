package db_models

import (
	"testing"

	"github.com/google/uuid"
)

func TestBeforeCreateAssignsIDAndTimestamps(t *testing.T) {
	var m BaseModel
	if err := m.BeforeCreate(nil); err != nil {
		t.Fatal(err)
	}
	if m.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if m.CreatedAt == 0 || m.UpdatedAt != m.CreatedAt {
		t.Errorf("timestamps = %d/%d, want matching unix seconds", m.CreatedAt, m.UpdatedAt)
	}
}

func TestBeforeCreateKeepsExistingID(t *testing.T) {
	id := uuid.New()
	m := BaseModel{ID: id}
	if err := m.BeforeCreate(nil); err != nil {
		t.Fatal(err)
	}
	if m.ID != id {
		t.Errorf("ID = %s, want preset %s", m.ID, id)
	}
}
