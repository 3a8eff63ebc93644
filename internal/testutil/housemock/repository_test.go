package housemock

import (
	"context"
	"errors"
	"testing"

	domain "realestate-backend/internal/domain/house"
)

func TestRepo_DefaultsAndOverrides(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if err := m.Create(ctx, &domain.House{}); err != nil {
		t.Fatalf("default Create: %v", err)
	}
	if _, err := m.GetByID(ctx, 1); !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("default GetByID: want ErrUnimplemented, got %v", err)
	}

	var gotStatus domain.Status
	m.UpdateStatusFn = func(_ context.Context, id uint64, s domain.Status) error {
		if id != 9 {
			t.Fatalf("id = %d", id)
		}
		gotStatus = s
		return nil
	}
	if err := m.UpdateStatus(ctx, 9, domain.StatusSold); err != nil || gotStatus != domain.StatusSold {
		t.Fatalf("UpdateStatus override: %v, %s", err, gotStatus)
	}
}
