package engine

import (
	"testing"
	"time"
)

func TestResourceStoreRoundTrip(t *testing.T) {
	rs := NewResourceStore()
	tr := &TimeResource{FrameNumber: 7}
	AddResource(rs, tr)

	got, ok := GetResource[*TimeResource](rs)
	if !ok {
		t.Fatal("resource not found")
	}
	if got != tr {
		t.Error("resource pointer changed")
	}

	if _, ok := GetResource[*ConfigResource](rs); ok {
		t.Error("unregistered resource reported present")
	}
}

func TestMustGetResourcePanicsWhenMissing(t *testing.T) {
	rs := NewResourceStore()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing resource")
		}
	}()
	MustGetResource[*PhysicsResource](rs)
}

func TestTimeResourceUpdateInPlace(t *testing.T) {
	tr := &TimeResource{}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tr.Update(now, now.Add(time.Second), 16*time.Millisecond, 3)

	if !tr.GameTime.Equal(now) || tr.DeltaTime != 16*time.Millisecond || tr.FrameNumber != 3 {
		t.Errorf("unexpected TimeResource: %+v", tr)
	}
}
