package observability

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestIDReturnsUUID(t *testing.T) {
	id := NewRequestID()
	if id == "" {
		t.Fatal("expected non-empty request id")
	}

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
}

func TestIsRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "", want: false},
		{id: "not-a-uuid", want: false},
		{id: "7f1f8f8e-6a51-4e8e-9f0a-2b8c3d4e5f60", want: true},
	}

	for _, tc := range tests {
		if got := IsRequestID(tc.id); got != tc.want {
			t.Fatalf("IsRequestID(%q): expected %t, got %t", tc.id, tc.want, got)
		}
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	want := "abc-123"

	ctx = ContextWithRequestID(ctx, want)
	got := RequestIDFromContext(ctx)

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRequestIDFromContextWhenMissingOrWrongType(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		got := RequestIDFromContext(context.Background())
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, 42)
		got := RequestIDFromContext(ctx)
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}
