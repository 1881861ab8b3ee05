package requestid

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	if got := FromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}

	ctx := WithID(context.Background(), "abc")
	if got := FromContext(ctx); got != "abc" {
		t.Fatalf("FromContext() = %q, want %q", got, "abc")
	}
}
