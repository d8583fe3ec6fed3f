package objstore

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:3000")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	key := "abc_well.las"
	if err := s.Put(ctx, key, strings.NewReader("~V\n VERS. 2.0 : v\n")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	r, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, _ := io.ReadAll(r)
	r.Close()
	if !strings.HasPrefix(string(data), "~V") {
		t.Errorf("content = %q, want stored bytes back", string(data))
	}

	if got := s.PublicURL(key); got != "http://localhost:3000/uploads/"+key {
		t.Errorf("PublicURL = %q", got)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting again is a no-op.
	if err := s.Delete(ctx, key); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if _, err := s.Get(ctx, key); err == nil {
		t.Error("Get after Delete should fail")
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	for _, key := range []string{"../escape.las", "/etc/passwd", "."} {
		if err := s.Put(context.Background(), key, strings.NewReader("x")); err == nil {
			t.Errorf("Put(%q) should reject traversal", key)
		}
	}
}
