package cache

import (
	"context"
	"strings"
	"testing"
)

func TestKeyIsDeterministic(t *testing.T) {
	c := NewVisualizationCache(nil)

	a := c.Key("file-1", []string{"GR", "RHOB"}, 1000, 1010)
	b := c.Key("file-1", []string{"GR", "RHOB"}, 1000, 1010)
	if a != b {
		t.Fatalf("same selection produced different keys: %q vs %q", a, b)
	}
}

func TestKeyDistinguishesSelections(t *testing.T) {
	c := NewVisualizationCache(nil)

	cases := [][2][]string{
		{{"GR", "RHOB"}, {"RHOB", "GR"}},
		{{"GR,RHOB"}, {"GR", "RHOB"}},
		{{"GR"}, {"GR", ""}},
	}
	for _, tc := range cases {
		a := c.Key("file-1", tc[0], 1000, 1010)
		b := c.Key("file-1", tc[1], 1000, 1010)
		if a == b {
			t.Errorf("selections %v and %v collided on key %q", tc[0], tc[1], a)
		}
	}
}

func TestKeyPrefixSupportsFileInvalidation(t *testing.T) {
	c := NewVisualizationCache(nil)

	key := c.Key("file-1", []string{"GR"}, 1000, 1010)
	if !strings.HasPrefix(key, "viz:file-1:") {
		t.Fatalf("key %q lost the per-file prefix", key)
	}
}

func TestNilClientDegradesToMisses(t *testing.T) {
	c := NewVisualizationCache(nil)
	ctx := context.Background()

	key := c.Key("file-1", []string{"GR"}, 1000, 1010)
	c.Set(ctx, key, []byte("payload"))
	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("nil-client cache reported a hit")
	}
	c.InvalidateFile(ctx, "file-1")
}
