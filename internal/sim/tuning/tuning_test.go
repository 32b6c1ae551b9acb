package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp tuning: %v", err)
	}
	return p
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != Default() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestLoad_OverridesAndKeepsDefaults(t *testing.T) {
	p := writeTemp(t, "world:\n  width: 8\n  height: 9\n  levels: 2\ngeneration:\n  seed: 7\n")
	got, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.World.Width != 8 || got.World.Height != 9 || got.World.Levels != 2 {
		t.Fatalf("world = %+v", got.World)
	}
	if got.Generation.Seed != 7 {
		t.Fatalf("seed = %d, want 7", got.Generation.Seed)
	}
	// Unset fields keep defaults.
	if got.Generation.IronBelow != 0.10 || got.Generation.StoneBelow != 0.55 {
		t.Fatalf("cut points = %+v, want defaults", got.Generation)
	}
	if got.Drones != 3 {
		t.Fatalf("drones = %d, want default 3", got.Drones)
	}
}

func TestLoad_RejectsBadCutPoints(t *testing.T) {
	p := writeTemp(t, "generation:\n  iron_below: 0.9\n  stone_below: 0.2\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("inverted cut points should fail validation")
	}
}

func TestLoad_RejectsBadDimensions(t *testing.T) {
	p := writeTemp(t, "world:\n  width: 0\n  height: 4\n  levels: 1\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("zero width should fail validation")
	}
}

func TestLoad_ShippedConfigParses(t *testing.T) {
	got, err := Load(filepath.Join("..", "..", "..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("load shipped config: %v", err)
	}
	if got != Default() {
		t.Fatalf("shipped config %+v should match defaults %+v", got, Default())
	}
}
