package ninja

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

func TestDefaultTexturesHaveEverySprite(t *testing.T) {
	tex := DefaultTextures()
	for _, key := range requiredSprites {
		if tex.FrameCount(key) == 0 {
			t.Errorf("sprite %q has no frames", key)
		}
	}
	if n := tex.FrameCount(SpriteShuriken); n != 2 {
		t.Errorf("shuriken frames = %d, want 2", n)
	}
}

func TestFrameWraps(t *testing.T) {
	tex := DefaultTextures()
	a, _, _ := tex.Frame(SpriteShuriken, 0)
	b, _, _ := tex.Frame(SpriteShuriken, 2)
	c, _, _ := tex.Frame(SpriteShuriken, -2)
	if a[0] != b[0] || a[0] != c[0] {
		t.Errorf("frames should wrap: %q %q %q", a, b, c)
	}
	if _, _, ok := tex.Frame("unknown", 0); ok {
		t.Error("unknown sprite should not resolve")
	}
}

func TestParseTexturesErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "sprites: [", "parse sprites"},
		{"missing sprites", "sprites:\n  ninja:\n    frames: [[\"x\"]]\n", "is missing"},
		{"bad color", strings.Replace(string(defaultSpritesYAML), "bright_cyan", "plaid", 1), "unknown color"},
		{"no frames", strings.Replace(string(defaultSpritesYAML), "sprites:", "sprites:\n  empty:\n    color: red", 1), "no frames"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTextures([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTextures(t *testing.T) {
	dir := t.TempDir()
	custom := strings.Replace(string(defaultSpritesYAML), "<@>", "(@)", 1)
	path := filepath.Join(dir, "sprites.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	tex, err := LoadTextures(path)
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}
	rows, c, _ := tex.Frame(SpriteNinja, 0)
	if rows[0] != "(@)" || c != core.ColorBrightCyan {
		t.Errorf("ninja = %q %v", rows, c)
	}

	if _, err := LoadTextures(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
