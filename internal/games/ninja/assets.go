package ninja

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

//go:embed assets/sprites.yaml
var defaultSpritesYAML []byte

// Sprite keys every sheet must define.
const (
	SpriteNinja     = "ninja"
	SpriteCactus    = "cactus"
	SpriteCharacter = "character"
	SpriteShuriken  = "shuriken"
	SpriteGrenade   = "grenade"
	SpriteMissile   = "missile"
	SpriteExplosion = "explosion"
)

var requiredSprites = []string{
	SpriteNinja, SpriteCactus, SpriteCharacter, SpriteShuriken,
	SpriteGrenade, SpriteMissile, SpriteExplosion,
}

type spriteSheetFile struct {
	Sprites map[string]spriteFile `yaml:"sprites"`
}

type spriteFile struct {
	Color  string     `yaml:"color"`
	Frames [][]string `yaml:"frames"`
}

type spriteDef struct {
	color  core.Color
	frames [][]string
}

// TextureAssets is the loaded sprite collection.
type TextureAssets struct {
	sprites map[string]spriteDef
}

// ParseTextures decodes and validates a sprite sheet.
func ParseTextures(data []byte) (*TextureAssets, error) {
	var file spriteSheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sprites: %w", err)
	}

	t := &TextureAssets{sprites: make(map[string]spriteDef, len(file.Sprites))}
	var errs []error
	for key, sf := range file.Sprites {
		c, ok := core.ParseColor(sf.Color)
		if sf.Color != "" && !ok {
			errs = append(errs, fmt.Errorf("sprite %q: unknown color %q", key, sf.Color))
		}
		if len(sf.Frames) == 0 {
			errs = append(errs, fmt.Errorf("sprite %q: no frames", key))
		}
		t.sprites[key] = spriteDef{color: c, frames: sf.Frames}
	}
	for _, key := range requiredSprites {
		if _, ok := t.sprites[key]; !ok {
			errs = append(errs, fmt.Errorf("sprite %q is missing", key))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

// DefaultTextures returns the embedded sprite sheet.
func DefaultTextures() *TextureAssets {
	t, err := ParseTextures(defaultSpritesYAML)
	if err != nil {
		panic(fmt.Sprintf("ninja: embedded sprites are invalid: %v", err))
	}
	return t
}

// LoadTextures reads a sprite sheet from path, or the embedded one when path is empty.
func LoadTextures(path string) (*TextureAssets, error) {
	if path == "" {
		return DefaultTextures(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprites %s: %w", path, err)
	}
	t, err := ParseTextures(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Frame returns the rows and colour of a sprite frame. Frame indices wrap.
func (t *TextureAssets) Frame(key string, frame int) ([]string, core.Color, bool) {
	def, ok := t.sprites[key]
	if !ok || len(def.frames) == 0 {
		return nil, core.ColorDefault, false
	}
	n := len(def.frames)
	return def.frames[((frame%n)+n)%n], def.color, true
}

// FrameCount returns how many frames a sprite has.
func (t *TextureAssets) FrameCount(key string) int {
	return len(t.sprites[key].frames)
}
