package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// PresetType is the category a location preset belongs to
type PresetType string

// Preset categories
const (
	PresetTypeRiver           PresetType = "RIVER"
	PresetTypeBridge          PresetType = "BRIDGE"
	PresetTypeDungeonEntrance PresetType = "DUNGEON_ENTRANCE"
	PresetTypeDungeonStairway PresetType = "DUNGEON_STAIRWAY"
	PresetTypeDungeonRoom     PresetType = "DUNGEON_ROOM"
	PresetTypeDungeonCorridor PresetType = "DUNGEON_CORRIDOR"
	PresetTypeLand            PresetType = "LAND"
)

// AllPresetTypes lists every preset category
func AllPresetTypes() []PresetType {
	return []PresetType{
		PresetTypeRiver,
		PresetTypeBridge,
		PresetTypeDungeonEntrance,
		PresetTypeDungeonStairway,
		PresetTypeDungeonRoom,
		PresetTypeDungeonCorridor,
		PresetTypeLand,
	}
}

// IsValid reports whether t is one of the declared categories
func (t PresetType) IsValid() bool {
	for _, known := range AllPresetTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParsePresetType parses a category name, ignoring case
func ParsePresetType(s string) (PresetType, error) {
	t := PresetType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errors.InvalidArgumentf("unknown preset type %q", s)
	}
	return t, nil
}

// UnmarshalText accepts category names in any case
func (t *PresetType) UnmarshalText(text []byte) error {
	parsed, err := ParsePresetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LocationPreset is the immutable blueprint a Location is instantiated from
type LocationPreset struct {
	ID                string      `json:"id" yaml:"id"`
	Type              PresetType  `json:"type" yaml:"type"`
	Name              string      `json:"name" yaml:"name"`
	BlobSize          int         `json:"blob_size,omitempty" yaml:"blob_size,omitempty"`
	Blocked           []Direction `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	LightPermittivity float64     `json:"light_permittivity" yaml:"light_permittivity"`
	Tags              []string    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Validate checks the preset is usable by the generators
func (p *LocationPreset) Validate() error {
	if p == nil {
		return errors.InvalidArgument("preset is required")
	}

	vb := errors.NewValidationBuilder()
	if p.ID == "" {
		vb.RequiredField("ID")
	}
	if p.Name == "" {
		vb.RequiredField("Name")
	}
	if !p.Type.IsValid() {
		vb.Fieldf("Type", "unknown preset type %q", p.Type)
	}
	if p.Type == PresetTypeLand {
		errors.ValidateMin("BlobSize", p.BlobSize, 1, vb)
	}
	for _, d := range p.Blocked {
		if !d.IsValid() {
			vb.Fieldf("Blocked", "invalid direction %d", int(d))
		}
	}
	if p.LightPermittivity < 0 || p.LightPermittivity > 1 {
		vb.Field("LightPermittivity", "must be between 0 and 1")
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid preset %q", p.ID)
	}
	return nil
}
