// Package locations stores snapshots of generated worlds. Snapshots are an
// export of the world's state; the world never reads them back while
// generating.
package locations

//go:generate mockgen -destination=mock/mock_repository.go -package=locationsmock github.com/KirkDiggler/rpg-world/internal/repositories/locations Repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// Repository defines the storage interface for world snapshots
type Repository interface {
	// Save writes locations into the world's snapshot, replacing any record
	// at the same point
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves the record at one point
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every record of a world ordered by point
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Record is the stored form of a location
type Record struct {
	ID                string               `json:"id"`
	PresetID          string               `json:"preset_id"`
	Type              entities.PresetType  `json:"type"`
	Name              string               `json:"name"`
	Point             entities.Point       `json:"point"`
	Blocked           []entities.Direction `json:"blocked,omitempty"`
	LightPermittivity float64              `json:"light_permittivity"`
	Tags              []string             `json:"tags,omitempty"`
	GeneratedAt       time.Time            `json:"generated_at"`
	SavedAt           time.Time            `json:"saved_at"`
}

// NewRecord captures the current state of loc
func NewRecord(loc *entities.Location) *Record {
	return &Record{
		ID:                loc.ID,
		PresetID:          loc.PresetID,
		Type:              loc.Type,
		Name:              loc.Name,
		Point:             loc.Point,
		Blocked:           loc.BlockedDirections(),
		LightPermittivity: loc.LightPermittivity,
		Tags:              slices.Clone(loc.Tags),
		GeneratedAt:       loc.GeneratedAt,
	}
}

// ToLocation rebuilds the location the record was taken from
func (r *Record) ToLocation() *entities.Location {
	loc := entities.NewLocation(&entities.LocationPreset{
		ID:                r.PresetID,
		Type:              r.Type,
		Name:              r.Name,
		Blocked:           r.Blocked,
		LightPermittivity: r.LightPermittivity,
		Tags:              r.Tags,
	}, r.Point)
	loc.ID = r.ID
	loc.GeneratedAt = r.GeneratedAt
	return loc
}

// SaveInput defines the request for saving locations
type SaveInput struct {
	WorldID   string
	Locations []*entities.Location
}

// SaveOutput defines the response for saving locations
type SaveOutput struct {
	Saved int
}

// GetInput defines the request for getting one record
type GetInput struct {
	WorldID string
	Point   entities.Point
}

// GetOutput defines the response for getting one record
type GetOutput struct {
	Record *Record
}

// ListInput defines the request for listing a world's records
type ListInput struct {
	WorldID string
}

// ListOutput defines the response for listing a world's records
type ListOutput struct {
	Records []*Record
}

const (
	errWorldIDEmpty = "world ID cannot be empty"
	errLocationNil  = "locations cannot contain nil"
)

func validateSave(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return errors.InvalidArgument(errWorldIDEmpty)
	}
	for _, loc := range input.Locations {
		if loc == nil {
			return errors.InvalidArgument(errLocationNil)
		}
	}
	return nil
}

// pointField is the hash field a point is stored under
func pointField(p entities.Point) string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

func sortRecords(records []*Record) {
	slices.SortFunc(records, func(a, b *Record) int {
		return a.Point.Compare(b.Point)
	})
}
