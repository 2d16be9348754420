package network

import (
	"fmt"
	"math"
)

// Basis is the quantity a tariff charges for.
type Basis string

const (
	// BasisStations charges per station travelled (hops along the path).
	BasisStations Basis = "stations"
	// BasisDistance charges per kilometre along the path.
	BasisDistance Basis = "distance"
	// BasisTime charges per minute along the path.
	BasisTime Basis = "time"
)

// Slab is one band of a banded fare table: journeys up to UpTo units cost Fare.
type Slab struct {
	UpTo float64 `yaml:"up_to" json:"up_to" validate:"gt=0"`
	Fare int64   `yaml:"fare" json:"fare" validate:"gte=0"`
}

// Tariff turns path metrics into a fare, in minor currency units.
//
// Without slabs the fare is Base + PerUnit*ceil(units), capped at Max when Max > 0.
// With slabs the fare is that of the first slab whose UpTo covers the units;
// journeys beyond the table pay the last slab. A slab tariff leaves Base,
// PerUnit and Max at zero: its first slab is the base fare, charged for a
// zero-unit journey.
type Tariff struct {
	Basis   Basis  `yaml:"basis" json:"basis" validate:"required,oneof=stations distance time"`
	Base    int64  `yaml:"base" json:"base" validate:"gte=0"`
	PerUnit int64  `yaml:"per_unit" json:"per_unit" validate:"gte=0"`
	Max     int64  `yaml:"max" json:"max" validate:"gte=0"`
	Slabs   []Slab `yaml:"slabs" json:"slabs" validate:"dive"`
}

// Validate checks field ranges and that slabs describe a monotonic table.
func (t Tariff) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %w", ErrBadTariff, err)
	}
	if len(t.Slabs) > 0 && (t.Base != 0 || t.PerUnit != 0 || t.Max != 0) {
		return fmt.Errorf("%w: slabs cannot be combined with base, per_unit or max", ErrBadTariff)
	}
	if t.Max > 0 && t.Max < t.Base {
		return fmt.Errorf("%w: max %d below base %d", ErrBadTariff, t.Max, t.Base)
	}
	for i := 1; i < len(t.Slabs); i++ {
		prev, cur := t.Slabs[i-1], t.Slabs[i]
		if cur.UpTo <= prev.UpTo {
			return fmt.Errorf("%w: slab %d up_to %v not above %v", ErrBadTariff, i, cur.UpTo, prev.UpTo)
		}
		if cur.Fare < prev.Fare {
			return fmt.Errorf("%w: slab %d fare %d below %d", ErrBadTariff, i, cur.Fare, prev.Fare)
		}
	}

	return nil
}

// Units picks the quantity charged by the tariff basis.
func (t Tariff) Units(stations int, distance, time float64) float64 {
	switch t.Basis {
	case BasisDistance:
		return distance
	case BasisTime:
		return time
	default:
		return float64(stations)
	}
}

// Fare applies the tariff to a number of units. It is non-decreasing in units
// for any tariff that passes Validate.
func (t Tariff) Fare(units float64) int64 {
	units = roundUnits(units)

	if len(t.Slabs) > 0 {
		for _, s := range t.Slabs {
			if units <= s.UpTo {
				return s.Fare
			}
		}

		return t.Slabs[len(t.Slabs)-1].Fare
	}

	fare := t.Base + t.PerUnit*int64(math.Ceil(units))
	if t.Max > 0 && fare > t.Max {
		fare = t.Max
	}

	return fare
}

// roundUnits trims float noise from summed edge weights (0.1+0.2+0.7 must
// charge for 1 unit, not 2).
func roundUnits(u float64) float64 {
	if u <= 0 {
		return 0
	}

	return math.Round(u*1e6) / 1e6
}
