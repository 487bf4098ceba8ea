package main

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hupe1980/brepgo/algo"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/profile"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalogue []byte

// Catalogue lists the parts the demo builds.
type Catalogue struct {
	Parts []Part `yaml:"parts"`
}

// Part is built into a model of its own.
type Part struct {
	Name     string    `yaml:"name"`
	Features []Feature `yaml:"features"`
}

// Feature is one sweep of a part.
type Feature struct {
	Name     string      `yaml:"name"`
	Sweep    string      `yaml:"sweep"` // extrude, revolve
	Distance float64     `yaml:"distance"`
	Angle    float64     `yaml:"angle"` // degrees
	Steps    int         `yaml:"steps"`
	IDBase   int32       `yaml:"id_base"`
	Profile  ProfileSpec `yaml:"profile"`
}

// ProfileSpec describes the profile of a feature.
type ProfileSpec struct {
	Kind       string       `yaml:"kind"` // regular, rectangle, ring, points
	Sides      int          `yaml:"sides"`
	Radius     float64      `yaml:"radius"`
	HalfWidth  float64      `yaml:"half_width"`
	HalfHeight float64      `yaml:"half_height"`
	Z          float64      `yaml:"z"`
	Ring       [][2]float64 `yaml:"ring"`
	Points     [][3]float64 `yaml:"points"`
}

var errInvalidCatalogue = errors.New("invalid catalogue")

// LoadCatalogue reads a catalogue from path, or the built-in one if path
// is empty.
func LoadCatalogue(path string) (*Catalogue, error) {
	data := defaultCatalogue
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue: %w", err)
		}
	}
	return ParseCatalogue(data)
}

// ParseCatalogue decodes and validates a YAML catalogue.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the structure of the catalogue. Profile parameters are
// checked when the profile is built.
func (c *Catalogue) Validate() error {
	if len(c.Parts) == 0 {
		return fmt.Errorf("%w: no parts", errInvalidCatalogue)
	}

	var errs []error
	for i, p := range c.Parts {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%w: part %d has no name", errInvalidCatalogue, i))
		}
		for _, f := range p.Features {
			switch f.Sweep {
			case "extrude", "revolve":
			default:
				errs = append(errs, fmt.Errorf("%w: %s/%s: unknown sweep %q", errInvalidCatalogue, p.Name, f.Name, f.Sweep))
			}
		}
	}
	return errors.Join(errs...)
}

// Points builds the profile described by s.
func (s ProfileSpec) Points() ([]geom.Point, error) {
	var (
		pts []geom.Point
		err error
	)

	switch s.Kind {
	case "regular":
		pts, err = profile.Regular(s.Sides, s.Radius, s.Z)
	case "rectangle":
		pts, err = profile.Rectangle(s.HalfWidth, s.HalfHeight, s.Z)
	case "ring":
		ring := make(orb.Ring, len(s.Ring))
		for i, p := range s.Ring {
			ring[i] = orb.Point{p[0], p[1]}
		}
		pts, err = profile.FromRing(ring, s.Z)
	case "points":
		pts = make([]geom.Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = geom.PtID(i+1, p[0], p[1], p[2])
		}
	default:
		return nil, fmt.Errorf("%w: unknown profile kind %q", profile.ErrInvalidProfile, s.Kind)
	}
	if err != nil {
		return nil, err
	}

	return profile.EnsureCCW(pts), nil
}

// SweepOptions returns the sweep options of f.
func (f Feature) SweepOptions() []algo.SweepOption {
	var opts []algo.SweepOption
	if f.IDBase != 0 {
		opts = append(opts, algo.WithIDBase(f.IDBase))
	}
	if f.Steps != 0 {
		opts = append(opts, algo.WithSteps(f.Steps))
	}
	return opts
}

// AngleRadians returns the revolve angle in radians.
func (f Feature) AngleRadians() float64 {
	return f.Angle * math.Pi / 180
}
