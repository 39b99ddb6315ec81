package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"

	"github.com/lafriks/go-tiled"
)

var ErrNoBoundary = errors.New("leveldata: no Boundary object")

const (
	boundaryGroup = "Boundary"
	bodiesGroup   = "Bodies"

	defaultRestitution = 1.0
	defaultFriction    = 0.5
)

// LoadScene parses a TMX file. The first object of the "Boundary" object
// group is the world boundary; every object of the "Bodies" group becomes a
// body. Ellipses become circles, everything else a box. Object rotation is
// read in degrees and applied around the object's center.
//
// Optional body properties: vx, vy, spin (float), fixed (bool),
// restitution, friction (float).
func LoadScene(fsys fs.FS, tmxPath string) (*Scene, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{}
	foundBoundary := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case boundaryGroup:
			if len(og.Objects) == 0 || foundBoundary {
				continue
			}
			o := og.Objects[0]
			scene.Boundary = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			foundBoundary = true

		case bodiesGroup:
			for _, o := range og.Objects {
				scene.Bodies = append(scene.Bodies, bodyFromObject(o))
			}
		}
	}

	if !foundBoundary {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoBoundary)
	}

	// Stable spawn order regardless of layer layout
	sort.Slice(scene.Bodies, func(i, j int) bool {
		return scene.Bodies[i].ID < scene.Bodies[j].ID
	})

	return scene, nil
}

func bodyFromObject(o *tiled.Object) BodySpec {
	spec := BodySpec{
		ID:    int(o.ID),
		Shape: ShapeBox,
		X:     o.X + o.Width/2,
		Y:     o.Y + o.Height/2,
		W:     o.Width,
		H:     o.Height,
		Angle: o.Rotation * math.Pi / 180,

		VX:    o.Properties.GetFloat("vx"),
		VY:    o.Properties.GetFloat("vy"),
		Spin:  o.Properties.GetFloat("spin"),
		Fixed: o.Properties.GetBool("fixed"),

		Restitution: defaultRestitution,
		Friction:    defaultFriction,
	}
	if len(o.Ellipses) > 0 {
		spec.Shape = ShapeCircle
	}
	if o.Properties.GetString("restitution") != "" {
		spec.Restitution = o.Properties.GetFloat("restitution")
	}
	if o.Properties.GetString("friction") != "" {
		spec.Friction = o.Properties.GetFloat("friction")
	}
	return spec
}
