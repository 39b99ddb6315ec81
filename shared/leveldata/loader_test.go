package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="2" name="Bodies">
  <object id="4" x="300" y="100" width="30" height="30">
   <ellipse/>
  </object>
  <object id="2" x="100" y="50" width="40" height="20" rotation="90">
   <properties>
    <property name="vx" type="float" value="120"/>
    <property name="vy" type="float" value="-30"/>
    <property name="restitution" type="float" value="0.5"/>
   </properties>
  </object>
  <object id="3" x="0" y="300" width="640" height="20">
   <properties>
    <property name="fixed" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="1" name="Boundary">
  <object id="1" x="0" y="0" width="640" height="320"/>
 </objectgroup>
</map>
`

const noBoundaryTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Bodies">
  <object id="1" x="10" y="10" width="4" height="4"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/arena.tmx":       {Data: []byte(arenaTMX)},
		"levels/no_boundary.tmx": {Data: []byte(noBoundaryTMX)},
	}
}

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene(testFS(), "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	if scene.Boundary != (Rect{X: 0, Y: 0, W: 640, H: 320}) {
		t.Errorf("Boundary = %+v", scene.Boundary)
	}
	if len(scene.Bodies) != 3 {
		t.Fatalf("got %d bodies, want 3", len(scene.Bodies))
	}

	box := scene.Bodies[0]
	if box.ID != 2 || box.Shape != ShapeBox {
		t.Errorf("first body = %+v, want box with ID 2", box)
	}
	if box.X != 120 || box.Y != 60 || box.W != 40 || box.H != 20 {
		t.Errorf("box placement = (%v,%v) %vx%v", box.X, box.Y, box.W, box.H)
	}
	if math.Abs(box.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("box angle = %v, want pi/2", box.Angle)
	}
	if box.VX != 120 || box.VY != -30 {
		t.Errorf("box velocity = (%v,%v)", box.VX, box.VY)
	}
	if box.Restitution != 0.5 || box.Friction != defaultFriction {
		t.Errorf("box material = %v/%v", box.Restitution, box.Friction)
	}

	floor := scene.Bodies[1]
	if !floor.Fixed {
		t.Errorf("body 3 should be fixed: %+v", floor)
	}

	ball := scene.Bodies[2]
	if ball.Shape != ShapeCircle || ball.W != 30 {
		t.Errorf("ball = %+v, want circle of diameter 30", ball)
	}
	if ball.Restitution != defaultRestitution {
		t.Errorf("ball restitution = %v, want default", ball.Restitution)
	}
}

func TestLoadSceneWithoutBoundary(t *testing.T) {
	_, err := LoadScene(testFS(), "levels/no_boundary.tmx")
	if !errors.Is(err, ErrNoBoundary) {
		t.Errorf("err = %v, want ErrNoBoundary", err)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := LoadScene(testFS(), "levels/missing.tmx"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
