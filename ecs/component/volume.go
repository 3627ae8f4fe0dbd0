package component

type VolumeKind string

const (
	VolumePlatform   VolumeKind = "platforms"
	VolumeClimbable  VolumeKind = "climbable"
	VolumeDanger     VolumeKind = "danger"
	VolumeExit       VolumeKind = "exit"
	VolumeCheckpoint VolumeKind = "checkpoint"
)

// Volume is a world-space rectangle from a level layer. X/Y is the top-left.
type Volume struct {
	Kind   VolumeKind
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (v Volume) CenterX() float64 { return v.X + v.Width/2 }
func (v Volume) CenterY() float64 { return v.Y + v.Height/2 }

var VolumeComponent = NewComponent[Volume]()
