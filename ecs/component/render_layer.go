package component

// RenderLayer sorts draw order. Lower indices draw first.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = 0
	LayerTiles      = 10
	LayerEnemies    = 20
	LayerPlayer     = 30
	LayerEffects    = 40
	LayerHUD        = 100
)

var RenderLayerComponent = NewComponent[RenderLayer]()
