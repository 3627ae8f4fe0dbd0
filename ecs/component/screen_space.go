package component

// ScreenSpace marks sprites drawn without the camera transform.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
