package component

// LevelChangeRequest asks the level loader to replace the world with another
// level. Systems only emit it; the loader owns IO and reinitialisation.
type LevelChangeRequest struct {
	Index int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
