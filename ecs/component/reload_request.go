package component

// ReloadRequest asks the level loader to rebuild the current level, for
// example after a prefab changed on disk.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
