package component

// PatrolScript names a tengo script that computes the enemy's next velocity.
type PatrolScript struct {
	Path string
	// Failed is set after the first runtime error; the native rule takes over.
	Failed bool
}

var PatrolScriptComponent = NewComponent[PatrolScript]()
