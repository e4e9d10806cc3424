// Package widgets holds the closed set of concrete dashboard widgets built
// on the core capability model and the shared table component.
package widgets

// SelectionChangedMsg reports that a table widget's highlighted row moved.
type SelectionChangedMsg struct {
	Widget string
	Index  int
}

// KillRequestMsg asks the application to confirm and kill a process. Emitted
// when the already-selected process row is clicked again.
type KillRequestMsg struct {
	PID  int32
	Name string
}
