// Package browser is the rendering-independent model behind every Chalice
// Compass front end.
//
// A Browser owns the visible dungeon list, the last search term, the current
// sort and the detail pane. Front ends (the terminal UI and the REPL) call its
// methods in response to user input and redraw from its accessors; they never
// talk to the database directly.
//
// State machine
//
//	Idle --Load/Search--> Populated --Select--> DetailShown
//	any  --Reset--------> Idle --> Populated
//
// Searches replace the whole list and clear the selection. A status toggle
// reloads the unfiltered list, dropping sort and selection, and appends a
// confirmation line to the detail text.
package browser
