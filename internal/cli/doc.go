// Package cli wires configuration, logging and the database into the
// compass command tree and hosts the line-oriented REPL.
//
// Commands
//
//	compass              terminal UI on a TTY, REPL otherwise
//	compass tui          terminal UI
//	compass repl         REPL
//	compass search TERM  one-shot note search
//	compass equipment NAME [--like]
//	compass show GLYPH
//	compass toggle GLYPH
//	compass init PATH [--seed fixture.yaml]
//	compass version
//
// REPL commands
//
//	help                 show available commands
//	list | l             list every dungeon
//	search TERM          search notes
//	equip NAME           dungeons using the named equipment
//	like TERM            dungeons using equipment whose name contains TERM
//	categories           equipment categories
//	items CATEGORY       equipment in a category
//	show N               detail of row N of the last listing
//	toggle               flip the status of the shown row
//	sort COLUMN          sort by column; repeat to reverse
//	reset                clear the search and list everything
//	exit | quit          leave the program
package cli
