// Package gateway owns the single SQLite connection used by Chalice Compass.
//
// # Overview
//
// A Gateway is built from an ordered list of candidate database files
// (primary first, then backup). It keeps the first candidate that opens and
// serializes every statement behind a mutex, so the connection is never used
// by two callers at once even if a front end issues queries from several
// goroutines.
//
// # Statement contract
//
// Query runs exactly one statement inside its own transaction and commits
// afterwards, reads included. The complete result set is returned as Rows in
// column order; statements that do not produce rows return an empty slice.
//
// # Failure handling
//
// Any database error is logged and followed by a reconnection attempt over
// the same candidate list. The failed statement is not retried: the caller
// gets ErrQueryFailed and its action yields no results. ErrNoDatabase is
// returned (and wrapped) only when no candidate can be opened.
//
// Typical Usage
//
//	gw, err := gateway.New(ctx, []string{primary, backup}, gateway.WithLogger(log))
//	if err != nil { ... } // fatal: nothing opened
//	defer gw.Close()
//	rows, err := gw.Query(ctx, "SELECT Glyph FROM Dungeon WHERE Notes LIKE ?", "%boss%")
package gateway
