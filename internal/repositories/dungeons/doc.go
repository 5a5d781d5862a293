// Package dungeons holds the SQL run against the Dungeon and
// Dungeon_Equipment tables.
//
// All statements go through a Querier (the gateway in production), which
// serializes access to the shared connection and commits after each call.
// Text searches use LIKE with the term escaped, so '%' and '_' typed by the
// user are matched literally.
//
// Typical Usage
//
//	repo := dungeons.NewRepository(gw)
//	all, _ := repo.All(ctx)
//	hits, _ := repo.SearchNotes(ctx, "boss")
//	_ = repo.SetStatus(ctx, "ABCD1234", "FLAGGED")
package dungeons
