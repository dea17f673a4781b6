// Package guitarfest allocates a fixed set of unique items ("guitars") to
// persons in two rounds, from ranked preference lists and a priority order.
//
// Round one walks preference ranks in order and, within a rank, serves
// persons by priority.  Round two re-runs the same greedy pass on the
// leftovers with persons who fared worst in round one served first.
//
// End-users typically interact with the engine via the Service façade:
//
//	srv, _ := guitarfest.New(guitarfest.WithConfig(cfg))
//	run, _ := srv.Run(ctx)
//	data, _ := srv.Report(ctx, run)
//
// The algorithm lives in service/allocator; preference loading, priority
// ordering and reporting are pluggable collaborators.
package guitarfest
