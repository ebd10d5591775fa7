// Package bstviz is an animated binary search tree visualizer core.
//
// bstviz owns the tree, the entrance animation, and the timed search
// highlight. Render surfaces (the Ebitengine window in [canvas], the
// terminal UI in [termview]) call into it once per frame and paint whatever
// state it reports.
//
// # Quick start
//
//	v := bstviz.New(bstviz.Options{})
//	summary, err := v.BuildString("5, 3, 8, 1, 4")
//	// ... handle err, show summary.Lines() ...
//	path, err := v.Search(4) // 5 -> 3 -> 4, lighting up 600ms apart
//
// Then, from the host's frame callback:
//
//	frame := v.Tick(dt)
//	for _, e := range frame.Edges { /* draw line e.From -> e.To */ }
//	for _, n := range frame.Nodes { /* draw circle at n.Pos, alpha n.Opacity */ }
//
// # Tree
//
// [Tree] stores nodes in an arena and links children by [NodeIndex].
// Duplicate inserts are ignored. Shape follows insertion order; there is no
// balancing and no per-node deletion.
//
// # Animation
//
// Every new node slides down from 25px above its slot while fading in, in
// fixed per-tick steps, until it settles. Rebuilding replays the entrance
// for every node.
//
// # Search
//
// [Visualizer.Search] computes the root-to-target path and queues one mark
// per node on a virtual-clock [Scheduler] advanced by Tick. Each search runs
// under a new generation, and queued marks from older generations are
// discarded, so a superseded walk never touches a newer one. A miss is
// reported through [HighlightEvents.OnNotFound] and [Visualizer.Status]
// once the walk completes.
//
// [canvas]: https://pkg.go.dev/github.com/phanxgames/bstviz/canvas
// [termview]: https://pkg.go.dev/github.com/phanxgames/bstviz/termview
package bstviz
