// Package algotrace records classic algorithms as step-by-step animation
// traces and races them against each other.
//
// Every generator is a pure function from its input to a step.Trace: an
// ordered list of steps, each naming the elements it touches, the pairs it
// relates, a human-readable message, an action tag and typed parameters. A
// trace starts with a "start" step and ends with exactly one "complete" step,
// so a presentation layer can replay it without knowing the algorithm.
//
// Packages:
//
//	step/          Step, Trace, Recorder, action vocabulary, validation, legacy tuples
//	sorting/       Bubble, Selection, Insertion, Merge and Quick sort traces
//	searching/     Linear, Binary, Jump, Interpolation and Exponential search traces
//	core/          read-only undirected graph input with optional weights
//	bfs/, dfs/     traversal traces
//	dijkstra/      single-source shortest path trace
//	prim_kruskal/  minimum spanning tree traces
//	catalog/       algorithm registry and traced, instrumented generation
//	race/          race session state machine and the tick-driven Runner
//	builder/       random and parsed inputs, graph presets
//	cmd/algorace/  command-line front end
//
// Quick start:
//
//	tr, err := sorting.Quick([]float64{5, 2, 9, 1})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range tr {
//		fmt.Println(s.Action, s.Message)
//	}
//
// Generators never log, sleep or draw random numbers; randomness lives in
// builder and pacing lives in race.
package algotrace
