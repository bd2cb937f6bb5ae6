// Package graphkit is an exact graph-algorithms engine: build a graph
// over dense integer vertices, then query it.
//
// What's inside:
//
//	core/          - the Graph store: fixed vertex count, directed or
//	                 undirected, insertion-ordered adjacency, edge list
//	unionfind/     - disjoint set union (path compression + rank)
//	bfs/           - BFS, multi-source BFS, 0-1 BFS
//	dfs/           - recursive and explicit-stack DFS
//	dijkstra/      - non-negative shortest paths, lazy-decrease-key heap
//	bellmanford/   - negative-weight shortest paths + cycle flag
//	toposort/      - Kahn's and DFS-based topological sort
//	dagsp/         - linear-time shortest paths on a DAG
//	floydwarshall/ - all-pairs distances with path reconstruction
//	scc/           - Kosaraju and Tarjan strongly connected components
//	bridges/       - bridges and articulation points
//	prim_kruskal/  - minimum spanning trees, two ways
//	lca/           - binary-lifting ancestor queries on rooted trees
//	flow/          - Dinic max-flow on residual arc arenas
//
// Every algorithm treats the Graph as a read-only snapshot and returns
// freshly allocated results, so a built graph may serve many queries,
// even from parallel goroutines, as long as no further edges are being
// inserted. All algorithms are exact; there are no heuristics and no
// cancellation mechanism - bound latency by bounding input size.
//
// Quick taste:
//
//	g := core.New(4, core.WithDirected())
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(0, 2, 4)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(2, 3, 1)
//	res, _ := dijkstra.Dijkstra(g, 0)
//	fmt.Println(res.Dist) // [0 1 3 4]
package graphkit
