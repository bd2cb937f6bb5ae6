// Package prim_kruskal builds minimum spanning trees of connected,
// undirected, weighted graphs by two interchangeable algorithms.
//
// Prim grows a tree from vertex 0 using a min-heap keyed by the cheapest
// known connecting edge; stale heap entries are discarded on pop (the
// same lazy-decrease-key pattern as dijkstra). Kruskal sorts the
// deduplicated (u < v) undirected edge set by (weight, u, v) and greedily
// accepts every edge joining two different unionfind components, stopping
// at n-1 accepted edges.
//
// Both report the same total weight on any graph where an MST exists;
// with ties they may select different edge sets. Both fail explicitly:
// a directed graph is ErrDirectedGraph, a disconnected one (including
// n == 0) is ErrDisconnected. A single vertex yields the empty tree.
//
// Complexity: Prim O(E log V), Kruskal O(E log E + E α(V)).
package prim_kruskal
