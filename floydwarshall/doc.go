// Package floydwarshall computes all-pairs shortest paths by triple
// iteration over an intermediate vertex k, maintaining a next-hop matrix
// alongside the distances so any shortest path reconstructs by repeated
// lookup.
//
// Negative edge weights are accepted; a negative cycle shows up as a
// negative diagonal entry and is reported through HasNegativeCycle (a
// result observation, not an error). Distances touching such a cycle are
// not meaningful.
//
// Complexity: O(V^3) time, O(V^2) memory.
package floydwarshall
