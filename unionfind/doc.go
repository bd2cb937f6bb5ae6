// Package unionfind implements a disjoint-set union (DSU) over the dense
// vertex range [0, n), with iterative path compression on Find and union
// by rank on Union.
//
// It backs Kruskal's spanning-tree construction and is reusable anywhere a
// set partition over integer identifiers is needed (connectivity batching,
// clustering, cycle detection on edge streams).
//
// Complexity: a sequence of m Find/Union operations over n elements costs
// O(m α(n)), effectively constant per operation. Memory: O(n).
package unionfind
