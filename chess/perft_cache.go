package chess

import "unsafe"

const perftCluster = 4

type perftEntry struct {
	Hash  uint64
	Nodes uint64
	Depth int8
}

// PerftCache memoises subtree counts by position hash, so transpositions inside a perft
// tree are counted once. It is not safe for concurrent use.
type PerftCache struct {
	entries      []perftEntry
	clusterCount uint64
	Hits         uint64
}

// NewPerftCache allocates a table of roughly mb megabytes (at least one cluster).
func NewPerftCache(mb int) *PerftCache {
	entrySize := uint64(unsafe.Sizeof(perftEntry{}))
	clusterCount := uint64(mb) * 1024 * 1024 / (entrySize * perftCluster)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &PerftCache{
		entries:      make([]perftEntry, clusterCount*perftCluster),
		clusterCount: clusterCount,
	}
}

func (pc *PerftCache) cluster(hash uint64) []perftEntry {
	start := (hash % pc.clusterCount) * perftCluster
	return pc.entries[start : start+perftCluster]
}

func (pc *PerftCache) probe(hash uint64, depth int) (uint64, bool) {
	for _, e := range pc.cluster(hash) {
		if e.Hash == hash && int(e.Depth) == depth {
			return e.Nodes, true
		}
	}
	return 0, false
}

// store replaces an empty slot if there is one, otherwise the shallowest entry.
func (pc *PerftCache) store(hash uint64, depth int, nodes uint64) {
	c := pc.cluster(hash)
	victim := 0
	for i := range c {
		if c[i].Depth == 0 {
			victim = i
			break
		}
		if c[i].Depth < c[victim].Depth {
			victim = i
		}
	}
	c[victim] = perftEntry{Hash: hash, Nodes: nodes, Depth: int8(depth)}
}

// Perft is the package Perft with memoised interior nodes.
func (pc *PerftCache) Perft(b *Board, depth int) uint64 {
	if depth <= 1 {
		return Perft(b, depth)
	}
	hash := b.Hash()
	if n, ok := pc.probe(hash, depth); ok {
		pc.Hits++
		return n
	}
	var nodes uint64
	for _, id := range b.rosters[b.SideToMove()] {
		for _, to := range b.legalMoves(id) {
			c := b.Clone()
			c.play(id, to)
			nodes += pc.Perft(c, depth-1)
		}
	}
	pc.store(hash, depth, nodes)
	return nodes
}
