package kcluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcluster/kcluster"
)

// BenchmarkCluster measures k=4 clustering of a random graph with 500 vertices and 20000 edges.
func BenchmarkCluster(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	edges := make([][3]int, 20000)
	for i := range edges {
		edges[i] = [3]int{r.Intn(500), r.Intn(500), r.Intn(1000)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := kcluster.New(kcluster.WithCapacity(500, len(edges)))
		for _, e := range edges {
			c.AddEdge(uint32(e[0]), uint32(e[1]), int32(e[2]))
		}
		b.StartTimer()
		_, _ = c.Cluster(4)
	}
}
