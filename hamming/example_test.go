package hamming_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvcluster/hamming"
)

// ExampleClusterer_Cluster groups five 5-bit codes with threshold 3.
// {00000, 00001, 00010} and {11100, 11111} are at least 3 bits apart.
func ExampleClusterer_Cluster() {
	c, err := hamming.New(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = c.AddVertex(1, 0b00000)
	_ = c.AddVertex(2, 0b11111)
	_ = c.AddVertex(3, 0b00001)
	_ = c.AddVertex(4, 0b11100)
	_ = c.AddVertex(5, 0b00010)

	c.Cluster(3)
	fmt.Println("groups:", c.Groups())
	_ = c.WriteSummary(os.Stdout)
	// Output:
	// groups: 2
	// cluster 0 rank 2 members [1 3 5]
	// cluster 28 rank 2 members [4 2]
}
