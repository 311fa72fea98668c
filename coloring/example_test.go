package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/kcolor/coloring"
	"github.com/katalvlaran/kcolor/graph"
)

// ExampleGreedy colors K_{2,2} first-fit: the left partition grabs color 1,
// forcing the right partition onto color 2.
func ExampleGreedy() {
	g, err := graph.CompleteBipartite(2, 2)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	a, err := coloring.Greedy(g, 2)
	if err != nil {
		fmt.Println("greedy:", err)
		return
	}

	s, err := coloring.NewState(g, 2, a)
	if err != nil {
		fmt.Println("state:", err)
		return
	}

	fmt.Println("assignment:", a)
	fmt.Println("conflicts:", s.Conflicts())
	// Output:
	// assignment: [1 1 2 2]
	// conflicts: 0
}

// ExampleHamming measures drift between two colorings of the same graph.
func ExampleHamming() {
	before := []int{1, 2, 1, 2, 3}
	after := []int{1, 3, 1, 2, 2}

	fmt.Println("distance:", coloring.Hamming(before, after))
	fmt.Println("within radius 1:", coloring.WithinRadius(before, after, 1))
	fmt.Println("within radius 2:", coloring.WithinRadius(before, after, 2))
	// Output:
	// distance: 2
	// within radius 1: false
	// within radius 2: true
}
