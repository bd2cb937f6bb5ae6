package flow_test

import (
	"fmt"

	"github.com/graphkit-go/graphkit/flow"
)

// ExampleNetwork_MaxFlow ships goods from a depot (0) to a store (3)
// through two warehouses with limited truck capacity.
func ExampleNetwork_MaxFlow() {
	f := flow.NewNetwork(4)
	_ = f.AddArc(0, 1, 3)
	_ = f.AddArc(0, 2, 5)
	_ = f.AddArc(1, 3, 3)
	_ = f.AddArc(2, 3, 4)

	total, err := f.MaxFlow(0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total)
	// Output:
	// 7
}
