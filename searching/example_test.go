package searching_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/searching"
)

// ExampleBinary prints each step of a binary search that needs two narrows.
func ExampleBinary() {
	tr, err := searching.Binary([]float64{1, 3, 5, 7, 9, 11}, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range tr {
		fmt.Println(s.Action, s.Elements)
	}
	// Output:
	// start []
	// midpoint [2]
	// compare [2]
	// narrow-right [2]
	// midpoint [4]
	// compare [4]
	// narrow-left [4]
	// midpoint [3]
	// compare [3]
	// found [3]
	// complete []
}
