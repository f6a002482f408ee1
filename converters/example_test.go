package converters_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/converters"
	"github.com/katalvlaran/algotrace/karatsuba"
)

// ExampleMermaid renders a one-level call tree.
func ExampleMermaid() {
	r, err := karatsuba.Trace("12345", "678")
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(converters.Mermaid(r))
	// Output:
	// graph TD
	//     n0["12345 * 678 = 8369910"]
	//     n0_0("123 * 6 = 738")
	//     n0_1("45 * 78 = 3510")
	//     n0_2("168 * 84 = 14112")
	//     n0 --> n0_0
	//     n0 --> n0_1
	//     n0 --> n0_2
}
