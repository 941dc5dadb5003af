package retained_test

import (
	"fmt"

	"github.com/polyfrost/polyui/retained"
)

func ExampleContainer_Solve() {
	cfg := retained.DefaultContainerConfig()
	cfg.Width = 300
	cfg.MainGap = 10
	c := retained.NewContainer(cfg)

	for i := 0; i < 3; i++ {
		if err := c.Add(retained.NewItem(retained.FlexBasis(1, 1, retained.Px(80)), retained.Px(20))); err != nil {
			panic(err)
		}
	}
	if err := c.Solve(); err != nil {
		panic(err)
	}

	for _, it := range c.Items() {
		l := it.Layout()
		fmt.Printf("x=%.2f w=%.2f\n", l.X, l.Width)
	}
	// Output:
	// x=0.00 w=93.33
	// x=103.33 w=93.33
	// x=206.67 w=93.33
}
