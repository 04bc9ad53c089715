package zof_test

import (
	"fmt"

	"github.com/zofmath/zof"
)

func ExampleNewtonRaphson() {
	res, err := zof.NewtonRaphson("x**2 - 4", 3)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Printf("root: %.6f\n", res.Root)
	// Output: root: 2.000000
}

func ExampleBisection() {
	res, err := zof.Bisection("cos(x) - x", 0, 1, zof.WithTolerance(1e-8))
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Printf("root: %.4f\n", res.Root)
	// Output: root: 0.7391
}
