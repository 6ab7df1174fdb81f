package ripple

import (
	"fmt"
)

func ExampleSignal() {
	count := NewSignal(0)
	fmt.Println(count.Read())

	count.Write(10)
	fmt.Println(count.Read())

	// Output:
	// 0
	// 10
}

// ExampleComputed shows pull-based recomputation: nothing computes until the
// first read, and each read pulls exactly the recomputation it needs right
// before printing its result.
func ExampleComputed() {
	count := NewSignal(1)
	double := NewComputed(func() int {
		fmt.Println("doubling")
		return count.Read() * 2
	})
	plustwo := NewComputed(func() int {
		fmt.Println("adding")
		return double.Read() + 2
	})

	fmt.Println(count.Read())
	fmt.Println(double.Read())
	fmt.Println(plustwo.Read())

	count.Write(10)
	fmt.Println(count.Read())
	fmt.Println(double.Read())
	fmt.Println(plustwo.Read())

	// Output:
	// 1
	// doubling
	// 2
	// adding
	// 4
	// 10
	// doubling
	// 20
	// adding
	// 22
}

func ExampleEffect() {
	count := NewSignal(0)

	NewEffect(func() {
		fmt.Println("count is", count.Read())
	})

	count.Write(10)

	// Output:
	// count is 0
	// count is 10
}
