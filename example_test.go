package bitmap_test

import (
	"fmt"

	bitmap "github.com/raistlic/go-bitmap"
)

func ExampleNew() {
	words := []string{"rank", "and", "select", "in", "constant", "time"}
	m := bitmap.New(words, func(w string) bool { return len(w) > 4 })

	fmt.Println(m.CountOnes())   // long words
	fmt.Println(m.SelectOne(0))  // first long word
	fmt.Println(m.RankZero(3))   // short words among the first four
	// Output:
	// 2
	// 2
	// 3
}

func ExampleBuilder() {
	b := bitmap.NewBuilder(8)
	m := b.Set(1).Set(4).Set(6).Build()

	fmt.Println(m.RankOne(6))
	fmt.Println(m.SelectOne(2))
	fmt.Println(m.SelectOne(3))
	// Output:
	// 3
	// 6
	// -1
}
