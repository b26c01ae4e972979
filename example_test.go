package fpsemi_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/petrijr/fpsemi"
)

func ExampleCongruence_Equals() {
	ctx := context.Background()

	pres, err := fpsemi.NewPresentation(2,
		[]fpsemi.Relation{
			fpsemi.Rel(fpsemi.W(0, 0), fpsemi.W(0)),
			fpsemi.Rel(fpsemi.W(1, 1), fpsemi.W(1)),
			fpsemi.Rel(fpsemi.W(1, 0), fpsemi.W(0, 1)),
		},
		nil,
	)
	if err != nil {
		panic(err)
	}

	cong := fpsemi.NewCongruence(pres)
	fmt.Println(cong.Equals(ctx, fpsemi.W(0, 1), fpsemi.W(1, 0)))
	fmt.Println(cong.Equals(ctx, fpsemi.W(0), fpsemi.W(1)))
	// Output:
	// true
	// false
}

func ExampleLoadPresentation() {
	ctx := context.Background()

	pres, err := fpsemi.LoadPresentation(strings.NewReader(`
generators: [a, b]
relations:
  - [aa, a]
  - [bb, b]
  - [ba, ab]
`))
	if err != nil {
		panic(err)
	}

	n, err := fpsemi.NewCongruence(pres).NrClasses(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output:
	// 4
}
