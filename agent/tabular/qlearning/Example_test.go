package qlearning_test

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
)

func Example() {
	q, err := qlearning.New[string]([]string{"None", "forward"},
		qlearning.Config{LearningRate: 1, InitialValue: 1000})
	if err != nil {
		panic(err)
	}

	a, _ := q.SelectAction("A")
	fmt.Println(a)

	q.Update("A", "forward", "B", 10)
	values, _ := q.Values("A")
	fmt.Println(values)

	// forward is now below the untried None
	a, _ = q.SelectAction("A")
	fmt.Println(a)

	// Output:
	// None
	// [1000 10]
	// None
}
