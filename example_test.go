package debounce_test

import (
	"errors"
	"fmt"

	"github.com/evan-idocoding/debounce"
	"github.com/evan-idocoding/debounce/inputtest"
)

func Example() {
	// A noisy line: three high samples, then three low samples.
	pin := inputtest.NewPin(
		inputtest.High(), inputtest.High(), inputtest.High(),
		inputtest.Low(), inputtest.Low(), inputtest.Low(),
	)

	eng := debounce.New(debounce.OriginalKuhn()) // MaxCount=3, starts low
	line, err := eng.Init(pin)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := 1; i <= 6; i++ {
		_ = eng.Poll()
		fmt.Printf("tick %d: high=%v\n", i, line.IsHigh())
	}

	// Done with the line: reclaim the input for other use.
	_, _ = eng.Deinit(line)

	// Output:
	// tick 1: high=false
	// tick 2: high=false
	// tick 3: high=true
	// tick 4: high=true
	// tick 5: high=true
	// tick 6: high=false
}

func ExamplePolicy() {
	// Polling at 100Hz with a minimum debounce delay of 50ms: MaxCount=5.
	eng := debounce.New(debounce.Policy[uint8]{MaxCount: 5, InitHigh: false})

	line, err := eng.Init(inputtest.NewLevelPin(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(line.IsLow())
	// Output:
	// true
}

func ExampleDebouncer_Init_invalidPolicy() {
	// MaxCount must fit two bits below the storage width: 0x40 overflows uint8.
	eng := debounce.New(debounce.Policy[uint8]{MaxCount: 0x40})

	_, err := eng.Init(inputtest.NewLevelPin(false))
	fmt.Println(errors.Is(err, debounce.ErrInvalidPolicy))
	// Output:
	// true
}
