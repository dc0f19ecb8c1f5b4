// Command sem-basic runs two tasks incrementing a shared counter under a
// mutual-exclusion semaphore, ten times each, yielding between increments
// so the two interleave -- a minimal demonstration that the semaphore
// actually serializes access.
package main

import (
	"fmt"

	"github.com/coropkg/gmpcoro"
)

func main() {
	rt, err := gmpcoro.New()
	if err != nil {
		panic(err)
	}
	defer rt.Shutdown()

	sem := rt.NewSem(1)
	counter := 0

	counterTask := func(arg any) {
		id := arg.(int)
		for i := 0; i < 10; i++ {
			sem.Wait()
			fmt.Printf("task %d: counter = %d\n", id, counter)
			counter++
			sem.Post()
			rt.Yield()
		}
		fmt.Printf("task %d done\n", id)
	}

	co1 := rt.Start("counter-1", counterTask, 1)
	co2 := rt.Start("counter-2", counterTask, 2)

	if err := rt.Wait(co1); err != nil {
		panic(err)
	}
	if err := rt.Wait(co2); err != nil {
		panic(err)
	}

	sem.Destroy()
	fmt.Printf("final count: %d\n", counter)
}
