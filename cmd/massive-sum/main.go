// Command massive-sum starts 10000 tasks, each summing the squares of a
// small disjoint range of integers and yielding every 10 iterations, then
// joins all of them and adds up their partial sums.
package main

import (
	"fmt"

	"github.com/coropkg/gmpcoro"
)

const (
	numTasks = 10000
	rangeLen = 10
)

type taskArg struct {
	start, end int64
	result     int64
}

func main() {
	rt, err := gmpcoro.New()
	if err != nil {
		panic(err)
	}
	defer rt.Shutdown()

	args := make([]*taskArg, numTasks)
	handles := make([]*gmpcoro.Task, numTasks)

	for i := 0; i < numTasks; i++ {
		a := &taskArg{
			start: int64(i)*rangeLen + 1,
			end:   int64(i+1) * rangeLen,
		}
		args[i] = a
		handles[i] = rt.Start("massive", func(arg any) {
			targ := arg.(*taskArg)
			var sum int64
			for i := targ.start; i <= targ.end; i++ {
				sum += i * i
				if i%10 == 0 {
					rt.Yield()
				}
			}
			targ.result = sum
		}, a)
	}

	var total int64
	for i := 0; i < numTasks; i++ {
		if err := rt.Wait(handles[i]); err != nil {
			panic(err)
		}
		total += args[i].result
	}

	fmt.Printf("Total sum = %d\n", total)
}
