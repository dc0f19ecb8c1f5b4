// Command unbalanced-load starts 1000 tasks with sharply increasing
// workloads -- the last task does 1000x the work of the first -- to
// exercise the scheduler's load-balancing policy under a deliberately
// skewed distribution, and reports the wall-clock time to finish them all.
package main

import (
	"fmt"
	"time"

	"github.com/coropkg/gmpcoro"
)

const numTasks = 1000

type taskArg struct {
	id       int
	workload int
}

func main() {
	rt, err := gmpcoro.New()
	if err != nil {
		panic(err)
	}
	defer rt.Shutdown()

	args := make([]*taskArg, numTasks)
	handles := make([]*gmpcoro.Task, numTasks)

	start := time.Now()
	for i := 0; i < numTasks; i++ {
		a := &taskArg{id: i, workload: (i + 1) * 100000}
		args[i] = a
		handles[i] = rt.Start("unbalanced", func(arg any) {
			targ := arg.(*taskArg)
			var dummy int64
			for i := 0; i < targ.workload; i++ {
				dummy += int64(i % 7)
				if i%10000 == 0 {
					rt.Yield()
				}
			}
			fmt.Printf("task %d finished, workload %d\n", targ.id, targ.workload)
		}, a)
	}

	for _, h := range handles {
		if err := rt.Wait(h); err != nil {
			panic(err)
		}
	}

	elapsed := time.Since(start)
	fmt.Println("All unbalanced tasks completed.")
	fmt.Printf("Time: %.6f s\n", elapsed.Seconds())
}
