// Command matrix-transpose transposes a 512x512 matrix across 16
// cooperating tasks, each owning a disjoint band of rows, then verifies the
// result.
package main

import (
	"fmt"

	"github.com/coropkg/gmpcoro"
)

const (
	numTasks = 16
	size     = 512
)

var (
	a [size][size]int
	b [size][size]int
)

type rowRange struct {
	start, end int
}

func main() {
	rt, err := gmpcoro.New()
	if err != nil {
		panic(err)
	}
	defer rt.Shutdown()

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a[i][j] = i*size + j
		}
	}

	rowsPerTask := size / numTasks
	handles := make([]*gmpcoro.Task, numTasks)
	for i := 0; i < numTasks; i++ {
		rr := rowRange{start: i * rowsPerTask, end: (i + 1) * rowsPerTask}
		handles[i] = rt.Start("transpose", func(arg any) {
			r := arg.(rowRange)
			for i := r.start; i < r.end; i++ {
				for j := 0; j < size; j++ {
					b[j][i] = a[i][j]
					if (i*size+j)%50000 == 0 {
						rt.Yield()
					}
				}
			}
		}, rr)
	}

	for _, h := range handles {
		if err := rt.Wait(h); err != nil {
			panic(err)
		}
	}

	fmt.Println("Matrix transpose done.")

	passed := true
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if b[j][i] != a[i][j] {
				passed = false
			}
		}
	}
	if passed {
		fmt.Println("Transpose PASSED")
	} else {
		fmt.Println("Transpose FAILED")
	}
}
