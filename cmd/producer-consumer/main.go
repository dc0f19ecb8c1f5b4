// Command producer-consumer runs 400 producers and 400 consumers around a
// 10-slot ring buffer, synchronized with three semaphores (empty slots,
// full slots, and a mutex over the buffer itself), and reports the final
// buffer occupancy -- which should always settle back to zero.
package main

import (
	"fmt"

	"github.com/coropkg/gmpcoro"
)

const (
	bufSize    = 10
	produceQty = 100
	numProducers = 400
	numConsumers = 400
)

var (
	buffer     [bufSize]int
	head, tail int
	count      int
)

func put(val int) {
	buffer[tail] = val
	tail = (tail + 1) % bufSize
	count++
}

func get() int {
	val := buffer[head]
	head = (head + 1) % bufSize
	count--
	return val
}

func main() {
	rt, err := gmpcoro.New()
	if err != nil {
		panic(err)
	}
	defer rt.Shutdown()

	semEmpty := rt.NewSem(bufSize)
	semFull := rt.NewSem(0)
	semMutex := rt.NewSem(1)

	producers := make([]*gmpcoro.Task, numProducers)
	consumers := make([]*gmpcoro.Task, numConsumers)

	for i := 0; i < numProducers; i++ {
		id := i
		producers[i] = rt.Start(fmt.Sprintf("producer-%d", id), func(any) {
			for i := 0; i < produceQty; i++ {
				semEmpty.Wait()
				semMutex.Wait()
				put(id*1000 + i)
				semMutex.Post()
				semFull.Post()
				rt.Yield()
			}
		}, nil)
	}

	for i := 0; i < numConsumers; i++ {
		id := i
		consumers[i] = rt.Start(fmt.Sprintf("consumer-%d", id), func(any) {
			for i := 0; i < produceQty*numProducers/numConsumers; i++ {
				semFull.Wait()
				semMutex.Wait()
				get()
				semMutex.Post()
				semEmpty.Post()
				rt.Yield()
			}
		}, nil)
	}

	for _, h := range producers {
		if err := rt.Wait(h); err != nil {
			panic(err)
		}
	}
	for _, h := range consumers {
		if err := rt.Wait(h); err != nil {
			panic(err)
		}
	}

	semEmpty.Destroy()
	semFull.Destroy()
	semMutex.Destroy()

	fmt.Printf("Finished. Final buffer count = %d\n", count)
}
