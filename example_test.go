package coro_test

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/yieldpoint/coro"
)

func ExampleCoroutine() {
	c := coro.New(func(h *coro.Handle[int, int], v int) int {
		doubled := h.Yield(v * 2)
		tripled := h.Yield(doubled * 3)
		return tripled + 1
	})

	st, _ := c.ResumeWith(1)
	fmt.Println(st)
	st, _ = c.ResumeWith(10)
	fmt.Println(st)
	st, _ = c.ResumeWith(100)
	fmt.Println(st)
	// Output:
	// Yield(2)
	// Yield(30)
	// Complete(101)
}

func ExampleRun() {
	c := coro.New(func(h *coro.Handle[string, string], greeting string) string {
		name := h.Yield(greeting + ", who's there?")
		return "hello " + name
	})

	result, _ := coro.Run(c, "knock knock", func(question string) string {
		fmt.Println(question)
		return "gopher"
	})
	fmt.Println(result)
	// Output:
	// knock knock, who's there?
	// hello gopher
}

func ExampleGenerator() {
	g := coro.NewGenerator(func(h *coro.Handle[int, struct{}]) string {
		for i := 1; i <= 3; i++ {
			h.Yield(i * i)
		}
		return "done"
	})

	for {
		st, err := g.Resume()
		if err != nil {
			fmt.Println(err)
			return
		}
		if v, ok := st.Yielded(); ok {
			fmt.Println(v)
			continue
		}
		r, _ := st.Completed()
		fmt.Println(r)
		return
	}
	// Output:
	// 1
	// 4
	// 9
	// done
}

// Pacing sits entirely on the caller's side: the generator body knows nothing
// about time, the driving loop decides when each step runs.
func ExampleGenerator_paced() {
	lim := rate.NewLimiter(rate.Every(time.Millisecond), 1)
	g := coro.NewGenerator(func(h *coro.Handle[int, struct{}]) int {
		total := 0
		for i := 1; i <= 3; i++ {
			h.Yield(i)
			total += i
		}
		return total
	})

	ctx := context.Background()
	for {
		if err := lim.Wait(ctx); err != nil {
			fmt.Println(err)
			return
		}
		st, err := g.Resume()
		if err != nil {
			fmt.Println(err)
			return
		}
		if v, ok := st.Yielded(); ok {
			fmt.Println("tick", v)
			continue
		}
		total, _ := st.Completed()
		fmt.Println("total", total)
		return
	}
	// Output:
	// tick 1
	// tick 2
	// tick 3
	// total 6
}

func ExampleCoroutine_Stop() {
	c := coro.New(func(h *coro.Handle[string, struct{}], _ struct{}) struct{} {
		defer fmt.Println("released")
		h.Yield("acquired")
		h.Yield("never reached")
		return struct{}{}
	})

	st, _ := c.ResumeWith(struct{}{})
	v, _ := st.Yielded()
	fmt.Println(v)

	c.Stop()
	fmt.Println("done:", c.Done())
	// Output:
	// acquired
	// released
	// done: true
}
