// Package singleton demonstrates lazy single-instance initialization with
// sync.Once, the same technique the catalog registry uses.
package singleton

import (
	"context"
	"fmt"
	"sync"
)

// Settings is the shared instance the demo hands out. In a real service this
// would be something expensive or stateful: a config snapshot, a connection
// pool, a metrics registry.
type Settings struct {
	Greeting string
}

var (
	once     sync.Once
	instance *Settings
)

// Instance returns the process-wide Settings, creating it on first use.
// The sync.Once guard makes concurrent first calls safe: exactly one caller
// runs the initializer, everyone else blocks until it finishes.
func Instance() *Settings {
	once.Do(func() {
		instance = &Settings{Greeting: "hello, patternlab"}
	})
	return instance
}

// Demo requests the instance from several goroutines and shows that every
// caller received the same pointer.
func Demo(ctx context.Context) ([]string, error) {
	const callers = 4

	out := []string{
		fmt.Sprintf("singleton: requesting settings from %d goroutines", callers),
	}

	results := make(chan *Settings, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- Instance()
		}()
	}
	wg.Wait()
	close(results)

	first := Instance()
	same := true
	for s := range results {
		if s != first {
			same = false
		}
	}

	out = append(out, fmt.Sprintf("singleton: initialized once (greeting=%q)", first.Greeting))
	if !same {
		return nil, fmt.Errorf("singleton: callers observed different instances")
	}
	out = append(out, fmt.Sprintf("singleton: all %d callers received the same instance", callers))
	return out, nil
}
