package mapper

import (
	"fmt"
	"sync"
)

var (
	mu      sync.RWMutex
	mappers = map[string]Mapper{
		GoJSON{}.Name():  GoJSON{},
		Msgpack{}.Name(): Msgpack{},
	}
	def Mapper = GoJSON{}
)

// Register makes a mapper selectable by name. Registering a name twice
// replaces the previous mapper, matching how applications override the
// built-in JSON mapper with a tuned one.
func Register(m Mapper) {
	mu.Lock()
	defer mu.Unlock()
	mappers[m.Name()] = m
}

// Get returns the mapper registered under name.
func Get(name string) (Mapper, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := mappers[name]
	return m, ok
}

// Default returns the process-wide mapper used by adapter bases.
func Default() Mapper {
	mu.RLock()
	defer mu.RUnlock()
	return def
}

// SetDefault selects the process-wide mapper by registered name.
func SetDefault(name string) error {
	mu.Lock()
	defer mu.Unlock()
	m, ok := mappers[name]
	if !ok {
		return fmt.Errorf("mapper: no mapper registered under %q", name)
	}
	def = m
	return nil
}
