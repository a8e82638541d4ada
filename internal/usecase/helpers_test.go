package usecase

import (
	"fmt"
	"sync"
)

type sequenceIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n), nil
}
