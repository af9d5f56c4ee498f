package service

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// OrderNumbers issues numbers of the form ORD-<unix millis>-<000..999>.
// Two consecutive numbers from one generator never collide; the unique
// index on orders.order_number covers separate processes.
type OrderNumbers struct {
	mu   sync.Mutex
	now  func() time.Time
	rand func(n int) int
	last string
}

func NewOrderNumbers() *OrderNumbers {
	return &OrderNumbers{now: time.Now, rand: rand.IntN}
}

func (g *OrderNumbers) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	suffix := g.rand(1000)
	number := formatOrderNumber(ms, suffix)
	if number == g.last {
		number = formatOrderNumber(ms, (suffix+1)%1000)
	}
	g.last = number
	return number
}

func formatOrderNumber(ms int64, suffix int) string {
	return fmt.Sprintf("ORD-%d-%03d", ms, suffix)
}
