package mocks

import (
	"sync"

	"github.com/export9/export9-server/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Queued values are returned in order; when the queue is empty it
// falls back to deterministic defaults.
type MockRandom struct {
	mu          sync.Mutex
	intnQueue   []int
	stringQueue []string
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueIntn queues values to be returned by subsequent Intn calls
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnQueue = append(r.intnQueue, values...)
}

// QueueString queues values to be returned by subsequent String calls
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stringQueue = append(r.stringQueue, values...)
}

// Intn returns the next queued value modulo n, or 0 when the queue is empty
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 {
		return 0
	}
	if len(r.intnQueue) == 0 {
		return 0
	}
	v := r.intnQueue[0]
	r.intnQueue = r.intnQueue[1:]
	return v % n
}

// String returns the next queued string, or a string of the alphabet's
// first character when the queue is empty
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stringQueue) > 0 {
		v := r.stringQueue[0]
		r.stringQueue = r.stringQueue[1:]
		return v
	}
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[0]
	}
	return string(result)
}

// Shuffle consumes Intn values to drive a Fisher-Yates shuffle. With an
// empty queue every Intn returns 0, which rotates the slice predictably.
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
