package httpserver

import (
	"container/list"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"quill/internal/shared/response"

	"golang.org/x/time/rate"
)

const (
	defaultLimiterCapacity = 10000
	defaultLimiterIdleTTL  = 10 * time.Minute
)

type limiterEntry struct {
	key      string
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter hands out one token bucket per client address. Buckets are
// kept in LRU order and dropped once idle or when capacity is reached.
// A nil clientLimiter allows everything.
type clientLimiter struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List
	limit    rate.Limit
	burst    int
	capacity int
	idleTTL  time.Duration
	now      func() time.Time
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = int(math.Ceil(perSecond))
	}

	// An evicted bucket must already have refilled, otherwise eviction resets a penalty.
	idleTTL := defaultLimiterIdleTTL
	if refill := time.Duration(float64(burst) / perSecond * float64(time.Second)); refill > idleTTL {
		idleTTL = refill
	}
	return &clientLimiter{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		capacity: defaultLimiterCapacity,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Allow consumes one token for key.
func (c *clientLimiter) Allow(key string) bool {
	if c == nil {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.evictIdle(now)

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*limiterEntry)
		entry.lastSeen = now
		c.order.MoveToFront(elem)
		return entry.limiter.AllowN(now, 1)
	}

	for c.order.Len() >= c.capacity {
		c.remove(c.order.Back())
	}
	entry := &limiterEntry{
		key:      key,
		limiter:  rate.NewLimiter(c.limit, c.burst),
		lastSeen: now,
	}
	c.entries[key] = c.order.PushFront(entry)
	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (c *clientLimiter) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *clientLimiter) evictIdle(now time.Time) {
	for {
		oldest := c.order.Back()
		if oldest == nil || now.Sub(oldest.Value.(*limiterEntry).lastSeen) < c.idleTTL {
			return
		}
		c.remove(oldest)
	}
}

func (c *clientLimiter) remove(elem *list.Element) {
	if elem == nil {
		return
	}
	delete(c.entries, elem.Value.(*limiterEntry).key)
	c.order.Remove(elem)
}

func (c *clientLimiter) retryAfter() string {
	seconds := int(math.Ceil(1 / float64(c.limit)))
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

// RateLimit rejects clients that exhaust their bucket with 429.
func RateLimit(limiter *clientLimiter, clients ClientResolver) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clients.Resolve(r)) {
				w.Header().Set("Retry-After", limiter.retryAfter())
				response.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
