// Package cache хранит сериализованные заказы по строковому ключу.
// Значения кэша не разбираются: сервис сам кодирует заказ и сам же его читает.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// janitorInterval - как часто фоновая очистка выбрасывает просроченные заказы.
const janitorInterval = 2 * time.Minute

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// LRUCache - кэш заказов в памяти одного экземпляра. При переполнении
// вытесняется заказ, который дольше всех не читали; просроченный не отдается.
type LRUCache struct {
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	order *list.List // спереди недавно прочитанные
	items map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if e.expired(time.Now()) {
		c.remove(el)
		return nil, false
	}
	c.order.MoveToFront(el)
	return e.value, true
}

// Set перезаписывает заказ и продлевает ему TTL.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.value, e.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start запускает очистку просроченных записей до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close ничего не освобождает: janitor останавливается вместе с ctx из Start.
func (c *LRUCache) Close() error {
	return nil
}

func (c *LRUCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*entry).expired(now) {
			c.remove(el)
		}
		el = prev
	}
}

func (c *LRUCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
