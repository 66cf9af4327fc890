package infrastructure

import (
	"sync"
	"time"
)

// ChatDispatcher serializes work per chat so replies within one chat go
// out in arrival order, while different chats proceed concurrently.
type ChatDispatcher struct {
	mu     sync.Mutex
	queues map[int64]*chatQueue
	wg     sync.WaitGroup

	closeOnce   sync.Once
	done        chan struct{}
	cleanupDone chan struct{}
}

type chatQueue struct {
	jobs     []func()
	running  bool
	lastDone time.Time
}

func NewChatDispatcher() *ChatDispatcher {
	d := &ChatDispatcher{
		queues:      make(map[int64]*chatQueue),
		done:        make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
	go d.cleanup()
	return d
}

// Dispatch enqueues job for the given chat. Never blocks the caller.
func (d *ChatDispatcher) Dispatch(chatID int64, job func()) {
	d.mu.Lock()
	q, ok := d.queues[chatID]
	if !ok {
		q = &chatQueue{}
		d.queues[chatID] = q
	}
	q.jobs = append(q.jobs, job)
	if !q.running {
		q.running = true
		d.wg.Add(1)
		go d.drain(q)
	}
	d.mu.Unlock()
}

// Wait blocks until all in-flight work has finished. Used at shutdown
// so pending replies complete or fail cleanly.
func (d *ChatDispatcher) Wait() {
	d.wg.Wait()
}

// Close stops the background cleanup loop. Safe to call more than once.
func (d *ChatDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
}

func (d *ChatDispatcher) drain(q *chatQueue) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		if len(q.jobs) == 0 {
			q.running = false
			q.lastDone = time.Now()
			d.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		d.mu.Unlock()

		job()
	}
}

// cleanup removes queues for chats that went quiet, until Close.
func (d *ChatDispatcher) cleanup() {
	defer close(d.cleanupDone)
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			d.mu.Lock()
			now := time.Now()
			for chatID, q := range d.queues {
				if !q.running && len(q.jobs) == 0 && now.Sub(q.lastDone) > 10*time.Minute {
					delete(d.queues, chatID)
				}
			}
			d.mu.Unlock()
		case <-d.done:
			return
		}
	}
}
