package common

import (
	"sync"
	"testing"
	"time"
)

func TestQueueHandlerChunks(t *testing.T) {
	mu := sync.Mutex{}
	chunks := make([][]int, 0)
	q := NewQueueHandler(func(items []int) {
		mu.Lock()
		defer mu.Unlock()
		chunks = append(chunks, append([]int(nil), items...))
	}, 2, time.Hour)
	q.Add(1, 2, 3, 4, 5)
	q.Close()

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[2]) != 1 || chunks[2][0] != 5 {
		t.Errorf("Expected last chunk [5], got %v", chunks[2])
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after close, got %d", q.Len())
	}
}

func TestQueueHandlerProcessesOnTick(t *testing.T) {
	done := make(chan []string, 1)
	q := NewQueueHandler(func(items []string) {
		done <- items
	}, 10, 10*time.Millisecond)
	defer q.Close()
	q.Add("a")
	select {
	case items := <-done:
		if len(items) != 1 || items[0] != "a" {
			t.Errorf("Expected [a], got %v", items)
		}
	case <-time.After(2 * time.Second):
		t.Errorf("Expected the queue to be processed")
	}
}

func TestQueueHandlerCloseTwice(t *testing.T) {
	q := NewQueueHandler(func(items []int) {}, 1, time.Hour)
	q.Close()
	q.Close()
}
