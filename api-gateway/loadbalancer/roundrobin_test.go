package loadbalancer

import (
	"sync"
	"testing"
)

func TestRoundRobin_Next(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8082", "http://b:8082", "http://c:8082"})

	got := []string{rr.Next(), rr.Next(), rr.Next(), rr.Next()}
	want := []string{"http://a:8082", "http://b:8082", "http://c:8082", "http://a:8082"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Next() call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoundRobin_Empty(t *testing.T) {
	rr := NewRoundRobin(nil)

	if server := rr.Next(); server != "" {
		t.Errorf("Next() on empty pool = %q, want empty", server)
	}
}

func TestRoundRobin_RemoveServer(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8082", "http://b:8082"})
	rr.Next()
	rr.Next()

	rr.RemoveServer("http://b:8082")

	servers := rr.GetServers()
	if len(servers) != 1 || servers[0] != "http://a:8082" {
		t.Errorf("GetServers() = %v, want [http://a:8082]", servers)
	}

	// Index past the end of the shrunk pool must wrap
	if server := rr.Next(); server != "http://a:8082" {
		t.Errorf("Next() after removal = %q, want http://a:8082", server)
	}
}

func TestRoundRobin_ConcurrentNext(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8082", "http://b:8082"})

	var wg sync.WaitGroup
	counts := make(map[string]int)
	var mu sync.Mutex

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			server := rr.Next()
			mu.Lock()
			counts[server]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counts["http://a:8082"] != 50 || counts["http://b:8082"] != 50 {
		t.Errorf("uneven distribution: %v", counts)
	}
}
