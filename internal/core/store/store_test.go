package store

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

func TestStore_DispatchUpdatesState(t *testing.T) {
	s := New(zerolog.Nop())

	s.Dispatch(domain.Event{Type: domain.EventAuthenticatedSuccess})

	if got := s.State(); !got.IsAuthenticated {
		t.Fatalf("expected authenticated state, got %+v", got)
	}
}

func TestStore_WatchersSeeSnapshots(t *testing.T) {
	s := New(zerolog.Nop())

	var snaps []domain.Session
	s.Watch(func(snap domain.Session) {
		snaps = append(snaps, snap)
	})

	s.Dispatch(domain.Event{Type: domain.EventLoading})
	s.Dispatch(domain.Event{Type: domain.EventAuthenticatedSuccess})

	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if !snaps[0].IsLoading {
		t.Fatalf("first snapshot should be loading, got %+v", snaps[0])
	}
	if !snaps[1].IsAuthenticated || snaps[1].IsLoading {
		t.Fatalf("second snapshot should be authenticated, got %+v", snaps[1])
	}
}

func TestStore_HooksSeeRawEvents(t *testing.T) {
	s := New(zerolog.Nop())

	var seen []domain.EventType
	s.OnDispatch(func(ev domain.Event) {
		seen = append(seen, ev.Type)
	})

	s.Dispatch(domain.Event{Type: domain.EventLoading})
	s.Dispatch(domain.Event{Type: domain.EventLogout})

	if len(seen) != 2 || seen[0] != domain.EventLoading || seen[1] != domain.EventLogout {
		t.Fatalf("unexpected hook events: %v", seen)
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(domain.Event{Type: domain.EventLoading})
			s.Dispatch(domain.Event{Type: domain.EventAuthenticatedSuccess})
		}()
	}
	wg.Wait()

	if got := s.State(); !got.IsAuthenticated {
		t.Fatalf("expected authenticated state after concurrent dispatch, got %+v", got)
	}
}
