package index

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slaskinventory_records_loaded",
		Help: "Number of records in the resident source",
	})
	sourceSwaps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskinventory_source_swaps_total",
		Help: "The total number of source replacements",
	})
)

// Store holds the current Source. Readers always get a complete record set,
// a reload swaps the whole pointer.
type Store struct {
	current  atomic.Pointer[Source]
	mu       sync.Mutex
	handlers []SourceChangeHandler
}

func NewStore(records []types.VehicleRecord) *Store {
	s := &Store{}
	s.Swap(records)
	return s
}

func (s *Store) Current() *Source {
	return s.current.Load()
}

func (s *Store) Swap(records []types.VehicleRecord) *Source {
	src := NewSource(records)
	s.current.Store(src)
	recordsLoaded.Set(float64(len(records)))
	sourceSwaps.Inc()
	log.Printf("source %s loaded with %d records", src.Version, len(records))

	s.mu.Lock()
	handlers := s.handlers
	s.mu.Unlock()
	for _, h := range handlers {
		h.SourceChanged(src)
	}
	return src
}

func (s *Store) AddChangeHandler(handler SourceChangeHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// HandleRecords implements the messaging record handler.
func (s *Store) HandleRecords(records []types.VehicleRecord) {
	s.Swap(records)
}
