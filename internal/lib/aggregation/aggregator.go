// Package aggregation keeps cumulative distance and time per position index
// and recomputes it incrementally from sparse per-segment updates.
package aggregation

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/dpup/navcore/internal/metrics"
)

// Aggregator maps index i to the distance and time of the segment ending at
// i (relative) and to the sum from index 0 through i (absolute). Index 0 is
// the zero seed. Methods are safe for concurrent use; listeners run
// synchronously after the lock is released and must not call mutators.
type Aggregator struct {
	mu       sync.Mutex
	relative map[int]DistanceAndTime
	// absolute is dense over [0, highest]
	absolute []DistanceAndTime
	highest  int

	listeners      []registeredListener
	nextListenerID int

	logger *zap.Logger
}

type registeredListener struct {
	id       int
	listener Listener
}

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// NewAggregator creates an Aggregator seeded with the zero value at index 0
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	a.reset()
	return a
}

func (a *Aggregator) reset() {
	a.relative = map[int]DistanceAndTime{0: Zero()}
	a.absolute = []DistanceAndTime{Zero()}
	a.highest = 0
}

// AddListener registers l and returns a function that unregisters it
func (a *Aggregator) AddListener(l Listener) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners = append(a.listeners, registeredListener{id: id, listener: l})
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for i, rl := range a.listeners {
			if rl.id == id {
				a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
				return
			}
		}
	}
}

// Apply merges batch into the relative entries, recomputes the absolute
// entries from the lowest index of the batch through the highest known index
// and notifies listeners with the lowest and highest index of the batch.
// Invalid batches are rejected without changing anything.
func (a *Aggregator) Apply(batch map[int]DistanceAndTime) error {
	return a.apply("apply", batch)
}

// Add is Apply for newly calculated segments
func (a *Aggregator) Add(batch map[int]DistanceAndTime) error {
	return a.apply("add", batch)
}

// Update is Apply for recalculated segments
func (a *Aggregator) Update(batch map[int]DistanceAndTime) error {
	return a.apply("update", batch)
}

func (a *Aggregator) apply(operation string, batch map[int]DistanceAndTime) error {
	indices := make([]int, 0, len(batch))
	for index := range batch {
		indices = append(indices, index)
	}
	first, last, err := a.validate(operation, indices)
	if err != nil {
		return err
	}

	a.mu.Lock()
	for index, value := range batch {
		a.relative[index] = clone(value)
	}
	if last > a.highest {
		a.highest = last
	}
	recomputed := a.recompute(first)
	listeners := a.snapshotListeners()
	a.mu.Unlock()

	a.logger.Debug("Applied distance and time batch",
		zap.String("operation", operation),
		zap.Int("first_index", first),
		zap.Int("last_index", last),
		zap.Int("recomputed", recomputed))
	metrics.AggregationBatches.WithLabelValues(operation, metrics.ResultApplied).Inc()

	a.notify(listeners, first, last)
	return nil
}

// Remove drops the relative entries at indices and recomputes from the
// lowest of them. The highest index shrinks to the highest remaining entry.
func (a *Aggregator) Remove(indices []int) error {
	first, last, err := a.validate("remove", indices)
	if err != nil {
		return err
	}

	a.mu.Lock()
	for _, index := range indices {
		delete(a.relative, index)
	}
	a.highest = 0
	for index := range a.relative {
		if index > a.highest {
			a.highest = index
		}
	}
	if len(a.absolute) > a.highest+1 {
		a.absolute = a.absolute[:a.highest+1]
	}
	recomputed := a.recompute(first)
	listeners := a.snapshotListeners()
	a.mu.Unlock()

	a.logger.Debug("Removed distance and time entries",
		zap.Int("first_index", first),
		zap.Int("last_index", last),
		zap.Int("recomputed", recomputed))
	metrics.AggregationBatches.WithLabelValues("remove", metrics.ResultApplied).Inc()

	a.notify(listeners, first, last)
	return nil
}

// Clear reseeds the aggregator and notifies listeners with (0, 0)
func (a *Aggregator) Clear() {
	a.mu.Lock()
	a.reset()
	listeners := a.snapshotListeners()
	a.mu.Unlock()

	a.logger.Debug("Cleared distance and time entries")
	a.notify(listeners, 0, 0)
}

func (a *Aggregator) validate(operation string, indices []int) (int, int, error) {
	if len(indices) == 0 {
		return 0, 0, a.reject(operation, ErrEmptyBatch)
	}
	first, last := indices[0], indices[0]
	for _, index := range indices {
		if index <= 0 {
			return 0, 0, a.reject(operation, fmt.Errorf("%w: %d", ErrReservedIndex, index))
		}
		if index < first {
			first = index
		}
		if index > last {
			last = index
		}
	}
	return first, last, nil
}

func (a *Aggregator) reject(operation string, err error) error {
	a.logger.Warn("Rejected distance and time batch", zap.String("operation", operation), zap.Error(err))
	metrics.AggregationBatches.WithLabelValues(operation, metrics.ResultRejected).Inc()
	return err
}

// recompute rebuilds the absolute entries from index `from` through highest.
// Callers hold the lock.
func (a *Aggregator) recompute(from int) int {
	start := from
	if start > len(a.absolute) {
		start = len(a.absolute)
	}
	a.absolute = a.absolute[:start]
	running := a.absolute[start-1]
	for index := start; index <= a.highest; index++ {
		// a missing entry adds nothing and carries the running total forward
		running = running.Add(a.relative[index])
		a.absolute = append(a.absolute, running)
	}

	count := a.highest - start + 1
	if count > 0 {
		metrics.AggregationIndicesRecomputed.Add(float64(count))
		metrics.AggregationRecomputeSpan.Observe(float64(count))
	}
	return count
}

func (a *Aggregator) snapshotListeners() []Listener {
	listeners := make([]Listener, len(a.listeners))
	for i, rl := range a.listeners {
		listeners[i] = rl.listener
	}
	return listeners
}

func (a *Aggregator) notify(listeners []Listener, first, last int) {
	for _, l := range listeners {
		l(first, last)
	}
	metrics.AggregationNotifications.Add(float64(len(listeners)))
}

// TotalDistanceAndTime returns the absolute entry at the highest index
func (a *Aggregator) TotalDistanceAndTime() DistanceAndTime {
	a.mu.Lock()
	defer a.mu.Unlock()
	return clone(a.absolute[a.highest])
}

// HighestIndex returns the highest index with a relative entry
func (a *Aggregator) HighestIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.highest
}

// Relative returns the relative entry at index
func (a *Aggregator) Relative(index int) (DistanceAndTime, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	value, ok := a.relative[index]
	if !ok {
		return DistanceAndTime{}, false
	}
	return clone(value), true
}

// Absolute returns the cumulative entry at index
func (a *Aggregator) Absolute(index int) (DistanceAndTime, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index > a.highest {
		return DistanceAndTime{}, false
	}
	return clone(a.absolute[index]), true
}

// DistancesFromStart returns the cumulative distances for every index from
// start through end. Indices past the highest repeat the total; negative
// indices yield 0.
func (a *Aggregator) DistancesFromStart(start, end int) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if end < start {
		return []float64{}
	}
	result := make([]float64, 0, end-start+1)
	for index := start; index <= end; index++ {
		result = append(result, a.carried(index).DistanceOrZero())
	}
	return result
}

// TimesFromStart is DistancesFromStart for the cumulative times
func (a *Aggregator) TimesFromStart(start, end int) []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if end < start {
		return []int64{}
	}
	result := make([]int64, 0, end-start+1)
	for index := start; index <= end; index++ {
		result = append(result, a.carried(index).TimeOrZero())
	}
	return result
}

func (a *Aggregator) carried(index int) DistanceAndTime {
	if index < 0 {
		return DistanceAndTime{}
	}
	if index > a.highest {
		index = a.highest
	}
	return a.absolute[index]
}

// DistancesAt returns the cumulative distance per index, 0 where unknown
func (a *Aggregator) DistancesAt(indices []int) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := make([]float64, len(indices))
	for i, index := range indices {
		if index >= 0 && index <= a.highest {
			result[i] = a.absolute[index].DistanceOrZero()
		}
	}
	return result
}

// TimesAt returns the cumulative time per index, 0 where unknown
func (a *Aggregator) TimesAt(indices []int) []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := make([]int64, len(indices))
	for i, index := range indices {
		if index >= 0 && index <= a.highest {
			result[i] = a.absolute[index].TimeOrZero()
		}
	}
	return result
}

// Max returns the entry at the highest index of batch
func Max(batch map[int]DistanceAndTime) (DistanceAndTime, bool) {
	if len(batch) == 0 {
		return DistanceAndTime{}, false
	}
	indices := make([]int, 0, len(batch))
	for index := range batch {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return clone(batch[indices[len(indices)-1]]), true
}

func clone(d DistanceAndTime) DistanceAndTime {
	var result DistanceAndTime
	if d.Distance != nil {
		distance := *d.Distance
		result.Distance = &distance
	}
	if d.Time != nil {
		millis := *d.Time
		result.Time = &millis
	}
	return result
}
