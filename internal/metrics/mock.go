package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchmakingSearches int
	challengesCreated   int
	challengesExpired   int
	ratingsRecalculated int
	badgesAwarded       int
	notifSent           int
	notifFailed         int
	requestDurations    map[string][]float64
	startupTime         float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requestDurations: make(map[string][]float64),
	}
}

func (m *Mock) IncMatchmakingSearches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchmakingSearches++
}

func (m *Mock) IncChallengesCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challengesCreated++
}

func (m *Mock) AddChallengesExpired(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challengesExpired += n
}

func (m *Mock) IncRatingsRecalculated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingsRecalculated++
}

func (m *Mock) AddBadgesAwarded(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.badgesAwarded += n
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) ObserveRequestDuration(function string, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestDurations[function] = append(m.requestDurations[function], seconds)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchmakingSearches returns the number of times IncMatchmakingSearches was called.
func (m *Mock) MatchmakingSearches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchmakingSearches
}

// ChallengesCreated returns the number of times IncChallengesCreated was called.
func (m *Mock) ChallengesCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.challengesCreated
}

// ChallengesExpired returns the sum passed to AddChallengesExpired.
func (m *Mock) ChallengesExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.challengesExpired
}

// RatingsRecalculated returns the number of times IncRatingsRecalculated was called.
func (m *Mock) RatingsRecalculated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ratingsRecalculated
}

// BadgesAwarded returns the sum passed to AddBadgesAwarded.
func (m *Mock) BadgesAwarded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.badgesAwarded
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}

// RequestDurations returns the observed durations for a function.
func (m *Mock) RequestDurations(function string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.requestDurations[function]...)
}
