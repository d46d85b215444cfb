package detector

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"botshield/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(emit EmitFunc) *Session {
	return NewSession(NewScorer(DefaultConfig()), InitialSignals{
		UserAgent: "Mozilla/5.0 Chrome/120.0 Safari/537.36",
		URL:       "https://example.com/page",
		StartedAt: time.Now(),
	}, 0, emit)
}

func TestSession_FinalizeEmitsExactlyOnce(t *testing.T) {
	var emits int32
	s := newTestSession(func(initial InitialSignals, result Result) {
		atomic.AddInt32(&emits, 1)
	})

	s.Finalize()
	s.Finalize()
	s.Finalize()

	assert.True(t, s.Finalized())
	assert.Equal(t, int32(1), atomic.LoadInt32(&emits))
}

func TestSession_ConcurrentFinalizeEmitsOnce(t *testing.T) {
	var emits int32
	s := newTestSession(func(initial InitialSignals, result Result) {
		atomic.AddInt32(&emits, 1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Finalize()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&emits))
}

func TestSession_TimerFinalizes(t *testing.T) {
	done := make(chan Result, 1)
	NewSession(NewScorer(DefaultConfig()), InitialSignals{
		UserAgent: "Mozilla/5.0 (compatible; Googlebot/2.1)",
	}, 10*time.Millisecond, func(initial InitialSignals, result Result) {
		done <- result
	})

	select {
	case result := <-done:
		assert.True(t, result.IsBot)
	case <-time.After(2 * time.Second):
		t.Fatal("session never finalized")
	}
}

func TestSession_PointerWindowBounded(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < WindowSize+5; i++ {
		s.RecordPointer(model.PointerSample{X: i, Y: i, Time: int64(i)})
	}

	window := s.Window()
	require.Len(t, window, WindowSize)

	// oldest five were dropped
	assert.Equal(t, 5, window[0].X)
	assert.Equal(t, WindowSize+4, window[len(window)-1].X)
}

func TestSession_WindowOldestFirstBeforeWrap(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 3; i++ {
		s.RecordPointer(model.PointerSample{X: i, Time: int64(i)})
	}

	window := s.Window()
	require.Len(t, window, 3)
	assert.Equal(t, 0, window[0].X)
	assert.Equal(t, 2, window[2].X)
}

func TestSession_ScoreNeverDecreases(t *testing.T) {
	s := newTestSession(nil)

	// no signals yet, everything looks missing
	early := s.Score()
	require.Greater(t, early.Score, 0)

	// human-looking evidence arrives afterwards
	s.SetFeatures(model.FeatureFlags{
		HasWebGL:          true,
		HasCanvas:         true,
		HasSessionStorage: true,
		HasLocalStorage:   true,
		HasPlugins:        true,
		HasChromeRuntime:  true,
	})
	s.SetFingerprint(model.FingerprintData{
		Fonts: []string{"Arial", "Verdana", "Times New Roman"},
	})
	times := []int64{1000, 1013, 1047, 1052, 1099, 1120, 1178, 1190}
	coords := [][2]int{{100, 200}, {130, 215}, {145, 260}, {170, 250}, {210, 310}, {205, 340}, {260, 330}, {300, 400}}
	for i, ts := range times {
		s.RecordPointer(model.PointerSample{X: coords[i][0], Y: coords[i][1], Time: ts})
	}
	for i := 0; i < 4; i++ {
		s.RecordInteraction()
	}

	late := s.Score()
	assert.GreaterOrEqual(t, late.Score, early.Score)
}

func TestSession_ScrollReversalTracking(t *testing.T) {
	s := newTestSession(nil)

	s.RecordScroll(100, 10)
	s.RecordScroll(300, 30)
	s.RecordScroll(150, 30)
	s.RecordScroll(400, 45)

	sig := s.signalsLocked()
	assert.Equal(t, 45.0, sig.Behavior.ScrollPercentage)
	assert.GreaterOrEqual(t, sig.Behavior.ScrollDirectionChanges, 2)
}

func TestSession_HoneypotPushesOverThreshold(t *testing.T) {
	s := NewSession(NewScorer(DefaultConfig()), InitialSignals{
		UserAgent: "python-requests/2.31.0 fetch",
	}, 0, nil)

	s.RecordHoneypot()

	result := s.Score()
	assert.True(t, result.IsBot)
	assert.Contains(t, result.Reasons, "honeypot interaction")
}
