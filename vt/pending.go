package vt

import "time"

// PendingMode brackets a burst of updates between a synchronized-output
// start and stop marker (CSI ?2026h/l or DCS =1s/=2s ST) so Screen can
// suppress intermediate repaints, per spec.md §4.8. Besides closing on
// the stop marker, it also drains on time and buffered-size bounds, so it
// does not depend on the writer ever sending a matching stop: a client
// that starts pending mode and crashes must not wedge rendering forever.
type PendingMode struct {
	active       bool
	activatedAt  time.Time
	waitTime     time.Duration
	token        uint64
	nextToken    uint64
	escCodeStart int // buffer offset where the activating sequence began
}

// NewPendingMode creates a controller whose drain deadline is waitTime
// after activation (spec.md's PENDING_WAIT_TIME, from Config).
func NewPendingMode(waitTime time.Duration) *PendingMode {
	return &PendingMode{waitTime: waitTime}
}

// Active reports whether a synchronized-update window is currently open.
func (m *PendingMode) Active() bool { return m.active }

// Start opens a pending window at offset (the buffer position where the
// activating sequence began, recorded so ParserCore can report how much
// input is bottled up), calling Screen.PauseRendering(true, token) to let
// Screen suppress intermediate repaints. now is the injected Clock's
// current time, not time.Now(), so tests can control deadlines exactly.
func (m *PendingMode) Start(screen Screen, now time.Time, offset int) {
	m.active = true
	m.activatedAt = now
	m.escCodeStart = offset
	m.nextToken++
	m.token = m.nextToken
	screen.PauseRendering(true, m.token)
}

// Stop closes the pending window normally (the stop marker was seen),
// calling Screen.PauseRendering(false, token) so Screen resumes normal
// repaint scheduling. stopWithoutStart (spec.md's ErrPendingStopWithoutStart)
// is reported by the caller when Stop is invoked while !Active.
func (m *PendingMode) Stop(screen Screen) {
	if !m.active {
		return
	}
	screen.PauseRendering(false, m.token)
	m.active = false
}

// ShouldDrain reports whether the pending window has exceeded one of its
// two bounds: PENDING_WAIT_TIME has elapsed since Start, or the amount of
// input buffered since activation (bufferedSinceStart, in bytes) exceeds
// a size the caller considers excessive. Either bound forces a drain
// (Stop as if the client had sent the stop marker) even though no
// terminator ever arrived — spec.md §4.8's "must not wedge forever"
// guarantee.
func (m *PendingMode) ShouldDrain(now time.Time, bufferedSinceStart int, maxBuffered int) bool {
	if !m.active {
		return false
	}
	if now.Sub(m.activatedAt) >= m.waitTime {
		return true
	}
	return bufferedSinceStart > maxBuffered
}

// ActivatedAt, WaitTime, and StartOffset expose the fields ParseReport
// surfaces to callers (spec.md §4.9's pending_activated_at/pending_wait_time).
func (m *PendingMode) ActivatedAt() time.Time { return m.activatedAt }
func (m *PendingMode) WaitTime() time.Duration { return m.waitTime }
func (m *PendingMode) StartOffset() int        { return m.escCodeStart }
