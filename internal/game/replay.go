package game

import (
	"sync"

	"go.uber.org/zap"
)

// Replay is the sequence of views a match went through, one per successful
// operation, with a cursor for stepping through them.
type Replay struct {
	MatchID string

	mu     sync.RWMutex
	frames []*MatchView
	cursor int
}

func NewReplay(matchID string) *Replay {
	return &Replay{MatchID: matchID}
}

// Append adds a frame at the end.
func (r *Replay) Append(view *MatchView) {
	r.mu.Lock()
	r.frames = append(r.frames, view)
	r.mu.Unlock()
}

// Len is the number of frames.
func (r *Replay) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.frames)
}

// Frame returns frame i, or nil when i is out of range.
func (r *Replay) Frame(i int) *MatchView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.frames) {
		return nil
	}
	return r.frames[i]
}

// Cursor is the index of the frame Forward would return next.
func (r *Replay) Cursor() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cursor
}

// Rewind moves the cursor back to the first frame.
func (r *Replay) Rewind() {
	r.mu.Lock()
	r.cursor = 0
	r.mu.Unlock()
}

// Forward returns the frame under the cursor and advances past it.
func (r *Replay) Forward() *MatchView {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cursor >= len(r.frames) {
		return nil
	}
	r.cursor++
	return r.frames[r.cursor-1]
}

// Back steps the cursor back one frame and returns that frame.
func (r *Replay) Back() *MatchView {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cursor == 0 || len(r.frames) == 0 {
		return nil
	}
	r.cursor--
	return r.frames[r.cursor]
}

// Seek moves the cursor by delta frames, clamped to the recording, and
// returns the frame it lands on.
func (r *Replay) Seek(delta int) *MatchView {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil
	}
	r.cursor = min(max(r.cursor+delta, 0), len(r.frames)-1)
	return r.frames[r.cursor]
}

type recording struct {
	replay *Replay
	live   bool
}

// ReplayRecorder keeps a replay per match until the match is deleted.
// Recording stops by itself once a match reaches FINISHED.
type ReplayRecorder struct {
	logger *zap.Logger
	mu     sync.RWMutex
	byID   map[string]*recording
}

func NewReplayRecorder(logger *zap.Logger) *ReplayRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReplayRecorder{logger: logger, byID: make(map[string]*recording)}
}

// Begin starts a fresh replay for matchID, discarding any earlier one.
func (rr *ReplayRecorder) Begin(matchID string) {
	rr.mu.Lock()
	rr.byID[matchID] = &recording{replay: NewReplay(matchID), live: true}
	rr.mu.Unlock()
	rr.logger.Debug("replay started", zap.String("match_id", matchID))
}

// Stop keeps the replay but ignores further frames.
func (rr *ReplayRecorder) Stop(matchID string) {
	rr.mu.Lock()
	if rec, ok := rr.byID[matchID]; ok {
		rec.live = false
	}
	rr.mu.Unlock()
}

// Record appends view to its match's replay when that replay is live.
func (rr *ReplayRecorder) Record(view *MatchView) {
	if view == nil {
		return
	}
	rr.mu.Lock()
	rec, ok := rr.byID[view.ID]
	if !ok || !rec.live {
		rr.mu.Unlock()
		return
	}
	if view.Lifecycle == LifecycleFinished.String() {
		rec.live = false
	}
	rr.mu.Unlock()

	rec.replay.Append(view)
	rr.logger.Debug("replay frame recorded",
		zap.String("match_id", view.ID),
		zap.Int("frames", rec.replay.Len()),
		zap.Bool("final", !rr.Recording(view.ID)),
	)
}

// Replay returns the replay of matchID.
func (rr *ReplayRecorder) Replay(matchID string) (*Replay, bool) {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	rec, ok := rr.byID[matchID]
	if !ok {
		return nil, false
	}
	return rec.replay, true
}

// Recording reports whether frames for matchID are still being kept.
func (rr *ReplayRecorder) Recording(matchID string) bool {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	rec, ok := rr.byID[matchID]
	return ok && rec.live
}

// Forget drops the replay of matchID.
func (rr *ReplayRecorder) Forget(matchID string) {
	rr.mu.Lock()
	delete(rr.byID, matchID)
	rr.mu.Unlock()
	rr.logger.Debug("replay dropped", zap.String("match_id", matchID))
}
