package meeting

import (
	"sync"
	"time"

	"github.com/johnquangdev/meet-mock/internal/infrastructure/cache"
)

const (
	noticeKey = "view:notice"

	// HiddenNotice is shown briefly after the UI is hidden for a screenshot
	HiddenNotice = "UI Hidden for Screenshot. Press ESC to restore."
)

// ViewState holds the screen toggles that are not part of the meeting itself
type ViewState struct {
	mu         sync.RWMutex
	showConfig bool
	uiHidden   bool

	notices   *cache.MemoryStore
	noticeTTL time.Duration
}

// ViewSnapshot is a point-in-time copy of ViewState
type ViewSnapshot struct {
	ShowConfig bool
	UIHidden   bool
	Notice     string
	NoticeTTL  time.Duration
}

// NewViewState creates view state backed by notices for the toast message
func NewViewState(notices *cache.MemoryStore, showConfig bool, noticeTTL time.Duration) *ViewState {
	return &ViewState{
		showConfig: showConfig,
		notices:    notices,
		noticeTTL:  noticeTTL,
	}
}

// ToggleConfig flips the configuration panel and returns the new value
func (v *ViewState) ToggleConfig() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.showConfig = !v.showConfig
	return v.showConfig
}

// HideUI enters screenshot mode and raises the toast notice
func (v *ViewState) HideUI() {
	v.mu.Lock()
	v.uiHidden = true
	v.mu.Unlock()

	v.notices.Set(noticeKey, HiddenNotice, v.noticeTTL)
}

// RestoreUI leaves screenshot mode and drops any pending notice
func (v *ViewState) RestoreUI() {
	v.mu.Lock()
	v.uiHidden = false
	v.mu.Unlock()

	v.notices.Delete(noticeKey)
}

// Snapshot returns the current toggles and the live notice, if any
func (v *ViewState) Snapshot() ViewSnapshot {
	v.mu.RLock()
	snap := ViewSnapshot{
		ShowConfig: v.showConfig,
		UIHidden:   v.uiHidden,
	}
	v.mu.RUnlock()

	if notice, ok := v.notices.Get(noticeKey); ok {
		snap.Notice = notice
		snap.NoticeTTL = v.notices.TTL(noticeKey)
	}
	return snap
}
