package virtuallist

// PullDistance is the pull length, in layout units, that fully arms a refresh.
const PullDistance float32 = 100

// RefreshPhase is the state of the pull-to-refresh gesture.
type RefreshPhase int

const (
	// RefreshIdle means no pull is in progress.
	RefreshIdle RefreshPhase = iota
	// RefreshPulling means the user is pulling but has not reached PullDistance.
	RefreshPulling
	// RefreshReady means the pull reached PullDistance; StartRefresh will succeed.
	RefreshReady
	// RefreshRefreshing means a refresh is running until EndRefresh.
	RefreshRefreshing
)

// String returns a human-readable phase name.
func (p RefreshPhase) String() string {
	switch p {
	case RefreshPulling:
		return "pulling"
	case RefreshReady:
		return "ready"
	case RefreshRefreshing:
		return "refreshing"
	default:
		return "idle"
	}
}

// HandlePull feeds a pull gesture. A negative delta is a downward pull past the
// top; it only counts when pull-to-refresh is enabled and the list is already
// scrolled to the top. Progress is min(1, -delta/PullDistance).
func (l *VirtualList) HandlePull(delta float32) {
	if !l.config.PullToRefresh || l.state.ScrollOffset > 0 {
		return
	}
	if delta < 0 {
		l.state.PullProgress = min(-delta/PullDistance, 1)
	}
}

// StartRefresh enters the refreshing phase if the pull is complete and
// reports whether the list is now refreshing. Partial pulls are ignored.
func (l *VirtualList) StartRefresh() bool {
	if l.state.PullProgress < 1 {
		return false
	}
	if !l.state.IsRefreshing {
		l.logger.Debug().Msg("refresh started")
	}
	l.state.IsRefreshing = true
	return true
}

// EndRefresh resets the gesture to idle. It is also how a host cancels a
// partial pull.
func (l *VirtualList) EndRefresh() {
	if l.state.IsRefreshing {
		l.logger.Debug().Msg("refresh ended")
	}
	l.state.IsRefreshing = false
	l.state.PullProgress = 0
}

// PullProgress returns the pull progress in [0, 1].
func (l *VirtualList) PullProgress() float32 {
	return l.state.PullProgress
}

// IsRefreshing reports whether a refresh is in progress.
func (l *VirtualList) IsRefreshing() bool {
	return l.state.IsRefreshing
}

// RefreshPhase derives the gesture phase from the pull progress and the
// refreshing flag.
func (l *VirtualList) RefreshPhase() RefreshPhase {
	switch {
	case l.state.IsRefreshing:
		return RefreshRefreshing
	case l.state.PullProgress >= 1:
		return RefreshReady
	case l.state.PullProgress > 0:
		return RefreshPulling
	default:
		return RefreshIdle
	}
}
