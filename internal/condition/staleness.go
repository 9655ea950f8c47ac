package condition

// CachedVerdict is the tri-state memo a counting condition keeps between
// evaluations.
type CachedVerdict int8

const (
	VerdictUnknown CachedVerdict = 0
	VerdictTrue    CachedVerdict = 1
	VerdictFalse   CachedVerdict = -1
)

func VerdictOf(b bool) CachedVerdict {
	if b {
		return VerdictTrue
	}
	return VerdictFalse
}

func (v CachedVerdict) Bool() bool { return v == VerdictTrue }

func (v CachedVerdict) String() string {
	switch v {
	case VerdictTrue:
		return "true"
	case VerdictFalse:
		return "false"
	}
	return "unknown"
}

// ChangeSignal is the snapshot of change counters a cached verdict is
// checked against.
type ChangeSignal struct {
	Frame                uint32
	LastEvaluated        uint32
	LastPopulationChange uint32
	// TeamsEnteredOrExited is true if any team of the subject player saw a
	// membership or trigger-area edge this frame or the last.
	TeamsEnteredOrExited bool
}

// AnyChanges reports whether the population may differ from when the
// verdict was stored. A verdict older than one frame is always stale.
func (s ChangeSignal) AnyChanges() bool {
	return s.TeamsEnteredOrExited ||
		s.Frame <= s.LastPopulationChange+1 ||
		s.Frame > s.LastEvaluated+1
}

// Refresh returns the verdict that may be reused without a scan, or
// VerdictUnknown when the caller must rescan.
func Refresh(v CachedVerdict, s ChangeSignal) CachedVerdict {
	if v == VerdictUnknown {
		return VerdictUnknown
	}
	if s.AnyChanges() {
		return VerdictUnknown
	}
	return v
}
