package world

// Clock holds the process-wide frame counter and the change counters the
// staleness tracker reads. Only the frame driver and State write to it.
type Clock struct {
	frame                uint32
	lastPopulationChange uint32
	lastTeamEnterExit    uint32
}

func (c *Clock) Frame() uint32 { return c.frame }

// Advance moves to the next frame and returns it.
func (c *Clock) Advance() uint32 {
	c.frame++
	return c.frame
}

// LastPopulationChange is the frame an object was last added or removed.
func (c *Clock) LastPopulationChange() uint32 { return c.lastPopulationChange }

// LastTeamEnterExit is the frame any team last had a member cross a trigger
// area boundary or change membership.
func (c *Clock) LastTeamEnterExit() uint32 { return c.lastTeamEnterExit }

func (c *Clock) MarkPopulationChange() { c.lastPopulationChange = c.frame }
func (c *Clock) MarkTeamEnterExit()    { c.lastTeamEnterExit = c.frame }

// Recent reports whether frame is the current frame or the one before it.
func (c *Clock) Recent(frame uint32) bool {
	return frame+1 >= c.frame
}
