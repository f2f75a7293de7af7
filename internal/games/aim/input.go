package aim

// Input events from the presentation layer. Each is handled to completion
// before the next; events that do not apply to the current phase are dropped.

// OnPlayRequested starts a session in the configured mode from the menu.
func (c *Controller) OnPlayRequested() {
	if c.phase != PhaseMenu {
		return
	}
	c.StartSession(c.opts.Difficulty)
}

// OnTargetClicked registers a hit on the target.
func (c *Controller) OnTargetClicked(id TargetID) {
	c.RegisterHit(id)
}

// OnEmptyAreaClicked registers a miss.
func (c *Controller) OnEmptyAreaClicked() {
	c.RegisterMiss()
}

// OnExitRequested finishes the session early and shows the result.
func (c *Controller) OnExitRequested() {
	c.EndSession(EndExit)
}

// OnAbortRequested drops an active session and goes straight to the menu.
func (c *Controller) OnAbortRequested() {
	if c.phase != PhaseActive {
		return
	}
	c.ReturnToMenu()
}

// OnRestartRequested leaves the end screen for the menu.
func (c *Controller) OnRestartRequested() {
	if c.phase != PhaseEnded {
		return
	}
	c.ReturnToMenu()
}

// OnViewportResized drops every target because its placement no longer
// matches the play area. The countdown keeps running; an active session is
// re-populated right away against the new geometry.
func (c *Controller) OnViewportResized() {
	c.clearTargets()
	if c.state.Active {
		c.populate()
	}
}
