package work

import "time"

// CompleteAt finalises a live entry at the given end instant: the status moves
// to completed, total hours are recomputed from the recorded start, and an
// entry that was in overtime gets its OT end stamped at the same instant.
func (e *WorkEntry) CompleteAt(end time.Time) {
	if e.Status == StatusOTRunning && e.OTEndTime == nil {
		e.OTEndTime = &end
	}
	e.EndTime = &end
	e.Status = StatusCompleted

	if e.StartTime != nil {
		e.TotalHours = ElapsedHours(*e.StartTime, end, e.BreakMinutes)
	}
	if e.OTStartTime != nil && e.OTEndTime != nil {
		e.OTHours = e.OTEndTime.Sub(*e.OTStartTime).Hours()
	}
}

// Approve locks the entry. Approval is admin-only and irreversible.
func (e *WorkEntry) Approve(at time.Time) {
	e.Status = StatusApproved
	e.IsApproved = true
	e.ApprovedAt = &at
}

// AutoEndDeadline returns the instant at which an unattended live entry must be
// force-completed by the housekeeping sweep, and whether the entry is in a
// state that can lapse at all. The deadline is derived from recorded
// timestamps, never from poll arrival, so it survives client restarts.
//
//   - running: the worker got the full decision window after the standard
//     shift length to either end the shift or request overtime;
//   - ot_requested: the admin got the decision window from the moment the
//     request was recorded; no decision means the shift ends with no overtime;
//   - ot_running: overtime is capped at maxOT.
func (e WorkEntry) AutoEndDeadline(standardShift, decisionWindow, maxOT time.Duration) (time.Time, bool) {
	switch e.Status {
	case StatusRunning:
		if e.StartTime == nil {
			return time.Time{}, false
		}
		return e.StartTime.Add(standardShift + decisionWindow), true
	case StatusOTRequested:
		if e.OTRequestedAt == nil {
			return time.Time{}, false
		}
		return e.OTRequestedAt.Add(decisionWindow), true
	case StatusOTRunning:
		if e.OTStartTime == nil {
			return time.Time{}, false
		}
		return e.OTStartTime.Add(maxOT), true
	}
	return time.Time{}, false
}
