package checks

// CheckStatus represents the status model shared by all workflow checks.
type CheckStatus string

const (
	// StatusOK indicates the check passes.
	StatusOK CheckStatus = "ok"
	// StatusWarning indicates a potential issue that does not fail the check.
	StatusWarning CheckStatus = "warning"
	// StatusFailed indicates the check failed.
	StatusFailed CheckStatus = "failed"
	// StatusSkipped indicates the check did not apply to the file.
	StatusSkipped CheckStatus = "skipped"
)

// StatusHolder is implemented by check Data types that carry a CheckStatus.
type StatusHolder interface {
	GetStatus() CheckStatus
}

// StatusData is the Data payload for checks that only carry a status.
type StatusData struct {
	Status CheckStatus
}

// GetStatus implements StatusHolder.
func (d *StatusData) GetStatus() CheckStatus { return d.Status }

// StatusOf returns the status carried by r.Data, falling back to Passed.
func StatusOf(r *CheckResult) CheckStatus {
	if h, ok := r.Data.(StatusHolder); ok {
		return h.GetStatus()
	}
	if r.Passed {
		return StatusOK
	}
	return StatusFailed
}
