package constants

const (
	ExitCodeSuccess = 0
	// ExitCodeFatal covers every failure: there is no partial result worth
	// distinguishing.
	ExitCodeFatal = 1
)
