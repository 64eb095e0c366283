package domain

import "go.trai.ch/zerr"

var (
	// ErrScanIncomplete is returned by strict-mode scans when at least one
	// entry could not be processed.
	ErrScanIncomplete = zerr.New("scan completed with errors")

	// ErrUnsupportedConfigVersion is returned when a rules file declares a
	// version this build does not understand.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")
)
