package reporting

import "errors"

var (
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	ErrReportDisabled   = errors.New("report disabled")
)
