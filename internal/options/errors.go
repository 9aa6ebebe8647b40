package options

import "errors"

var (
	// ErrInvalidCopyCount indicates the copy count text is not an integer >= 1.
	ErrInvalidCopyCount = errors.New("invalid copy count")
	// ErrUnsupportedWriteMethod indicates the method was not offered for the current media.
	ErrUnsupportedWriteMethod = errors.New("write method not offered for this media")
	// ErrUnsupportedSpeed indicates the speed was not offered for the current media.
	ErrUnsupportedSpeed = errors.New("write speed not offered for this media")
	// ErrSimulationUnsupported indicates simulate was requested where no test write is possible.
	ErrSimulationUnsupported = errors.New("simulation not supported for this media")
	// ErrBUPUnsupported indicates buffer underrun protection was requested on a recorder without it.
	ErrBUPUnsupported = errors.New("buffer underrun protection not supported by recorder")
)
