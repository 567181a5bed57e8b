package nnet

import "errors"

// Common errors.
var (
	ErrOutputLargerThanHiddenLayer = errors.New("output layer cannot be larger than hidden layers")
	ErrCouldNotWriteBuffer         = errors.New("could not write to buffer when saving")
	ErrCouldNotReadBuffer          = errors.New("could not read from buffer when loading")
	ErrInvalidShape                = errors.New("invalid network shape")
	ErrInputWidth                  = errors.New("input width does not match network")
	ErrTargetWidth                 = errors.New("target width does not match network")
	ErrNoSamples                   = errors.New("no training samples")
	ErrInvalidEpochs               = errors.New("epoch count must be positive")
)
