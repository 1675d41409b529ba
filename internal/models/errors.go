package models

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these to classify a failure.
var (
	ErrValidation       = errors.New("validation error")
	ErrInsufficientData = errors.New("insufficient data")
	ErrReplay           = errors.New("replay error")
	ErrPersistence      = errors.New("persistence error")
)

var (
	ErrDuplicateTerm = fmt.Errorf("%w: card already exists", ErrValidation)
	ErrEmptyField    = fmt.Errorf("%w: term and translation are required", ErrValidation)

	ErrNoItemsDue     = fmt.Errorf("%w: no cards due for quiz", ErrInsufficientData)
	ErrNotEnoughDue   = fmt.Errorf("%w: not enough cards due for quiz", ErrInsufficientData)
	ErrNotEnoughItems = fmt.Errorf("%w: not enough words for quiz", ErrInsufficientData)
	ErrPoolExhausted  = fmt.Errorf("%w: no selectable words left", ErrInsufficientData)

	ErrBadSeed         = fmt.Errorf("%w: malformed seed", ErrReplay)
	ErrSeedOutOfRange  = fmt.Errorf("%w: seed index out of range", ErrReplay)
	ErrSeedUnsupported = fmt.Errorf("%w: strategy does not support seeds", ErrReplay)

	ErrCorruptStore = fmt.Errorf("%w: store file is corrupt", ErrPersistence)
)

// ErrTranslation covers failures of the optional suggestion provider.
var ErrTranslation = errors.New("translation provider error")
