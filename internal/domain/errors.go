package domain

import "fmt"

const MaxNoteLength = 200

var (
	ErrSelfDealing       = fmt.Errorf("%w: creditor and debtor must differ", ErrValidation)
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	ErrAmountTooLarge    = fmt.Errorf("%w: amount is too large", ErrValidation)
	ErrUnknownUser       = fmt.Errorf("%w: user id is required", ErrValidation)
	ErrUnknownKind       = fmt.Errorf("%w: unknown pending kind", ErrValidation)
	ErrNoteTooLong       = fmt.Errorf("%w: note must be at most %d characters", ErrValidation, MaxNoteLength)
)
