package draft

// DraftError is a custom error type for draft-related errors
type DraftError string

// Error implements the error interface
func (e DraftError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidInput     DraftError = "invalid draft input"
	ErrNilConfig        DraftError = "config cannot be nil"
	ErrNilStore         DraftError = "store cannot be nil"
	ErrNilClock         DraftError = "clock cannot be nil"
	ErrNilUUIDGenerator DraftError = "UUID generator cannot be nil"
)
