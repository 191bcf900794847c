package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Dispenser / nozzle errors
	ErrDispenserNotFound    = errors.New("dispenser not found")
	ErrDispenserUnavailable = errors.New("dispenser unavailable")
	ErrNozzleNotFound       = errors.New("nozzle not found")
	ErrNozzleBusy           = errors.New("nozzle busy")
	ErrTankNotFound         = errors.New("tank not found")

	// Fuel sale errors
	ErrSaleNotFound         = errors.New("fuel sale not found")
	ErrSaleNotCompleted     = errors.New("fuel sale not completed")
	ErrInvalidAmount        = errors.New("invalid authorization amount")
	ErrAuthorizationTimeout = errors.New("authorization timed out")

	// Pricing errors
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("invalid price")

	// Cart / checkout errors
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrEmptyCheckout   = errors.New("nothing to check out")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
