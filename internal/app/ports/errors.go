package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrMarketRejected marks a buy or sell the host refused, such as
	// insufficient funds or capacity.
	ErrMarketRejected = errors.New("market rejected")
	// ErrHostUnavailable marks a host call that could not be delivered.
	ErrHostUnavailable = errors.New("host unavailable")
)
