package coingecko

import "errors"

var (
	ErrRetryableRequest = errors.New("retryable coingecko API request failed")
	ErrNonRetryable     = errors.New("non-retryable coingecko API error")
)
