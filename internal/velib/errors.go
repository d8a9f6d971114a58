package velib

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed
type ErrorKind int

const (
	KindAPI       ErrorKind = iota + 1 // the service answered with a non-success status
	KindTransport                      // request, network or decoding failure
)

func (k ErrorKind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// FetchError is returned by FetchStations for every failure
type FetchError struct {
	Kind       ErrorKind
	StatusCode int   // set for KindAPI
	Err        error // underlying cause, nil for KindAPI
}

func (e *FetchError) Error() string {
	if e.Kind == KindAPI {
		return fmt.Sprintf("velib API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("fetching velib stations: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is a non-success status from the service
func IsAPIError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindAPI
}

// IsTransportError reports whether err happened before a status was available
func IsTransportError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindTransport
}

func apiError(status int) *FetchError {
	return &FetchError{Kind: KindAPI, StatusCode: status}
}

func transportError(format string, err error) *FetchError {
	return &FetchError{Kind: KindTransport, Err: fmt.Errorf(format+": %w", err)}
}
