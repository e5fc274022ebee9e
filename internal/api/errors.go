package api

import "fmt"

// ErrorKind classifies a failed fetch for the view layer.
type ErrorKind int

const (
	// KindNetwork covers transport failures, timeouts, non-2xx statuses
	// and undecodable bodies.
	KindNetwork ErrorKind = iota
	// KindEmpty marks a 2xx response that carried no usable series.
	KindEmpty
)

// String returns a log-friendly kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindEmpty:
		return "empty"
	}
	return "unknown"
}

// FetchError is the typed failure every client method returns. Loaders
// keep it so the view can show the kind and offer a retry.
type FetchError struct {
	Kind     ErrorKind
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Endpoint)
}

func (e *FetchError) Unwrap() error { return e.Err }

func networkErr(endpoint string, err error) *FetchError {
	return &FetchError{Kind: KindNetwork, Endpoint: endpoint, Err: err}
}

func emptyErr(endpoint string) *FetchError {
	return &FetchError{Kind: KindEmpty, Endpoint: endpoint, Err: fmt.Errorf("response contained no data")}
}
