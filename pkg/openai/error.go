package openai

import "errors"

// APIError is the provider-reported error object embedded in a response body.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Classification buckets every failed completion attempt. The orchestrator
// treats all three the same way (degrade to fallback); the split exists for
// logging and metrics.
type Classification string

const (
	// ClassUnavailable covers transport failures, timeouts, and non-2xx
	// responses without a parseable provider error.
	ClassUnavailable Classification = "unavailable"

	// ClassProviderError covers parseable responses carrying an error object.
	ClassProviderError Classification = "provider_error"

	// ClassEmptyResponse covers parseable successes with no usable choice.
	ClassEmptyResponse Classification = "empty_response"
)

// UnavailableError wraps a transport-level failure reaching the provider.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return "gateway unavailable: " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ProviderError carries the provider's own error message.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "provider error: " + e.Message
}

// EmptyResponseError indicates a well-formed response with no completion text.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "empty completion response"
}

// Classify maps an error returned by Client.Complete to its failure
// classification. Unknown errors classify as unavailable.
func Classify(err error) Classification {
	var provider *ProviderError
	var empty *EmptyResponseError

	switch {
	case errors.As(err, &provider):
		return ClassProviderError
	case errors.As(err, &empty):
		return ClassEmptyResponse
	default:
		return ClassUnavailable
	}
}

// Detail extracts the message worth surfacing for a failed attempt: the
// provider's own message when there is one, the error text otherwise.
func Detail(err error) string {
	var provider *ProviderError
	if errors.As(err, &provider) {
		return provider.Message
	}
	return err.Error()
}
