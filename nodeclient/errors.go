package nodeclient

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the client core can surface.
// The set is closed: callers switch on kinds, never on message text.
type ErrorKind string

const (
	// Transport kinds.
	KindConnectionFailed ErrorKind = "connection_failed"
	KindTimeout          ErrorKind = "timeout"
	KindHTTPStatus       ErrorKind = "http_status"
	KindRequestFailed    ErrorKind = "request_failed"

	// Validation kinds.
	KindSchemaValidation    ErrorKind = "schema_validation"
	KindSelectorExclusivity ErrorKind = "selector_exclusivity"
	KindInvalidNetwork      ErrorKind = "invalid_network_configuration"

	// Business kinds.
	KindUnlockRequired          ErrorKind = "unlock_required"
	KindInsufficientAllocation  ErrorKind = "insufficient_allocation"
	KindNotEnoughUncolored      ErrorKind = "not_enough_uncolored"
	KindAuthenticationFailed    ErrorKind = "authentication_failed"
	KindAuthenticationCancelled ErrorKind = "authentication_cancelled"
	KindMediaPathMissing        ErrorKind = "media_path_missing"
	KindUnknownTransferKind     ErrorKind = "unknown_transfer_kind"
	KindPaymentFailed           ErrorKind = "payment_failed"

	// Anything that could not be categorized.
	KindUnknown ErrorKind = "unknown"
)

// Node error strings the classifier recognizes in HTTP error payloads.
const (
	errMsgNodeLocked             = "Node is locked (hint: call unlock)"
	errMsgNodeChangingState      = "Cannot call other APIs while node is changing state"
	errMsgWalletNotInitialized   = "Wallet has not been initialized (hint: call init)"
	errMsgPasswordIncorrect      = "The provided password is incorrect"
	errMsgInsufficientAllocation = "Cannot open channel: InsufficientAllocationSlots"
	errMsgNotEnoughUncolored     = "No uncolored UTXOs are available (hint: call createutxos)"
)

// WalletError is the common error carried through the request pipeline.
// It wraps the causing error (if any) with a kind and a message safe to
// show to the user.
type WalletError struct {
	Kind    ErrorKind
	Message string
	// Status holds the HTTP status code for KindHTTPStatus errors.
	Status int
	Cause  error
}

func (e *WalletError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *WalletError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match two wallet errors by kind.
func (e *WalletError) Is(target error) bool {
	var we *WalletError
	if !errors.As(target, &we) {
		return false
	}
	return e.Kind == we.Kind
}

func newError(kind ErrorKind, msg string) *WalletError {
	return &WalletError{Kind: kind, Message: msg}
}

func wrapError(kind ErrorKind, msg string, cause error) *WalletError {
	return &WalletError{Kind: kind, Message: msg, Cause: cause}
}

func errorf(kind ErrorKind, format string, args ...any) *WalletError {
	return &WalletError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var we *WalletError
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// User-visible messages by kind. View models render these in toasts.
var userMessages = map[ErrorKind]string{
	KindConnectionFailed:        "Connection failed with provided lightning node url",
	KindTimeout:                 "Request time out",
	KindHTTPStatus:              "Unspecified server error",
	KindRequestFailed:           "Unspecified server error",
	KindSchemaValidation:        "Type validation error",
	KindSelectorExclusivity:     "Type validation error",
	KindInvalidNetwork:          "Invalid network type",
	KindUnlockRequired:          "Node is locked (hint: call unlock)",
	KindInsufficientAllocation:  "Cannot open channel: InsufficientAllocationSlots",
	KindNotEnoughUncolored:      "No uncolored UTXOs are available (hint: call createutxos)",
	KindAuthenticationFailed:    "Authentication failed",
	KindAuthenticationCancelled: "Authentication failed or canceled.",
	KindMediaPathMissing:        "Provided image file path not exits",
	KindUnknownTransferKind:     "Unknown transaction type",
	KindPaymentFailed:           "Unable to send asset. The channel might be closed or not open with.",
}

const fallbackUserMessage = "Something went wrong"

// UserMessage maps any error to the text shown to the user. Node-reported
// business errors keep their own message; everything else falls back to
// the per-kind text or a generic message.
func UserMessage(err error) string {
	var we *WalletError
	if !errors.As(err, &we) {
		return fallbackUserMessage
	}
	if we.Kind == KindHTTPStatus && we.Message != "" {
		return we.Message
	}
	if msg, ok := userMessages[we.Kind]; ok {
		return msg
	}
	return fallbackUserMessage
}

// classifyNodeError maps a node error payload to a business kind where
// one applies, otherwise to a plain HTTP status error.
func classifyNodeError(status int, message string) *WalletError {
	switch message {
	case errMsgNodeLocked, errMsgNodeChangingState:
		return &WalletError{Kind: KindUnlockRequired, Message: message, Status: status}
	case errMsgPasswordIncorrect:
		return &WalletError{Kind: KindAuthenticationFailed, Message: message, Status: status}
	case errMsgInsufficientAllocation:
		return &WalletError{Kind: KindInsufficientAllocation, Message: message, Status: status}
	case errMsgNotEnoughUncolored:
		return &WalletError{Kind: KindNotEnoughUncolored, Message: message, Status: status}
	}
	return &WalletError{Kind: KindHTTPStatus, Message: message, Status: status}
}
