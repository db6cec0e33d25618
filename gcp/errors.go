package gcp

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidScope means the user-supplied scope string is malformed.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrUnknownResourceAlias means the --type value is neither a known
	// alias nor a full asset type.
	ErrUnknownResourceAlias = errors.New("unknown resource type")
)

// IsNotFound reports whether an error from a GCP API call means the resource
// does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	st, ok := status.FromError(err)
	if ok && st.Code() == codes.NotFound {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "NotFound") ||
		strings.Contains(errMsg, "not found")
}

// IsPermissionDenied reports whether an error from a GCP API call means the
// caller lacks the required IAM permission.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}

	st, ok := status.FromError(err)
	if ok && st.Code() == codes.PermissionDenied {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "PermissionDenied") ||
		strings.Contains(errMsg, "permission denied") ||
		strings.Contains(errMsg, "does not have")
}
