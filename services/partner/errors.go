package partner

import "errors"

// Pairing precondition failures, surfaced to the user as-is.
var (
	// ErrUserNotFound means no account matches the target email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfRequest rejects pairing with oneself.
	ErrSelfRequest = errors.New("cannot send request to yourself")
	// ErrAlreadyRequested rejects a duplicate request before any decision.
	ErrAlreadyRequested = errors.New("request already sent")
	// ErrNoRequest means there is no pending request from that account.
	ErrNoRequest = errors.New("no pending request from this user")
	// ErrNoPartner means the caller has no partner to remove.
	ErrNoPartner = errors.New("no partner to remove")
)
