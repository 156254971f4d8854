// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"

	"github.com/pkg/errors"
)

// authorize returns nil when the caller satisfies predicate, ErrUnauthenticated
// for anonymous callers and ErrForbidden otherwise.
func authorize(caller policy.Caller, predicate policy.Predicate, action string) error {
	if predicate(caller) {
		return nil
	}
	if !caller.IsAuthenticated() {
		return errors.Wrap(domainerrors.ErrUnauthenticated, action)
	}

	return errors.Wrap(domainerrors.ErrForbidden, action)
}

// translate maps a repository sentinel onto the domain error shown to clients.
// Unknown errors are wrapped with message; nil stays nil.
func translate(err error, sentinel, domainErr error, message string) error {
	if errors.Is(err, sentinel) {
		return errors.Wrap(domainErr, message)
	}

	return errors.Wrap(err, message)
}
