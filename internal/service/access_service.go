package service

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
)

type Operation int

const (
	OpRead Operation = iota
	OpWrite
)

// IAccessService decides, per principal and per record scope, whether an
// operation is permitted. Decisions are never cached: the access set of a
// chat can change between requests, so every call re-evaluates against the
// scope the caller just loaded.
type IAccessService interface {
	Authorize(principal entity.Principal, op Operation, scope *entity.AccessScope) error
}

type accessService struct{}

func NewAccessService() IAccessService {
	return &accessService{}
}

// Authorize applies the policy rules in order:
//  1. admin principals are permitted unconditionally
//  2. reads are permitted for the owner and for members of the access set
//  3. writes are permitted for the owner only
//  4. everything else is denied
//
// A nil scope or an empty owner denies: missing ownership is never an
// implicit allow.
func (s *accessService) Authorize(principal entity.Principal, op Operation, scope *entity.AccessScope) error {
	if principal.Admin {
		return nil
	}

	if scope == nil || scope.OwnerId == "" || principal.UserId == "" {
		return apperror.NewDenied()
	}

	if principal.UserId == scope.OwnerId {
		return nil
	}

	if op == OpRead {
		for _, u := range scope.AccessUsers {
			if u == principal.UserId {
				return nil
			}
		}
	}

	return apperror.NewDenied()
}
