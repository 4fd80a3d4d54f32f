package service

import (
	"errors"

	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
)

// found translates a repository lookup result into the service error
// contract: a missing row becomes a not-found error citing the label, any
// other failure a database error. Returns nil when the lookup succeeded.
func found(label string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(label)
	}
	return apperror.Database("lookup "+label, err)
}

type matchPair struct {
	a, b           uint
	labelA, labelB string
}

// firstMismatch returns a mismatch error for the first pair whose values
// disagree. Used to enforce the catalog hierarchy: a student's department
// must belong to the submitted faculty, the faculty to the submitted
// university, and so on.
func firstMismatch(pairs ...matchPair) error {
	for _, p := range pairs {
		if p.a != p.b {
			return apperror.Mismatch(p.labelA, p.labelB)
		}
	}
	return nil
}
