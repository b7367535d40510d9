package services

import (
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
)

// PersistenceWarning reports a history write that did not reach the blob
// store. The in-memory change it accompanies has already been applied.
type PersistenceWarning struct {
	Op  string
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("%s: %v: %v", w.Op, common.ErrPersistence, w.Err)
}

func (w *PersistenceWarning) Unwrap() error { return w.Err }

func (w *PersistenceWarning) Is(target error) bool { return target == common.ErrPersistence }
