package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// wrapAggregate folds the collected per-unit failures of one fan-out call
// into a single error tagged with the given classification sentinel. Returns
// nil when nothing failed.
func wrapAggregate(kind error, merr *multierror.Error) error {
	if merr.ErrorOrNil() == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", kind, merr.Error())
}
