package commands

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// isTxClosed filters the rollback error every committed transaction produces
// from the deferred rollback.
func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
