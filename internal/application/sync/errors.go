package sync

import (
	"errors"

	"github.com/erp/companion/internal/domain/shared"
)

func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
