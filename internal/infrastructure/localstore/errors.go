package localstore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/erp/companion/internal/domain/shared"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// wrapErr translates gorm failures into the domain error taxonomy at the
// repository boundary
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%w: %v", syncdomain.ErrLocalStore, err)
}
