package breeds

import (
	"context"
	"errors"

	"dog-breeds/internal/errs"
)

// Exists indica si la raza existe.
// Lo usa el módulo dogs para validar la FK sin importar breeds.Repository.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
