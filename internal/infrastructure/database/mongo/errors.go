// internal/infrastructure/database/mongo/errors.go
package mongo

import (
	"errors"

	"github.com/your-org/storefront-api/internal/apperror"
	"go.mongodb.org/mongo-driver/mongo"
)

// translate maps driver errors onto the application taxonomy
func translate(op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.NotFound(entity, id)
	}
	return apperror.Store(op, err)
}
