package store

import (
	"context"

	"github.com/jjenkins/clients/internal/model"
)

// RecordSource provides the full client list
type RecordSource interface {
	GetAll(ctx context.Context) ([]model.ClientRecord, error)
}
