package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	// AccountRepository holds patient accounts (userdata store).
	AccountRepository AccountRepository
	// DoctorRepository holds doctor accounts (doctordata store).
	DoctorRepository DoctorRepository
	// FeedCacheRepository holds the last fetched feed lists (feedcache store).
	FeedCacheRepository FeedCacheRepository
}

// NewStorages opens the database through connector (once, shared) and wires
// every repository to it.
func NewStorages(ctx context.Context, connector *Connector, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connector.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &Storages{
		AccountRepository:   NewAccountRepository(db, logger),
		DoctorRepository:    NewDoctorRepository(db, logger),
		FeedCacheRepository: NewFeedCacheRepository(db, logger),
	}, nil
}
