package store

import (
	"context"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/models"
)

const (
	feedCacheArticlesKey = "articles"
	feedCacheRequestsKey = "requests"
)

type feedCacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFeedCacheRepository constructs a [FeedCacheRepository] over db.
func NewFeedCacheRepository(db *DB, logger *logger.Logger) FeedCacheRepository {
	logger.Debug().Msg("creating feed cache repository")
	return &feedCacheRepository{
		db:     db,
		logger: logger,
	}
}

func (r *feedCacheRepository) SaveArticles(ctx context.Context, articles []models.Article) error {
	return r.save(ctx, feedCacheArticlesKey, articles)
}

func (r *feedCacheRepository) LoadArticles(ctx context.Context) ([]models.Article, error) {
	articles := make([]models.Article, 0)
	if err := r.load(ctx, feedCacheArticlesKey, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *feedCacheRepository) SaveRequests(ctx context.Context, requests []models.SharingRequest) error {
	return r.save(ctx, feedCacheRequestsKey, requests)
}

func (r *feedCacheRepository) LoadRequests(ctx context.Context) ([]models.SharingRequest, error) {
	requests := make([]models.SharingRequest, 0)
	if err := r.load(ctx, feedCacheRequestsKey, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *feedCacheRepository) save(ctx context.Context, key string, value any) error {
	err := r.db.Transaction(ctx, []string{StoreFeedCache}, ReadWrite, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreFeedCache)
		if err != nil {
			return err
		}
		return store.Put(ctx, key, value)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedCacheRepository.save").Str("key", key).Msg("error caching feed")
	}
	return err
}

// load leaves dest untouched when nothing is cached.
func (r *feedCacheRepository) load(ctx context.Context, key string, dest any) error {
	return r.db.Transaction(ctx, []string{StoreFeedCache}, ReadOnly, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreFeedCache)
		if err != nil {
			return err
		}
		_, err = store.Get(ctx, key, dest)
		return err
	})
}
