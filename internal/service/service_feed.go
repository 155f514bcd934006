package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/adapter"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/models"
)

type feedService struct {
	feed    adapter.FeedAdapter
	cache   store.FeedCacheRepository
	records RecordService
	session *session.Session
	now     func() time.Time
}

// NewFeedService constructs a [FeedService]. feed may be nil, in which case
// only cached lists are served.
func NewFeedService(feed adapter.FeedAdapter, cache store.FeedCacheRepository, records RecordService, sess *session.Session) FeedService {
	return &feedService{
		feed:    feed,
		cache:   cache,
		records: records,
		session: sess,
		now:     time.Now,
	}
}

// Articles returns the remote list and caches it. On any remote failure the
// cached list is returned, or an empty one if nothing was cached.
func (s *feedService) Articles(ctx context.Context) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	if s.feed != nil {
		articles, err := s.feed.FetchArticles(ctx)
		if err == nil {
			if err = s.cache.SaveArticles(ctx, articles); err != nil {
				log.Err(err).Str("func", "*feedService.Articles").Msg("error caching articles")
			}
			return articles, nil
		}
		log.Warn().Err(err).Str("func", "*feedService.Articles").Msg("feed unavailable, serving cached articles")
	}

	cached, err := s.cache.LoadArticles(ctx)
	if err != nil {
		log.Err(err).Str("func", "*feedService.Articles").Msg("error reading cached articles")
		return []models.Article{}, nil
	}
	return cached, nil
}

// SharingRequests follows the same fallback rules as Articles.
func (s *feedService) SharingRequests(ctx context.Context) ([]models.SharingRequest, error) {
	log := logger.FromContext(ctx)

	if s.feed != nil {
		requests, err := s.feed.FetchRequests(ctx)
		if err == nil {
			if err = s.cache.SaveRequests(ctx, requests); err != nil {
				log.Err(err).Str("func", "*feedService.SharingRequests").Msg("error caching requests")
			}
			return requests, nil
		}
		log.Warn().Err(err).Str("func", "*feedService.SharingRequests").Msg("feed unavailable, serving cached requests")
	}

	cached, err := s.cache.LoadRequests(ctx)
	if err != nil {
		log.Err(err).Str("func", "*feedService.SharingRequests").Msg("error reading cached requests")
		return []models.SharingRequest{}, nil
	}
	return cached, nil
}

// RespondToRequest records the decision in the user's data, replacing an
// earlier decision on the same request, then notifies the feed. A failed
// notification is logged and does not undo the local record.
func (s *feedService) RespondToRequest(ctx context.Context, requestID int64, accept bool, message string) error {
	log := logger.FromContext(ctx)

	username, key, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	resp := models.RequestResponse{
		RequestID:   requestID,
		Accepted:    accept,
		Message:     message,
		RespondedAt: s.now().UTC(),
	}

	_, err := s.records.Update(ctx, username, key, func(data *models.UserData) error {
		upsertRequestResponse(data, resp)
		return nil
	})
	if err != nil {
		return err
	}

	if s.feed == nil {
		return nil
	}
	if err = s.feed.SendRequestResponse(ctx, resp); err != nil {
		log.Warn().Err(err).Str("func", "*feedService.RespondToRequest").Int64("request_id", requestID).Msg("error sending response to feed")
	}
	return nil
}
