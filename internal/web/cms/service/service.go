// Package service is the service layer of the CMS.
package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dao"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/media"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/throttle"
)

// mediaStore is the slice of the media store the service needs for
// image cleanup.
type mediaStore interface {
	Owns(url string) bool
	Delete(ctx context.Context, url string) error
}

// CMS is the content service.
type CMS struct {
	logger glog.Logger
	dao    *dao.CMS
	// media is nil when no object store is configured; image cleanup
	// is then skipped.
	media         mediaStore
	loginThrottle *throttle.LoginThrottle
}

// New creates the content service and prepares the unique indexes the
// write paths depend on.
func New(ctx context.Context,
	logger glog.Logger,
	dao *dao.CMS,
	store *media.Store) (*CMS, error) {
	lt, err := throttle.NewLoginThrottle(ctx, &throttle.LoginThrottleCfg{
		TotalNPerSec:       10,
		TotalBurst:         20,
		EachAccountNPerSec: 2,
		EachAccountBurst:   5,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create login throttle")
	}

	s := &CMS{
		logger:        logger,
		dao:           dao,
		loginThrottle: lt,
	}
	// a typed nil must not end up inside the interface value
	if store != nil {
		s.media = store
	}

	if err := dao.SetupIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "setup indexes")
	}

	return s, nil
}

// removeImageBestEffort deletes a hosted image behind url. Failures are
// logged and swallowed: the database row is the source of truth, not
// the media store.
func (s *CMS) removeImageBestEffort(ctx context.Context, url string) {
	if s.media == nil || url == "" || !s.media.Owns(url) {
		return
	}

	if err := s.media.Delete(ctx, url); err != nil {
		s.logger.Warn("delete remote image",
			zap.Error(err), zap.String("url", url))
	}
}
