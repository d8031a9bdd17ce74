// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/objectstore"
	"github.com/communityhub/portal/internal/tracing"
)

const urlTTL = 15 * time.Minute

var albumPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

type Service struct {
	objects        ObjectStoreInterface
	prefix         string
	maxUploadBytes int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// List returns the photos of one album, or of every album when album is
// empty, newest first.
func (s *Service) List(ctx context.Context, album string) ([]Photo, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.List")
	defer span.End()

	prefix := s.prefix
	if album != "" {
		if !albumPattern.MatchString(album) {
			return nil, httptypes.NewValidationError("album", "must be lowercase letters, digits and dashes")
		}
		prefix += album + "/"
	}

	objects, err := s.objects.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	photos := make([]Photo, 0, len(objects))
	for _, o := range objects {
		rel := strings.TrimPrefix(o.Key, s.prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}

		url, err := s.objects.PresignGet(ctx, o.Key, urlTTL)
		if err != nil {
			return nil, err
		}

		p := Photo{Key: o.Key, URL: url, Size: o.Size, LastModified: o.LastModified}
		if i := strings.Index(rel, "/"); i > 0 {
			p.Album = rel[:i]
		}
		photos = append(photos, p)
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].LastModified.After(photos[j].LastModified)
	})

	return photos, nil
}

func (s *Service) Upload(ctx context.Context, actorID, album string, image *Image) (string, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.Upload")
	defer span.End()

	verr := new(httptypes.ValidationError)
	if !albumPattern.MatchString(album) {
		verr.Add("album", "must be lowercase letters, digits and dashes")
	}

	var contentType, ext string
	switch {
	case image == nil || len(image.Data) == 0:
		verr.Add("image", "is required")
	case int64(len(image.Data)) > s.maxUploadBytes:
		verr.Add("image", fmt.Sprintf("must be at most %d bytes", s.maxUploadBytes))
	default:
		var ok bool
		if contentType, ext, ok = objectstore.Sniff(image.Data, "image/"); !ok {
			verr.Add("image", "must be an image")
		}
	}
	if err := verr.Err(); err != nil {
		return "", err
	}

	key := s.prefix + album + "/" + uuid.NewString() + ext
	if err := s.objects.Put(ctx, key, image.Data, contentType); err != nil {
		return "", err
	}

	s.logger.Security().AdminAction(actorID, "upload_photo", key)
	return key, nil
}

func (s *Service) Delete(ctx context.Context, actorID, key string) error {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.Delete")
	defer span.End()

	if !strings.HasPrefix(key, s.prefix) || strings.Contains(key, "..") || key == s.prefix {
		return httptypes.NewValidationError("key", "is not a gallery image")
	}

	if err := s.objects.Delete(ctx, key); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "delete_photo", key)
	return nil
}

func NewService(objects ObjectStoreInterface, prefix string, maxUploadBytes int64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.objects = objects
	s.prefix = prefix
	s.maxUploadBytes = maxUploadBytes

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
