// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"context"
	"time"

	"github.com/communityhub/portal/internal/objectstore"
)

// ObjectStoreInterface is the subset of internal/objectstore used by the gallery.
type ObjectStoreInterface interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	List(ctx context.Context, prefix string) ([]objectstore.Object, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type ServiceInterface interface {
	List(ctx context.Context, album string) ([]Photo, error)
	Upload(ctx context.Context, actorID, album string, image *Image) (string, error)
	Delete(ctx context.Context, actorID, key string) error
}
