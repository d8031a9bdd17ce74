// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/objectstore"
	"github.com/communityhub/portal/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_interfaces.go -source=./interfaces.go

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func newTestService(objects ObjectStoreInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(objects, "gallery/", 1024, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	objects := NewMockObjectStoreInterface(ctrl)
	objects.EXPECT().List(gomock.Any(), "gallery/").Return([]objectstore.Object{
		{Key: "gallery/eid/", Size: 0},
		{Key: "gallery/eid/a.jpg", Size: 10, LastModified: older},
		{Key: "gallery/iftar/b.png", Size: 20, LastModified: newer},
	}, nil)
	objects.EXPECT().PresignGet(gomock.Any(), gomock.Any(), 15*time.Minute).DoAndReturn(
		func(_ context.Context, key string, _ time.Duration) (string, error) {
			return "https://bucket.example/" + key + "?sig", nil
		},
	).Times(2)

	photos, err := newTestService(objects).List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "iftar", photos[0].Album)
	assert.Equal(t, "https://bucket.example/gallery/iftar/b.png?sig", photos[0].URL)
	assert.Equal(t, "eid", photos[1].Album)
}

func TestService_ListAlbum(t *testing.T) {
	ctrl := gomock.NewController(t)

	objects := NewMockObjectStoreInterface(ctrl)
	objects.EXPECT().List(gomock.Any(), "gallery/eid/").Return([]objectstore.Object{}, nil)

	photos, err := newTestService(objects).List(context.Background(), "eid")

	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestService_ListRejectsTraversal(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := newTestService(NewMockObjectStoreInterface(ctrl)).List(context.Background(), "../proofs")

	var verr *httptypes.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "album")
}

func TestService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)

	objects := NewMockObjectStoreInterface(ctrl)
	objects.EXPECT().Put(gomock.Any(), gomock.Any(), pngImage, "image/png").DoAndReturn(
		func(_ context.Context, key string, _ []byte, _ string) error {
			if !strings.HasPrefix(key, "gallery/eid/") || !strings.HasSuffix(key, ".png") {
				t.Errorf("unexpected key %s", key)
			}
			return nil
		},
	)

	key, err := newTestService(objects).Upload(context.Background(), "admin-1", "eid", &Image{Name: "x.png", Data: pngImage})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "gallery/eid/"))
}

func TestService_UploadRejects(t *testing.T) {
	testCases := []struct {
		name  string
		album string
		image *Image
		field string
	}{
		{name: "missing image", album: "eid", field: "image"},
		{name: "not an image", album: "eid", image: &Image{Data: []byte("%PDF-1.7\n")}, field: "image"},
		{name: "too large", album: "eid", image: &Image{Data: make([]byte, 2048)}, field: "image"},
		{name: "bad album", album: "Eid 2026", image: &Image{Data: pngImage}, field: "album"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			_, err := newTestService(NewMockObjectStoreInterface(ctrl)).Upload(context.Background(), "admin-1", tc.album, tc.image)

			var verr *httptypes.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)

	objects := NewMockObjectStoreInterface(ctrl)
	objects.EXPECT().Delete(gomock.Any(), "gallery/eid/a.jpg").Return(nil)
	objects.EXPECT().Delete(gomock.Any(), "gallery/eid/b.jpg").Return(errors.New("access denied"))

	s := newTestService(objects)

	assert.NoError(t, s.Delete(context.Background(), "admin-1", "gallery/eid/a.jpg"))
	assert.EqualError(t, s.Delete(context.Background(), "admin-1", "gallery/eid/b.jpg"), "access denied")

	var verr *httptypes.ValidationError
	assert.ErrorAs(t, s.Delete(context.Background(), "admin-1", "proofs/2026/01/x.pdf"), &verr)
	assert.ErrorAs(t, s.Delete(context.Background(), "admin-1", "gallery/../proofs/x.pdf"), &verr)
}
