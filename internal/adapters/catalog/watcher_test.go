package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetimport/internal/adapters/catalog"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type invalidations chan struct{}

func (c invalidations) Invalidate() {
	select {
	case c <- struct{}{}:
	default:
	}
}

func TestWatcher_InvalidatesOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	path := filepath.Join(dir, domain.CatalogFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	target := make(invalidations, 1)
	w := catalog.NewWatcher(path, target, log).WithWindow(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// The watch is registered asynchronously, so keep writing until it is noticed.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(sampleDocument), 0o600)
		select {
		case <-target:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	path := filepath.Join(t.TempDir(), "gone", domain.CatalogFileName)
	w := catalog.NewWatcher(path, make(invalidations, 1), log)
	err := w.Run(t.Context())
	assert.ErrorIs(t, err, domain.ErrWatcherFailed)
}
