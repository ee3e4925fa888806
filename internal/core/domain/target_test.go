package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/assetimport/internal/core/domain"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name         string
		in           domain.TargetInput
		wantRel      string
		wantMarker   string
		wantDeferred bool
	}{
		{
			name: "no path with noop task defers the extension",
			in: domain.TargetInput{
				ContentType: "article",
				Alias:       "hero",
				AssetID:     "{1A2B-3C4D}",
				Task:        domain.NoopTask,
			},
			wantRel:      "article/hero/1A2B3C4D/original",
			wantMarker:   "article/hero/1A2B3C4D/.placeholder.original",
			wantDeferred: true,
		},
		{
			name: "no path with real task",
			in: domain.TargetInput{
				ContentType:      "article",
				Alias:            "hero",
				AssetID:          "abc-123",
				Task:             "thumbnail",
				ParameterSummary: "_120_80",
				Extension:        "jpg",
			},
			wantRel:    "article/hero/abc123/thumbnail_120_80.jpg",
			wantMarker: "article/hero/abc123/.placeholder.thumbnail_120_80.jpg",
		},
		{
			name: "path with noop task keeps the basename",
			in: domain.TargetInput{
				ContentType: "article",
				Alias:       "hero",
				AssetID:     "abc",
				AssetPath:   "/Images/Summer/beach.png",
				Task:        domain.NoopTask,
			},
			wantRel:    "article/hero/abc/beach.png",
			wantMarker: "article/hero/abc/.placeholder.beach.png",
		},
		{
			name: "path with real task",
			in: domain.TargetInput{
				ContentType:      "article",
				Alias:            "hero",
				AssetID:          "abc",
				AssetPath:        "/Images/Summer/beach.png",
				Task:             "resize",
				ParameterSummary: "_640",
				Extension:        "webp",
			},
			wantRel:    "article/hero/abc/beach.png_resize_640.webp",
			wantMarker: "article/hero/abc/.placeholder.beach.png_resize_640.webp",
		},
		{
			name: "empty task counts as noop",
			in: domain.TargetInput{
				ContentType: "page",
				Alias:       "logo",
				AssetID:     "x",
				AssetPath:   "brand/logo.svg",
			},
			wantRel:    "page/logo/x/logo.svg",
			wantMarker: "page/logo/x/.placeholder.logo.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveTarget(tt.in)
			assert.Equal(t, tt.wantRel, got.RelPath())
			assert.Equal(t, tt.wantMarker, got.PlaceholderRelPath())
			assert.Equal(t, tt.wantDeferred, got.DeferredExtension)
		})
	}
}

func TestResolveTarget_Deterministic(t *testing.T) {
	in := domain.TargetInput{
		ContentType:      "article",
		Alias:            "hero",
		AssetID:          "abc",
		Task:             "resize",
		ParameterSummary: "_640_480",
		Extension:        "jpg",
	}
	first := domain.ResolveTarget(in)
	for range 10 {
		assert.Equal(t, first, domain.ResolveTarget(in))
	}
}

func TestResolveTarget_ParameterOrderMatters(t *testing.T) {
	wide := domain.TransformationDescriptor{
		Task:      "resize",
		Extension: "jpg",
		Parameters: []domain.RuntimeParameter{
			{Name: domain.ParamOutputWidth, Value: "640"},
			{Name: domain.ParamOutputHeight, Value: "480"},
		},
	}
	tall := domain.TransformationDescriptor{
		Task:      "resize",
		Extension: "jpg",
		Parameters: []domain.RuntimeParameter{
			{Name: domain.ParamOutputHeight, Value: "480"},
			{Name: domain.ParamOutputWidth, Value: "640"},
		},
	}

	resolve := func(d domain.TransformationDescriptor) string {
		return domain.ResolveTarget(domain.TargetInput{
			ContentType:      "article",
			Alias:            "hero",
			AssetID:          "abc",
			Task:             d.Task,
			ParameterSummary: d.ParameterSummary(),
			Extension:        d.Extension,
		}).RelPath()
	}

	assert.Equal(t, "article/hero/abc/resize_640_480.jpg", resolve(wide))
	assert.Equal(t, "article/hero/abc/resize_480_640.jpg", resolve(tall))
}

func TestTarget_WithExtension(t *testing.T) {
	deferred := domain.ResolveTarget(domain.TargetInput{
		ContentType: "article",
		Alias:       "hero",
		AssetID:     "abc",
		Task:        domain.NoopTask,
	})

	done := deferred.WithExtension(".png")
	assert.False(t, done.DeferredExtension)
	assert.Equal(t, "article/hero/abc/original.png", done.RelPath())
	assert.Equal(t, "article/hero/abc/.placeholder.original", done.PlaceholderRelPath())

	again := done.WithExtension("gif")
	assert.Equal(t, done, again, "completed targets are not renamed")
}

func TestNormalizeAssetID(t *testing.T) {
	assert.Equal(t, "8F3A11C0", domain.NormalizeAssetID("{8F3A-11C0}"))
	assert.Equal(t, "abc123", domain.NormalizeAssetID("abc_1.2/3"))
	assert.Empty(t, domain.NormalizeAssetID("{-}"))
}

func TestSourceBinding_FileSystemAlias(t *testing.T) {
	assert.Equal(t, "hero", domain.SourceBinding{Alias: "hero", Location: "a/b"}.FileSystemAlias())
	assert.Equal(t, "media_hero_image", domain.SourceBinding{Location: "media/hero/image"}.FileSystemAlias())
}
