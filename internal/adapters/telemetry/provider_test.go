package telemetry_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/assetimport/internal/adapters/telemetry"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/assetimport/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
}

func TestOTelTracer_Start(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := telemetry.NewProvider(recorder)
	tracer := telemetry.NewOTelTracer(tp)

	ctx, parent := tracer.Start(t.Context(), "import",
		ports.WithAttribute("content.type", "article"),
		ports.WithAttribute("transformations", 2),
	)
	_, child := tracer.Start(ctx, "fetch full")
	child.SetAttribute("target", "article/hero/a1/original.png")
	child.SetAttribute("pending", true)
	child.RecordError(errors.New("boom"))
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	fetch, imp := spans[0], spans[1]
	assert.Equal(t, "fetch full", fetch.Name())
	assert.Equal(t, imp.SpanContext().SpanID(), fetch.Parent().SpanID())
	assert.Equal(t, codes.Error, fetch.Status().Code)
	assert.Equal(t, "boom", fetch.Status().Description)
	assert.Contains(t, fetch.Attributes(), attribute.String("target", "article/hero/a1/original.png"))
	assert.Contains(t, fetch.Attributes(), attribute.Bool("pending", true))
	require.Len(t, fetch.Events(), 1)

	assert.Equal(t, "import", imp.Name())
	assert.Contains(t, imp.Attributes(), attribute.String("content.type", "article"))
	assert.Contains(t, imp.Attributes(), attribute.Int("transformations", 2))
	assert.Equal(t, codes.Unset, imp.Status().Code)

	require.NoError(t, telemetry.Shutdown(tp, time.Second))
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(recorder))

	_, span := tracer.Start(t.Context(), "noop")
	span.RecordError(nil)
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(telemetry.NewLogBridge(log)))

	var messages []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)

	_, ok := tracer.Start(t.Context(), "verify")
	ok.End()

	_, failed := tracer.Start(t.Context(), "fetch")
	failed.RecordError(errors.New("remote unavailable"))
	failed.End()

	require.Len(t, messages, 2)
	assert.True(t, strings.HasPrefix(messages[0], "verify took "), messages[0])
	assert.True(t, strings.HasPrefix(messages[1], "fetch failed after "), messages[1])
	assert.True(t, strings.HasSuffix(messages[1], ": remote unavailable"), messages[1])
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := t.Context()
	got, span := tracer.Start(ctx, "test-span", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
