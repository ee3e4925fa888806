package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Report summarizes a bulk import.
type Report struct {
	Fields  int `json:"fields"`
	Ready   int `json:"ready"`
	Pending int `json:"pending"`
	Failed  int `json:"failed"`
}

type annotation struct {
	field  ports.ContentField
	result domain.ImportResult
}

// ImportDocument imports the assets referenced by every bound field of doc and
// annotates each field with the URL and readiness of its transformed files.
//
// A failing import is logged and leaves its field unannotated; the others proceed.
// Their errors are joined into the returned error.
func (i *Importer) ImportDocument(
	ctx context.Context,
	doc ports.ContentDocument,
	usageContext string,
	locale domain.Locale,
) (Report, error) {
	ctx, span := i.tracer.Start(ctx, "import document",
		ports.WithAttribute("content.type", doc.ContentType()),
		ports.WithAttribute("context", usageContext),
		ports.WithAttribute("locale", locale.String()),
	)
	defer span.End()

	bindings, err := i.catalog.Resolve(ctx, doc.ContentType(), usageContext)
	if err != nil {
		span.RecordError(err)
		return Report{}, err
	}

	var (
		report Report
		fields int
		mu     sync.Mutex
		errs   []error
		slots  [][]annotation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for _, binding := range bindings {
		if binding.AssetIDLocation == "" {
			err := zerr.Wrap(domain.ErrInvalidCatalogEntry, "binding has no asset id location")
			i.logger.Error(zerr.With(err, "location", binding.Location))
			continue
		}

		for _, field := range doc.Select(locale.Localize(binding.Location)) {
			ref := domain.AssetReference{ID: field.Value(binding.AssetIDLocation)}
			if binding.AssetPathLocation != "" {
				ref.Path = field.Value(binding.AssetPathLocation)
			}
			fields++
			i.metrics.fields.Inc()

			if ref.ID == "" {
				i.logger.Debug(fmt.Sprintf("skipping %s: no asset id", binding.Location))
				continue
			}

			slot := make([]annotation, len(binding.Transformations))
			slots = append(slots, slot)

			for n, t := range binding.Transformations {
				g.Go(func() error {
					res, err := i.ImportTransformation(gctx, binding, ref, t)

					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						err = zerr.With(zerr.With(err, "transformation", t.Name), "asset", ref.ID)
						i.logger.Error(err)
						errs = append(errs, err)
						report.Failed++
						return nil
					}
					slot[n] = annotation{field: field, result: res}
					if res.Pending {
						report.Pending++
					} else {
						report.Ready++
					}
					return nil
				})
			}
		}
	}
	_ = g.Wait()
	report.Fields = fields

	// Fields are annotated in document order once every decision is made.
	for _, slot := range slots {
		for _, a := range slot {
			if a.field == nil {
				continue
			}
			a.field.Annotate(a.result.Name, a.result.URL, a.result.Ready())
		}
	}

	err = errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
	}
	span.SetAttribute("fields", report.Fields)
	return report, err
}
