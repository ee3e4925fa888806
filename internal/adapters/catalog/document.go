// Package catalog reads the transformation catalog document and watches it for changes.
package catalog

import (
	"errors"
	"strings"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Document represents the structure of the transformation catalog file.
type Document struct {
	Sources []SourceDTO `yaml:"sources"`
}

// SourceDTO groups the bound fields of one content type in one usage context.
type SourceDTO struct {
	ContentType string     `yaml:"contentType"`
	Context     string     `yaml:"context"`
	Assets      []AssetDTO `yaml:"assets"`
}

// AssetDTO binds a field location to its transformations.
type AssetDTO struct {
	Location          string              `yaml:"location"`
	Alias             string              `yaml:"alias"`
	AssetIDLocation   string              `yaml:"assetIdLocation"`
	AssetPathLocation string              `yaml:"assetPathLocation"`
	Transformations   []TransformationDTO `yaml:"transformations"`
}

// TransformationDTO is a named transformation recipe.
type TransformationDTO struct {
	Name       string         `yaml:"name"`
	Task       string         `yaml:"task"`
	Extension  string         `yaml:"extension"`
	Parameters []ParameterDTO `yaml:"parameters"`
}

// ParameterDTO is one ordered runtime parameter.
type ParameterDTO struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Parse decodes a catalog document into a catalog index.
//
// Bindings without an asset id location are kept; they are reported when used.
func Parse(data []byte) (*domain.Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(domain.ErrCatalogParseFailed, err)
	}

	var bindings []domain.SourceBinding
	for i := range doc.Sources {
		src := &doc.Sources[i]
		if src.ContentType == "" || src.Context == "" {
			err := zerr.Wrap(domain.ErrInvalidCatalogEntry, "source needs a content type and a context")
			return nil, zerr.With(err, "source", i)
		}

		for j := range src.Assets {
			binding, err := toBinding(src, &src.Assets[j])
			if err != nil {
				return nil, zerr.With(err, "source", domain.CatalogKey{
					ContentType: src.ContentType,
					Context:     src.Context,
				}.String())
			}
			bindings = append(bindings, binding)
		}
	}
	return domain.NewCatalog(bindings), nil
}

func toBinding(src *SourceDTO, asset *AssetDTO) (domain.SourceBinding, error) {
	if asset.Location == "" {
		return domain.SourceBinding{}, zerr.Wrap(domain.ErrInvalidCatalogEntry, "asset has no location")
	}

	binding := domain.SourceBinding{
		ContentType:       src.ContentType,
		Context:           src.Context,
		Location:          asset.Location,
		Alias:             asset.Alias,
		AssetIDLocation:   asset.AssetIDLocation,
		AssetPathLocation: asset.AssetPathLocation,
	}

	seen := make(map[string]bool, len(asset.Transformations))
	for _, dto := range asset.Transformations {
		if dto.Name == "" {
			err := zerr.Wrap(domain.ErrInvalidCatalogEntry, "transformation has no name")
			return domain.SourceBinding{}, zerr.With(err, "location", asset.Location)
		}
		if seen[dto.Name] {
			err := zerr.Wrap(domain.ErrInvalidCatalogEntry, "duplicate transformation name")
			return domain.SourceBinding{}, zerr.With(zerr.With(err, "location", asset.Location), "name", dto.Name)
		}
		seen[dto.Name] = true

		t := domain.TransformationDescriptor{
			Name:      dto.Name,
			Task:      dto.Task,
			Extension: strings.TrimPrefix(dto.Extension, "."),
		}
		if t.Task == "" {
			t.Task = domain.NoopTask
		}
		for _, p := range dto.Parameters {
			t.Parameters = append(t.Parameters, domain.RuntimeParameter{Name: p.Name, Value: p.Value})
		}
		binding.Transformations = append(binding.Transformations, t)
	}
	return binding, nil
}
