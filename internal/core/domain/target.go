package domain

import (
	"path"
	"strings"
)

// TargetInput carries everything the path of an imported file depends on.
type TargetInput struct {
	ContentType      string
	Alias            string
	AssetID          string
	AssetPath        string
	Task             string
	ParameterSummary string
	Extension        string
}

// Target is the resolved location of an imported file relative to the import root.
type Target struct {
	// Dir is contentType/alias/normalizedAssetID.
	Dir string
	// FileName is the file name inside Dir.
	FileName string
	// Placeholder is the marker file name inside Dir.
	Placeholder string
	// DeferredExtension is set when FileName still lacks the extension of the remote asset.
	DeferredExtension bool
}

// ResolveTarget computes the target of an import. It is a pure function of its input.
func ResolveTarget(in TargetInput) Target {
	dir := path.Join(in.ContentType, in.Alias, NormalizeAssetID(in.AssetID))
	noop := in.Task == NoopTask || in.Task == ""

	var name string
	deferred := false
	switch {
	case in.AssetPath == "" && noop:
		name = DefaultBaseName
		deferred = true
	case in.AssetPath == "":
		name = in.Task + in.ParameterSummary + "." + in.Extension
	case noop:
		name = path.Base(in.AssetPath)
	default:
		name = path.Base(in.AssetPath) + "_" + in.Task + in.ParameterSummary + "." + in.Extension
	}

	return Target{
		Dir:               dir,
		FileName:          name,
		Placeholder:       PlaceholderName(name),
		DeferredExtension: deferred,
	}
}

// WithExtension completes a deferred file name. The placeholder is left untouched
// so every caller racing on the same deferred target contends for the same marker.
func (t Target) WithExtension(ext string) Target {
	if !t.DeferredExtension {
		return t
	}
	t.FileName = DefaultBaseName + "." + strings.TrimPrefix(ext, ".")
	t.DeferredExtension = false
	return t
}

// RelPath returns the file path relative to the import root.
func (t Target) RelPath() string {
	return path.Join(t.Dir, t.FileName)
}

// PlaceholderRelPath returns the marker path relative to the import root.
func (t Target) PlaceholderRelPath() string {
	return path.Join(t.Dir, t.Placeholder)
}

// NormalizeAssetID keeps only the ASCII letters and digits of an asset id.
func NormalizeAssetID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, id)
}
