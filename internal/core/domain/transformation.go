package domain

import "strings"

// NoopTask is the task identifier meaning "return the asset unmodified".
const NoopTask = "(None)"

// RuntimeParameter is one named value passed to a transformation task.
type RuntimeParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TransformationDescriptor is a named recipe loaded from the catalog.
type TransformationDescriptor struct {
	Name       string             `json:"name"`
	Task       string             `json:"task"`
	Extension  string             `json:"extension,omitempty"`
	Parameters []RuntimeParameter `json:"parameters,omitempty"`
}

// IsNoop reports whether the descriptor returns the asset unmodified.
func (t TransformationDescriptor) IsNoop() bool {
	return t.Task == NoopTask || t.Task == ""
}

// ParameterSummary joins the parameter values in declaration order, each prefixed with "_".
func (t TransformationDescriptor) ParameterSummary() string {
	var sb strings.Builder
	for _, p := range t.Parameters {
		sb.WriteByte('_')
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// SourceBinding groups the transformations applied to one field location
// of a content type in a usage context.
type SourceBinding struct {
	ContentType       string
	Context           string
	Location          string
	Alias             string
	AssetIDLocation   string
	AssetPathLocation string
	Transformations   []TransformationDescriptor
}

// FileSystemAlias returns the directory name for the binding.
// It falls back to the location with slashes replaced.
func (b SourceBinding) FileSystemAlias() string {
	if b.Alias != "" {
		return b.Alias
	}
	return strings.ReplaceAll(b.Location, "/", "_")
}
