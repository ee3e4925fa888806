// Package domain contains the core types of the asset importer.
package domain

import (
	"strings"
	"time"
)

// AssetReference points at a remote asset.
// ID is authoritative; Path is only consulted when ID is empty or does not resolve.
type AssetReference struct {
	ID   string `json:"id,omitempty"`
	Path string `json:"path,omitempty"`
}

// IsZero reports whether the reference names nothing.
func (r AssetReference) IsZero() bool {
	return r.ID == "" && r.Path == ""
}

// SplitPath splits the reference path into its container path and asset name.
// The container part is everything before the last slash.
func (r AssetReference) SplitPath() (container, name string) {
	idx := strings.LastIndex(r.Path, "/")
	if idx < 0 {
		return "", r.Path
	}
	return r.Path[:idx], r.Path[idx+1:]
}

// RemoteAsset is the asset service's view of an asset.
type RemoteAsset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Deleted    bool      `json:"deleted"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Extension returns the part of the asset name after the last dot.
func (a RemoteAsset) Extension() string {
	idx := strings.LastIndex(a.Name, ".")
	if idx < 0 || idx == len(a.Name)-1 {
		return ""
	}
	return a.Name[idx+1:]
}

// Container is a folder on the asset service.
type Container struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}
