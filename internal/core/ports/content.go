package ports

//go:generate mockgen -source=content.go -destination=mocks/mock_content.go -package=mocks

// ContentDocument is a record of the content repository.
type ContentDocument interface {
	// ContentType returns the type of the record.
	ContentType() string
	// Select returns the fields found at a location expression.
	Select(location string) []ContentField
}

// ContentField is one field of a content record that references an asset.
type ContentField interface {
	// Value returns the text found at a location relative to the field, or "" if absent.
	Value(location string) string
	// Annotate records where the transformed file named name is served and whether it is ready.
	Annotate(name, url string, ready bool)
}

// ContentRepository loads and stores content records.
type ContentRepository interface {
	Open(path string) (ContentDocument, error)
	Save(path string, doc ContentDocument) error
}
