package ports

import "context"

// ListStore is the uniform list-persistence contract every domain accessor
// goes through. Read unmarshals the list stored under key into out (a pointer
// to a slice); Write replaces the full list. Errors are explicit so the
// caller decides whether degradation is acceptable at its call site.
type ListStore interface {
	Read(ctx context.Context, key string, out any) error
	Write(ctx context.Context, key string, data any) error
}
