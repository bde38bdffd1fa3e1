// Package resource shapes models into the JSON the API returns. A resource
// decides which fields leave the process and how they are formatted:
//
//	type AccountResource struct{}
//	func (AccountResource) ToArray(a models.Account) resource.Map {
//	    return resource.Map{"id": a.ID, "fullname": a.Fullname, "email": a.Email}
//	}
//
//	c.Success(resource.New(AccountResource{}, account))
//	c.Success(resource.Collection(HostingResource{}, hostings))
package resource

import (
	"encoding/json"
	"time"
)

// Map is the output of ToArray.
type Map = map[string]any

// Transformer converts one model into a Map.
type Transformer[T any] interface {
	ToArray(v T) Map
}

// Resource wraps a single model with its transformer.
type Resource[T any] struct {
	transformer Transformer[T]
	data        T
}

func New[T any](t Transformer[T], data T) *Resource[T] {
	return &Resource[T]{transformer: t, data: data}
}

// Map returns the transformed model.
func (r *Resource[T]) Map() Map { return r.transformer.ToArray(r.data) }

func (r *Resource[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// Collection transforms every item. An empty input renders as [] not null.
func Collection[T any](t Transformer[T], items []T) []Map {
	out := make([]Map, 0, len(items))
	for _, item := range items {
		out = append(out, t.ToArray(item))
	}
	return out
}

// Time renders t in loc as RFC 3339. A zero time renders as "".
func Time(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.RFC3339)
}
