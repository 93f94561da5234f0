package model

import (
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/SeaCloudHub/eventually/pkg/validation"
)

type ListTypesRequest struct {
	Strict string `query:"strict" validate:"omitempty,oneof=true false"`
}

func (r *ListTypesRequest) Validate() error {
	return validation.Validate().Struct(r)
}

// Matches reports whether a type with the given strict flag passes the
// filter.
func (r *ListTypesRequest) Matches(strict bool) bool {
	switch r.Strict {
	case "true":
		return strict
	case "false":
		return !strict
	}

	return true
}

type EventResponse struct {
	Name  string `json:"name"`
	Arity *int   `json:"arity"`
}

type DeclarationResponse struct {
	Type         string          `json:"type"`
	Strict       bool            `json:"strict"`
	MaxListeners int             `json:"max_listeners"`
	Events       []EventResponse `json:"events"`
}

func NewDeclarationResponse(decl *event.Declaration) DeclarationResponse {
	names := decl.Events()
	events := make([]EventResponse, 0, len(names))
	for _, name := range names {
		evt := EventResponse{Name: name}
		if policy, ok := decl.PolicyOf(name); ok {
			if n, exact := policy.Expected(); exact {
				evt.Arity = &n
			}
		}
		events = append(events, evt)
	}

	return DeclarationResponse{
		Type:         decl.Name(),
		Strict:       decl.IsStrict(),
		MaxListeners: decl.MaxListeners(),
		Events:       events,
	}
}
