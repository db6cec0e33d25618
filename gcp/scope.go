package gcp

import (
	"fmt"
	"strings"
)

// Scope bounds an asset search: an organization, folder or project.
type Scope struct {
	Type string
	ID   string
}

// ParseScope validates a raw scope string of the form organizations/<id>,
// folders/<id> or projects/<id>.
func ParseScope(raw string) (Scope, error) {
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return Scope{}, fmt.Errorf("%w: %q must be organizations/<id>, folders/<id> or projects/<id>", ErrInvalidScope, raw)
	}
	scopeType := parts[0]
	id := strings.TrimSpace(parts[1])
	if id == "" || strings.Contains(id, "/") {
		return Scope{}, fmt.Errorf("%w: %q has an empty or malformed identifier", ErrInvalidScope, raw)
	}
	switch scopeType {
	case "organizations", "folders", "projects":
		return Scope{Type: scopeType, ID: id}, nil
	default:
		return Scope{}, fmt.Errorf("%w: unknown scope type %q", ErrInvalidScope, scopeType)
	}
}

func (s Scope) String() string {
	return s.Type + "/" + s.ID
}

// Kind maps the scope type onto the node kind used when the root has to be
// synthesized.
func (s Scope) Kind() NodeKind {
	switch s.Type {
	case "folders":
		return KindFolder
	case "projects":
		return KindProject
	default:
		return KindOrganization
	}
}
