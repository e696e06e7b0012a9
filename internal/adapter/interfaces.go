// Package adapter provides transport-layer abstractions for communicating
// with the remote surgery case service.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
// Transport-level failures (refused connections, DNS, timeouts) are returned
// unwrapped from the HTTP client so the network classifier can inspect their
// original message text.
package adapter

import (
	"context"

	"github.com/vetward/vetward/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// surgery case service. Implementations are responsible for serialisation,
// authentication header management, and mapping server rejections to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates against the remote service. On success it stores
	// the returned bearer token via SetToken and returns the session with
	// the principal extracted from the token's subject claim.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// CreateCase creates a new surgery case and returns the authoritative
	// record, including the server-assigned id.
	CreateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error)

	// GetCase fetches a single case by its authoritative id.
	GetCase(ctx context.Context, id int64) (models.SurgeryCase, error)

	// ListCases fetches every case visible to the authenticated principal.
	ListCases(ctx context.Context) ([]models.SurgeryCase, error)

	// UpdateCase merges the submitted fields into the case identified by
	// c.ID and returns the updated record. Last write wins; there is no
	// optimistic-concurrency token.
	UpdateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error)

	// DeleteCase removes the case identified by id.
	DeleteCase(ctx context.Context, id int64) error

	// ToggleCaseField flips the named checklist flag on the case and
	// returns the updated record.
	ToggleCaseField(ctx context.Context, id int64, field models.CaseField) (models.SurgeryCase, error)

	// AddTodo appends a to-do item to the case and returns the created item
	// with its server-assigned id.
	AddTodo(ctx context.Context, caseID int64, text string) (models.TodoItem, error)

	// ToggleTodo flips the done flag of a to-do item and returns the
	// updated item.
	ToggleTodo(ctx context.Context, caseID, todoID int64) (models.TodoItem, error)

	// DeleteTodo removes a to-do item from the case.
	DeleteTodo(ctx context.Context, caseID, todoID int64) error

	// ExportCases downloads every case in the requested format
	// ("csv" or "json") as raw bytes. Online-only; never queued.
	ExportCases(ctx context.Context, format string) ([]byte, error)

	// ImportCases uploads a bulk payload in the requested format and
	// returns the number of imported records. Online-only; never queued.
	ImportCases(ctx context.Context, format string, data []byte) (int, error)
}
