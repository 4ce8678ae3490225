package httperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	// KindValidation maps to 400 Bad Request.
	KindValidation Kind = iota
	// KindNotFound maps to 404 Not Found.
	KindNotFound
	// KindDependency maps to 500 Internal Server Error.
	KindDependency
)

// Error is a classified error with a user-facing message and an optional
// detail line (e.g. the failing table name or the underlying cause).
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a 400-class error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound creates a 404-class error.
func NotFound(message, detail string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Detail: detail}
}

// Dependency wraps a store failure into a 500-class error.
func Dependency(message string, err error) *Error {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return &Error{Kind: KindDependency, Message: message, Detail: detail, Err: err}
}

// Dependencyf wraps a store failure with a formatted detail line.
func Dependencyf(message string, format string, args ...any) *Error {
	return &Error{Kind: KindDependency, Message: message, Detail: fmt.Sprintf(format, args...)}
}

// Status returns the HTTP status code for an error kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes err as a structured JSON response. Unclassified errors
// are treated as dependency failures.
func Respond(c *fiber.Ctx, err error) error {
	var he *Error
	if !errors.As(err, &he) {
		he = Dependency("Erro interno no servidor", err)
	}

	body := fiber.Map{"mensagem": he.Message}
	if he.Detail != "" {
		body["detalhe"] = he.Detail
	}
	return c.Status(he.Kind.Status()).JSON(body)
}
