package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meet-mock/errors"
	"github.com/johnquangdev/meet-mock/internal/domain/entities"
)

// ParticipantKey is the echo context key RequireParticipant stores under
const ParticipantKey = "participant"

// ParticipantFinder resolves a participant by ID
type ParticipantFinder interface {
	GetParticipant(ctx context.Context, id string) (*entities.Participant, error)
}

// ErrorResponder writes an error response for a failed request
type ErrorResponder func(c echo.Context, err error) error

// RequireParticipant middleware: resolve :id to a participant before the
// handler runs. Failures go through respond so they share the API's error
// envelope; a nil respond hands them to echo's error handler.
func RequireParticipant(finder ParticipantFinder, respond ErrorResponder) echo.MiddlewareFunc {
	if respond == nil {
		respond = func(_ echo.Context, err error) error { return err }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param("id")
			if id == "" {
				return respond(c, errors.ErrInvalidArgument("participant ID is required"))
			}

			participant, err := finder.GetParticipant(c.Request().Context(), id)
			if err != nil {
				return respond(c, err)
			}

			c.Set(ParticipantKey, participant)
			return next(c)
		}
	}
}

// Participant returns the participant resolved by RequireParticipant
func Participant(c echo.Context) (*entities.Participant, bool) {
	p, ok := c.Get(ParticipantKey).(*entities.Participant)
	return p, ok
}
