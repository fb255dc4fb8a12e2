package services

import (
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/repository"
)

// repoError translates repository failures into application errors
func repoError(err error, what, operation string) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return errors.NotFound(what+" not found", err).WithOperation(operation)
	case stderrors.Is(err, repository.ErrDuplicate):
		return errors.Conflict(what+" already exists", err).WithOperation(operation)
	case stderrors.Is(err, repository.ErrStaleState):
		return errors.Conflict(what+" was changed by another request", err).WithOperation(operation)
	default:
		return errors.DatabaseError("failed to access "+what, err).WithOperation(operation)
	}
}

func parseID(id, what, operation string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.InvalidInput("invalid "+what+" ID", err).WithOperation(operation)
	}
	return parsed, nil
}
