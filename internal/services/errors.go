package services

import (
	"errors"

	"catalog-api/internal/apperrors"
	"catalog-api/internal/repositories"
	"catalog-api/internal/requests"
)

// classify passes taxonomy errors through and turns anything else (driver,
// begin or commit failures) into wrap's persistence error.
func classify(err error, wrap func(error) *apperrors.PersistenceError) error {
	var (
		vErr *apperrors.ValidationError
		cErr *apperrors.ConflictError
		nErr *apperrors.NotFoundError
		pErr *apperrors.PersistenceError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &vErr), errors.As(err, &cErr), errors.As(err, &nErr), errors.As(err, &pErr):
		return err
	}
	return wrap(err)
}

func couldNotAdd(entity string) func(error) *apperrors.PersistenceError {
	return func(err error) *apperrors.PersistenceError { return apperrors.CouldNotAdd(entity, err) }
}

func couldNotUpdate(entity string) func(error) *apperrors.PersistenceError {
	return func(err error) *apperrors.PersistenceError { return apperrors.CouldNotUpdate(entity, err) }
}

// column pairs an updatable column with the caller's value for it.
type column struct {
	name    string
	value   requests.Field
	convert func(requests.Field) (any, error)
}

// changesFrom keeps the columns whose value is present and not blank. None
// left is a "nothing to update" validation error; a value that does not
// convert to its column type is returned as is.
func changesFrom(cols ...column) (repositories.Changes, error) {
	changes := repositories.Changes{}
	for _, col := range cols {
		if col.value.Blank() {
			continue
		}
		v, err := col.convert(col.value)
		if err != nil {
			return nil, err
		}
		changes[col.name] = v
	}
	if len(changes) == 0 {
		return nil, apperrors.NothingToUpdate()
	}
	return changes, nil
}

func asText(f requests.Field) (any, error) { return f.String(), nil }

func asInt(f requests.Field) (any, error) { return f.Int64() }

func asDecimal(f requests.Field) (any, error) { return f.Decimal() }

func asBool(f requests.Field) (any, error) { return f.Bool() }
