package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	driverErr := errors.New(`duplicate key value violates unique constraint "companies_company_name_key"`)

	assert.Equal(t, "company_name is a required field", Required("company_name").Error())
	assert.Equal(t, "nothing to update", NothingToUpdate().Error())
	assert.Equal(t, "Company already exists", (&ConflictError{Entity: "Company"}).Error())
	assert.Equal(t, "product not found", (&NotFoundError{Entity: "product"}).Error())
	assert.Equal(t, "Product could not be added", CouldNotAdd("Product", driverErr).Message)
	assert.Equal(t, "Warranty could not be updated", CouldNotUpdate("Warranty", driverErr).Message)
}

func TestUnwrap(t *testing.T) {
	driverErr := errors.New("connection reset")
	wrapped := fmt.Errorf("update company 3: %w", CouldNotUpdate("Company", driverErr))

	var pErr *PersistenceError
	assert.True(t, errors.As(wrapped, &pErr))
	assert.ErrorIs(t, wrapped, driverErr)

	var nErr *NotFoundError
	assert.False(t, errors.As(wrapped, &nErr))
}
