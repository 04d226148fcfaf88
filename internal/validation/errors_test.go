package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.Err())

	errs.Add("name", MsgRequired)
	errs.Add("description", MsgBlank)
	errs.Add("name", "Ensure this field has no more than 100 characters.")

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t,
		"validation failed: description: This field may not be blank.; name: This field is required. Ensure this field has no more than 100 characters.",
		err.Error())

	var target Errors
	require.True(t, errors.As(err, &target))
	assert.Len(t, target["name"], 2)
}
