package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	PlainText *string `json:"plainText" validate:"required"`
	Hash      *string `json:"hash,omitempty" validate:"required"`
}

func TestValidate_RequiresPresenceNotContent(t *testing.T) {
	v := New()
	empty := ""

	assert.NoError(t, v.Validate(&sample{PlainText: &empty, Hash: &empty}))

	err := v.Validate(&sample{PlainText: &empty})
	require.Error(t, err)
	assert.Equal(t, []string{"hash is required"}, Describe(err))

	err = v.Validate(&sample{})
	assert.ElementsMatch(t, []string{"plainText is required", "hash is required"}, Describe(err))
}

func TestDescribe_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Describe(assert.AnError))
}
