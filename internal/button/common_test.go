package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonNames(t *testing.T) {
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "B", B.String())
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "Y", Y.String())
	assert.Equal(t, "Button(7)", Button(7).String())
}
