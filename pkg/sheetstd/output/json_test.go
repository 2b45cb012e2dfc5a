package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	v := map[string]string{"label": "Option (A) <b>"}

	compact, err := ToJSON(v, false)
	require.NoError(t, err)
	assert.Equal(t, `{"label":"Option (A) <b>"}`, string(compact))

	pretty, err := ToJSON(v, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"label\": \"Option (A) <b>\"\n}", string(pretty))
}
