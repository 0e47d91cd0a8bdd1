package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFor_AllLanguagesConstructible(t *testing.T) {
	t.Parallel()

	ids := Languages()
	require.Len(t, ids, 11)

	for _, id := range ids {
		ex, err := New(id)
		require.NoError(t, err, "language %s", id)
		assert.Equal(t, id, ex.Language())
		require.NotEmpty(t, ex.Config().ClassTypes, "language %s", id)
		require.NotEmpty(t, ex.Config().MethodTypes, "language %s", id)
	}
}

func TestConfigFor_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ConfigFor("fortran")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}
