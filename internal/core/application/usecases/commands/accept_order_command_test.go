package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/core/application/usecases/commands"
)

func TestNewAcceptOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewAcceptOrderCommand("token", "123456", []byte{1, 2, 3})
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "token", cmd.URL())
		assert.Equal(t, "123456", cmd.Code())
	})

	t.Run("should reject an empty url", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand("", "123456", []byte{1})
		require.Error(t, err)
	})

	t.Run("should reject an empty code", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand("token", "", []byte{1})
		require.Error(t, err)
	})

	t.Run("should reject an empty signature", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand("token", "123456", nil)
		require.Error(t, err)
	})

	t.Run("should collect all violations at once", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand("", "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url")
		assert.Contains(t, err.Error(), "code")
		assert.Contains(t, err.Error(), "signature")
	})

	t.Run("should reject a zero-value command on Validate", func(t *testing.T) {
		var cmd commands.AcceptOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAcceptOrderCommandIsNotConstructed)
	})
}
