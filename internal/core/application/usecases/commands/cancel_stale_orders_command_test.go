package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCancelStaleOrdersCommand(24 * time.Hour)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 24*time.Hour, cmd.OlderThan())
	})

	t.Run("rejects_zero_age", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_age", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(-time.Hour)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CancelStaleOrdersCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	})
}
