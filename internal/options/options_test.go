package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	level    int
	name     string
	verified bool
}

func (c *codecConfig) setLevel(level int) error {
	if level < 0 {
		return errors.New("level cannot be negative")
	}
	c.level = level

	return nil
}

func TestNew(t *testing.T) {
	config := &codecConfig{}

	t.Run("applies the function", func(t *testing.T) {
		opt := New(func(c *codecConfig) error {
			return c.setLevel(3)
		})

		require.NoError(t, opt.apply(config))
		require.Equal(t, 3, config.level)
	})

	t.Run("propagates errors", func(t *testing.T) {
		opt := New(func(c *codecConfig) error {
			return c.setLevel(-1)
		})

		err := opt.apply(config)
		require.Error(t, err)
		require.Contains(t, err.Error(), "level cannot be negative")
	})
}

func TestNoError(t *testing.T) {
	config := &codecConfig{}

	opt := NoError(func(c *codecConfig) {
		c.name = "zstd"
	})

	require.NoError(t, opt.apply(config))
	require.Equal(t, "zstd", config.name)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		config := &codecConfig{}

		err := Apply(config,
			NoError(func(c *codecConfig) { c.name = "first" }),
			NoError(func(c *codecConfig) { c.name = "second" }),
			NoError(func(c *codecConfig) { c.verified = true }),
		)

		require.NoError(t, err)
		require.Equal(t, "second", config.name)
		require.True(t, config.verified)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		config := &codecConfig{}

		err := Apply(config,
			New(func(c *codecConfig) error { return c.setLevel(-1) }),
			NoError(func(c *codecConfig) { c.verified = true }),
		)

		require.Error(t, err)
		require.False(t, config.verified)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		config := &codecConfig{}
		require.NoError(t, Apply(config))
	})
}
