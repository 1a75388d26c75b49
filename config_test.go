package inkling_test

import (
	"testing"
	"time"

	"github.com/fwojciec/inkling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() inkling.Config {
		c := inkling.DefaultConfig()
		c.DocumentURL = "https://example.com/export"
		return c
	}

	t.Run("defaults with document URL are valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("document URL required", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.DocumentURL = ""
		assert.Equal(t, inkling.EINVALID, inkling.ErrorCode(c.Validate()))
	})

	t.Run("negative send interval rejected", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.SendInterval = -time.Second
		assert.Equal(t, inkling.EINVALID, inkling.ErrorCode(c.Validate()))
	})

	t.Run("zero progress interval rejected", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.ProgressEvery = 0
		assert.Equal(t, inkling.EINVALID, inkling.ErrorCode(c.Validate()))
	})

	t.Run("subscriptions require a form action", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.AllowSubscribe = true
		assert.Equal(t, inkling.EINVALID, inkling.ErrorCode(c.Validate()))

		c.SubscribeURL = "https://example.com/subscribe"
		assert.NoError(t, c.Validate())
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c := inkling.DefaultConfig()

	assert.Equal(t, inkling.DefaultSiteTitle, c.SiteTitle)
	assert.Equal(t, 1200*time.Millisecond, c.SendInterval)
	assert.Equal(t, 20, c.ProgressEvery)
	assert.True(t, c.ShowBrowserBanner)
	assert.Contains(t, c.AuthHosts, "docs.google.com")
}
