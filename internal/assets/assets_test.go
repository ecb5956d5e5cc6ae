package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ContainsPageAssets(t *testing.T) {
	static := Static()

	for _, name := range []string{
		"styles.css",
		"js/waitlist.js",
		"images/favicon.svg",
		"images/check.svg",
		"images/screenshot-inventory.svg",
		"images/screenshot-expiry.svg",
		"images/badge-app-store.svg",
		"images/badge-google-play.svg",
	} {
		t.Run(name, func(t *testing.T) {
			data, err := fs.ReadFile(static, name)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}
