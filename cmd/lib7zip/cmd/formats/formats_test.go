package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lib7zip/pkg/archive"
)

func TestFlagString(t *testing.T) {
	assert.Equal(t, "-", flagString(0))
	assert.Equal(t, "keep-name", flagString(archive.FlagKeepName))
	assert.Equal(t, "find-sig,multi-sig", flagString(archive.FlagFindSignature|archive.FlagMultiSignature))
}
