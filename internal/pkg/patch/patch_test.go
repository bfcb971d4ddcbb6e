//go:build unit

package patch_test

import (
	"testing"

	"pharmashift/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := "late train"
	assert.Equal(t, "late train", patch.Coalesce(&v, ""))
	assert.Equal(t, "", patch.Coalesce[string](nil, ""))
	assert.Equal(t, 3, patch.Coalesce[int](nil, 3))
}

func TestTrimmedOrNil(t *testing.T) {
	blank := "   "
	padded := "  sick  "

	assert.Nil(t, patch.TrimmedOrNil(nil))
	assert.Nil(t, patch.TrimmedOrNil(&blank))
	if got := patch.TrimmedOrNil(&padded); assert.NotNil(t, got) {
		assert.Equal(t, "sick", *got)
	}
}
