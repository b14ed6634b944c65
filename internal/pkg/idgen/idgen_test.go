package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/superstar-draft/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("session")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "session_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "session_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("session")
	assert.Equal(t, "session_1", gen.Generate())
	assert.Equal(t, "session_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
