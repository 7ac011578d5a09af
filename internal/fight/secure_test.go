package fight

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFightID_IsVersion7(t *testing.T) {
	id, err := newFightID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewSecureID_Layout(t *testing.T) {
	now := time.UnixMilli(1_712_345_678_901)
	s, err := newSecureID(now)
	require.NoError(t, err)

	v, err := strconv.ParseUint(s, 10, 64)
	require.NoError(t, err)
	assert.Equal(t, uint64(now.UnixMilli()), v>>16)
}

func TestSecureIDMatches(t *testing.T) {
	assert.True(t, secureIDMatches("12345", "12345"))
	assert.False(t, secureIDMatches("12345", "12346"))
	assert.False(t, secureIDMatches("12345", ""))
}
