package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSDPType(t *testing.T) {
	for _, name := range []string{"offer", "pranswer", "answer", "rollback"} {
		typ, err := ParseSDPType(name)
		require.NoError(t, err)
		assert.Equal(t, name, typ.String())
	}

	_, err := ParseSDPType("Offer")
	require.ErrorIs(t, err, ErrParse)
}

func TestNewDescription(t *testing.T) {
	sess, err := Parse(scenario)
	require.NoError(t, err)

	d := NewDescription(SDPTypeOffer, sess)
	assert.Equal(t, SDPTypeOffer, d.Type)
	assert.Equal(t, sess.String(), d.SDP)
	assert.Same(t, sess, d.Session)

	d = NewDescription(SDPTypeRollback, nil)
	assert.Empty(t, d.SDP)
	assert.Nil(t, d.Session)
}

func TestParseDescription(t *testing.T) {
	d, err := ParseDescription(SDPTypeAnswer, scenario)
	require.NoError(t, err)
	assert.Equal(t, SDPTypeAnswer, d.Type)
	assert.Equal(t, "jdoe", d.Session.Origin.Username)
	assert.Equal(t, d.Session.String(), d.SDP)

	d, err = ParseDescription(SDPTypeRollback, "")
	require.NoError(t, err)
	assert.Nil(t, d.Session)

	_, err = ParseDescription(SDPTypeOffer, "")
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "offer description")

	_, err = ParseDescription("bogus", scenario)
	require.ErrorIs(t, err, ErrParse)
}
