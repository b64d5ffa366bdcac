package sgdata_test

import (
	"testing"

	"github.com/AndrewDonelson/sgdata"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_SameContentAcrossKinds(t *testing.T) {
	content := []byte("scatter gather payload")
	want := digest.FromBytes(content)

	single := sgdata.FromBytes(content)
	split := sgdata.FromBuffers([][]byte{content[:7], content[7:]})
	asList := sgdata.FromList(listOf([][]byte{content[:7], content[7:]}))
	asElems := sgdata.FromElements(regionOf(content[:7]), regionOf(content[7:]))

	assert.Equal(t, want, single.Digest())
	assert.Equal(t, want, split.Digest())
	assert.Equal(t, want, asList.Digest())
	assert.Equal(t, want, asElems.Digest())
}

func TestDigest_ZeroRun(t *testing.T) {
	// 4097 crosses a zero-block boundary.
	want := digest.FromBytes(make([]byte, 4097))
	assert.Equal(t, want, sgdata.FromElements(sgdata.Zero(4097)).Digest())
}

func TestDigest_EmptyPayload(t *testing.T) {
	want := digest.FromBytes(nil)
	var d sgdata.Data
	assert.Equal(t, want, d.Digest())
	assert.Equal(t, want, sgdata.FromBuffers(nil).Digest())
}

func TestDigest_SurvivesTransport(t *testing.T) {
	orig := sgdata.FromElements(regionOf([]byte{1, 2, 3}), sgdata.Zero(8))

	wire, err := sgdata.Marshal(orig)
	require.NoError(t, err)
	got, err := sgdata.Unmarshal(wire)
	require.NoError(t, err)

	assert.Equal(t, orig.Digest(), got.Digest())
}
