package sdp

import (
	"strconv"
	"strings"
	"testing"

	pionsdp "github.com/pion/sdp/v3"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pionOffer(t *testing.T) *pionsdp.SessionDescription {
	t.Helper()

	sd, err := pionsdp.NewJSEPSessionDescription(false)
	require.NoError(t, err)

	sd.WithValueAttribute("group", "BUNDLE 0 1").
		WithFingerprint("sha-256", "AB:CD:EF:01").
		WithMedia(pionsdp.NewJSEPMediaDescription("audio", nil).
			WithCodec(111, "opus", 48000, 2, "minptime=10;useinbandfec=1").
			WithCodec(0, "PCMU", 8000, 0, "").
			WithICECredentials("ufrag", "pwd").
			WithValueAttribute("mid", "0").
			WithPropertyAttribute("sendrecv")).
		WithMedia(pionsdp.NewJSEPMediaDescription("video", nil).
			WithCodec(96, "VP8", 90000, 0, "").
			WithMediaSource(1234, "cname", "stream", "label").
			WithValueAttribute("mid", "1").
			WithPropertyAttribute("recvonly"))
	return sd
}

func TestInteropFromPion(t *testing.T) {
	sd := pionOffer(t)
	raw, err := sd.Marshal()
	require.NoError(t, err)

	sess, err := Unmarshal(raw)
	require.NoError(t, err)
	require.Equal(t, string(raw), sess.String())

	assert.Equal(t, sd.Origin.SessionID, sess.Origin.SessionID)
	assert.Equal(t, sd.Origin.SessionVersion, sess.Origin.SessionVersion)
	assert.Equal(t, string(sd.SessionName), string(sess.SessionName))
	require.Len(t, sess.MediaDescriptions, len(sd.MediaDescriptions))

	for i, md := range sess.MediaDescriptions {
		want := sd.MediaDescriptions[i]
		assert.Equal(t, want.MediaName.Media, md.Media.Type.String())
		assert.Equal(t, want.MediaName.Port.Value, int(md.Media.Port))
		assert.Equal(t, strings.Join(want.MediaName.Protos, "/"), md.Media.Proto.String())
		assert.Equal(t, want.MediaName.Formats, md.Media.Formats())
		assert.Equal(t, ProtoUDPTLSRTPSAVPF, md.Media.Proto)

		for _, a := range md.Attributes {
			if r, ok := a.(Rtpmap); ok {
				codec, err := sd.GetCodecForPayloadType(r.PayloadType)
				require.NoError(t, err)
				assert.Equal(t, codec.Name, r.EncodingName)
				assert.Equal(t, codec.ClockRate, r.ClockRate)
				if r.EncodingParams != nil {
					assert.Equal(t, codec.EncodingParameters, strconv.FormatUint(uint64(*r.EncodingParams), 10))
				}
			}
		}
	}

	a, ok := sess.MediaDescriptions[0].Attribute("fmtp")
	require.True(t, ok)
	params := lo.Associate(a.(Fmtp).Params(), func(p FmtpParam) (string, string) { return p.Name, p.Value })
	assert.Equal(t, map[string]string{"minptime": "10", "useinbandfec": "1"}, params)

	dir, ok := sess.MediaDescriptions[1].Attribute("recvonly")
	require.True(t, ok)
	assert.Equal(t, DirectionRecvonly, dir)
}

func TestInteropToPion(t *testing.T) {
	for _, v := range testVectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			var sd pionsdp.SessionDescription
			require.NoError(t, sd.Unmarshal(v.Session.Bytes()))

			assert.Equal(t, v.Session.Origin.Username, sd.Origin.Username)
			assert.Equal(t, v.Session.Origin.SessionID, sd.Origin.SessionID)
			assert.Equal(t, v.Session.Origin.UnicastAddress.String(), sd.Origin.UnicastAddress)
			assert.Equal(t, string(v.Session.SessionName), string(sd.SessionName))
			assert.Equal(t, v.Session.Times.Len(), len(sd.TimeDescriptions))
			require.Len(t, sd.MediaDescriptions, len(v.Session.MediaDescriptions))

			for i, md := range sd.MediaDescriptions {
				want := v.Session.MediaDescriptions[i]
				assert.Equal(t, want.Media.Type.String(), md.MediaName.Media)
				assert.Equal(t, want.Media.Formats(), md.MediaName.Formats)
				assert.Len(t, md.Attributes, len(want.Attributes))
				for j, a := range md.Attributes {
					assert.Equal(t, want.Attributes[j].AttributeName(), a.Key)
				}
			}

			for _, a := range v.Session.Attributes {
				value, ok := sd.Attribute(a.AttributeName())
				require.True(t, ok, a.AttributeName())
				want, _ := a.AttributeValue()
				assert.Equal(t, want, value)
			}
		})
	}
}
