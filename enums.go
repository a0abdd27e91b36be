package sdp

import (
	"github.com/samber/lo"
)

// Open enumerations keep any text they do not recognise. The constants
// list the registered values; every other value is carried verbatim and
// reported by Known as unrecognised.

type Nettype string

const NettypeIN Nettype = "IN"

func ParseNettype(s string) Nettype { return Nettype(s) }

func (n Nettype) Known() bool    { return n == NettypeIN }
func (n Nettype) String() string { return string(n) }

type Addrtype string

const (
	AddrtypeIP4 Addrtype = "IP4"
	AddrtypeIP6 Addrtype = "IP6"
)

func ParseAddrtype(s string) Addrtype { return Addrtype(s) }

func (a Addrtype) Known() bool    { return a == AddrtypeIP4 || a == AddrtypeIP6 }
func (a Addrtype) String() string { return string(a) }

type MediaType string

const (
	MediaTypeAudio       MediaType = "audio"
	MediaTypeVideo       MediaType = "video"
	MediaTypeText        MediaType = "text"
	MediaTypeApplication MediaType = "application"
	MediaTypeMessage     MediaType = "message"
	MediaTypeImage       MediaType = "image"
)

var mediaTypes = []MediaType{
	MediaTypeAudio, MediaTypeVideo, MediaTypeText,
	MediaTypeApplication, MediaTypeMessage, MediaTypeImage,
}

func ParseMediaType(s string) MediaType { return MediaType(s) }

func (m MediaType) Known() bool    { return lo.Contains(mediaTypes, m) }
func (m MediaType) String() string { return string(m) }

type ProtoType string

const (
	ProtoUDP            ProtoType = "udp"
	ProtoRTPAVP         ProtoType = "RTP/AVP"
	ProtoRTPSAVP        ProtoType = "RTP/SAVP"
	ProtoRTPSAVPF       ProtoType = "RTP/SAVPF"
	ProtoRTPAVPF        ProtoType = "RTP/AVPF"
	ProtoUDPTLSRTPSAVPF ProtoType = "UDP/TLS/RTP/SAVPF"
	ProtoTCPRTPAVP      ProtoType = "TCP/RTP/AVP"
	ProtoUDPDTLSSCTP    ProtoType = "UDP/DTLS/SCTP"
	ProtoDTLSSCTP       ProtoType = "DTLS/SCTP"
)

var protoTypes = []ProtoType{
	ProtoUDP, ProtoRTPAVP, ProtoRTPSAVP, ProtoRTPSAVPF, ProtoRTPAVPF,
	ProtoUDPTLSRTPSAVPF, ProtoTCPRTPAVP, ProtoUDPDTLSSCTP, ProtoDTLSSCTP,
}

func ParseProtoType(s string) ProtoType { return ProtoType(s) }

func (p ProtoType) Known() bool    { return lo.Contains(protoTypes, p) }
func (p ProtoType) String() string { return string(p) }

type Bwtype string

const (
	BwtypeCT   Bwtype = "CT"
	BwtypeAS   Bwtype = "AS"
	BwtypeTIAS Bwtype = "TIAS"
	BwtypeRR   Bwtype = "RR"
	BwtypeRS   Bwtype = "RS"
)

var bwtypes = []Bwtype{BwtypeCT, BwtypeAS, BwtypeTIAS, BwtypeRR, BwtypeRS}

func ParseBwtype(s string) Bwtype { return Bwtype(s) }

func (b Bwtype) Known() bool    { return lo.Contains(bwtypes, b) }
func (b Bwtype) String() string { return string(b) }

type KeyMethod string

const (
	KeyMethodClear  KeyMethod = "clear"
	KeyMethodBase64 KeyMethod = "base64"
	KeyMethodURI    KeyMethod = "uri"
	KeyMethodPrompt KeyMethod = "prompt"
)

var keyMethods = []KeyMethod{KeyMethodClear, KeyMethodBase64, KeyMethodURI, KeyMethodPrompt}

func ParseKeyMethod(s string) KeyMethod { return KeyMethod(s) }

func (k KeyMethod) Known() bool    { return lo.Contains(keyMethods, k) }
func (k KeyMethod) String() string { return string(k) }

// Closed enumerations reject anything outside their value set.

// Version is the protocol version carried by the "v=" line. Only 0 exists.
type Version uint8

const Version0 Version = 0

type ConferenceType uint8

const (
	ConferenceTypeBroadcast ConferenceType = iota + 1
	ConferenceTypeMeeting
	ConferenceTypeModerated
	ConferenceTypeTest
	ConferenceTypeH332
)

var conferenceTypeNames = map[ConferenceType]string{
	ConferenceTypeBroadcast: "broadcast",
	ConferenceTypeMeeting:   "meeting",
	ConferenceTypeModerated: "moderated",
	ConferenceTypeTest:      "test",
	ConferenceTypeH332:      "H332",
}

func ParseConferenceType(s string) (ConferenceType, error) {
	c, err := parseConferenceType(s)
	if err != nil {
		return 0, parseError("type attribute", s, err)
	}
	return c, nil
}

func parseConferenceType(s string) (ConferenceType, error) {
	for c, name := range conferenceTypeNames {
		if name == s {
			return c, nil
		}
	}
	return 0, errUnknownValue
}

func (c ConferenceType) String() string { return conferenceTypeNames[c] }

type Orientation uint8

const (
	OrientationPortrait Orientation = iota + 1
	OrientationLandscape
	OrientationSeascape
)

var orientationNames = map[Orientation]string{
	OrientationPortrait:  "portrait",
	OrientationLandscape: "landscape",
	OrientationSeascape:  "seascape",
}

func ParseOrientation(s string) (Orientation, error) {
	o, err := parseOrientation(s)
	if err != nil {
		return 0, parseError("orient attribute", s, err)
	}
	return o, nil
}

func parseOrientation(s string) (Orientation, error) {
	for o, name := range orientationNames {
		if name == s {
			return o, nil
		}
	}
	return 0, errUnknownValue
}

func (o Orientation) String() string { return orientationNames[o] }
