package sdp

import "github.com/pkg/errors"

// SDPType is the role of a session description in an offer/answer
// exchange (RFC 3264).
type SDPType string

const (
	SDPTypeOffer    SDPType = "offer"
	SDPTypePranswer SDPType = "pranswer"
	SDPTypeAnswer   SDPType = "answer"
	SDPTypeRollback SDPType = "rollback"
)

func ParseSDPType(s string) (SDPType, error) {
	switch t := SDPType(s); t {
	case SDPTypeOffer, SDPTypePranswer, SDPTypeAnswer, SDPTypeRollback:
		return t, nil
	}
	return "", parseError("sdp type", s, errUnknownValue)
}

func (t SDPType) String() string { return string(t) }

// Description pairs a session description with its offer/answer role. SDP
// holds the canonical text of Session. A rollback carries no session.
type Description struct {
	Type    SDPType
	SDP     string
	Session *Session
}

func NewDescription(typ SDPType, session *Session) *Description {
	d := &Description{Type: typ}
	d.setSession(session)
	return d
}

// ParseDescription parses text as the session description of an exchange
// step of type typ. Text may be empty only for a rollback.
func ParseDescription(typ SDPType, text string) (*Description, error) {
	if _, err := ParseSDPType(string(typ)); err != nil {
		return nil, err
	}
	if typ == SDPTypeRollback && text == "" {
		return &Description{Type: typ}, nil
	}
	session, err := Parse(text)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s description", typ)
	}
	return NewDescription(typ, session), nil
}

func (d *Description) setSession(session *Session) {
	d.Session = session
	if session == nil {
		d.SDP = ""
		return
	}
	d.SDP = session.String()
}
