// Package sdp reads and writes Session Description Protocol messages
// (RFC 8866, formerly RFC 4566).
//
// Parsing runs in two stages. The input is first split into an untyped tree
// of substrings that follows the grammar's line order and cardinality, then
// every field is converted into its typed value. The first failure stops the
// parse and is returned as an *Error. Rendering a parsed Session produces
// the canonical text, with CRLF after every line, and parsing that text
// again yields an equal Session.
package sdp

import (
	"github.com/nostressdev/sdp/internal/tokenizer"
)

// Session is a complete session description.
type Session struct {
	Version     Version
	Origin      Origin
	SessionName SessionName
	Information *SessionInformation
	URI         *URI
	Emails      []Email
	Phones      []Phone
	Connection  *Connection
	Bandwidths  []Bandwidth
	// Times always holds at least one time block.
	Times             NonEmpty[Time]
	Key               *Key
	Attributes        []Attribute
	MediaDescriptions []MediaDescription
}

// Parse reads a complete session description. Lines may end in CRLF, LF
// or CR, and the last line may be left unterminated.
func Parse(text string) (*Session, error) {
	node, err := tokenizer.TokenizeDocument(text)
	if err != nil {
		return nil, wrapTokenizer(err)
	}
	s, err := newSession(node)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Unmarshal is Parse for a byte slice.
func Unmarshal(data []byte) (*Session, error) {
	return Parse(string(data))
}

func newSession(node tokenizer.Session) (Session, error) {
	var (
		s   Session
		err error
	)
	if s.Version, err = newVersion(node.Version); err != nil {
		return Session{}, err
	}
	if s.Origin, err = newOrigin(node.Origin); err != nil {
		return Session{}, err
	}
	if s.SessionName, err = newSessionName(node.SessionName); err != nil {
		return Session{}, err
	}
	if s.Information, err = mapOptional(node.Information, newSessionInformation); err != nil {
		return Session{}, err
	}
	if s.URI, err = mapOptional(node.URI, newURI); err != nil {
		return Session{}, err
	}
	if s.Emails, err = mapAll(node.Emails, newEmail); err != nil {
		return Session{}, err
	}
	if s.Phones, err = mapAll(node.Phones, newPhone); err != nil {
		return Session{}, err
	}
	if s.Connection, err = mapOptional(node.Connection, newConnection); err != nil {
		return Session{}, err
	}
	if s.Bandwidths, err = mapAll(node.Bandwidths, newBandwidth); err != nil {
		return Session{}, err
	}
	if s.Times, err = mapNonEmpty(node.Times, "time", newTime); err != nil {
		return Session{}, err
	}
	if s.Key, err = mapOptional(node.Key, newKey); err != nil {
		return Session{}, err
	}
	if s.Attributes, err = mapAll(node.Attributes, newAttribute); err != nil {
		return Session{}, err
	}
	if s.MediaDescriptions, err = mapAll(node.MediaDescriptions, newMediaDescription); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Attribute returns the first session level attribute called name.
func (s *Session) Attribute(name string) (Attribute, bool) {
	return findAttribute(s.Attributes, name)
}

// String renders the session description, each line terminated by CRLF.
func (s *Session) String() string { return render(s.encode) }

// Bytes renders the session description like String.
func (s *Session) Bytes() []byte {
	b := getBuffer()
	defer putBuffer(b)
	s.encode(b)
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Marshal is Bytes with the error return of encoding interfaces.
func (s *Session) Marshal() ([]byte, error) {
	return s.Bytes(), nil
}

func (s *Session) encode(b *buffer) {
	s.Version.encode(b)
	b.writeNewline()
	s.Origin.encode(b)
	b.writeNewline()
	b.writeString(s.SessionName.String()).writeNewline()
	if s.Information != nil {
		b.writeString(s.Information.String()).writeNewline()
	}
	if s.URI != nil {
		b.writeString(s.URI.String()).writeNewline()
	}
	for _, e := range s.Emails {
		b.writeString(e.String()).writeNewline()
	}
	for _, p := range s.Phones {
		b.writeString(p.String()).writeNewline()
	}
	if s.Connection != nil {
		s.Connection.encode(b)
		b.writeNewline()
	}
	for _, bw := range s.Bandwidths {
		bw.encode(b)
		b.writeNewline()
	}
	for _, t := range s.Times.Slice() {
		t.encode(b)
	}
	if s.Key != nil {
		s.Key.encode(b)
		b.writeNewline()
	}
	encodeAttributes(b, s.Attributes)
	for _, md := range s.MediaDescriptions {
		md.encode(b)
	}
}
