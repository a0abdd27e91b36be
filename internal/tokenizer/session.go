package tokenizer

// MediaDescription is an "m=" line and the lines scoped to it.
type MediaDescription struct {
	Media       Media
	Information *Value
	Connections []Connection
	Bandwidths  []KeyValue
	Key         *KeyOptValue
	Attributes  []KeyOptValue
}

// TokenizeMediaDescription consumes one media description.
func TokenizeMediaDescription(input string) (MediaDescription, string, error) {
	var (
		md  MediaDescription
		rem string
		err error
	)
	if md.Media, rem, err = TokenizeMedia(input); err != nil {
		return MediaDescription{}, input, err
	}
	if md.Information, rem, err = optional(rem, "i=", value('i')); err != nil {
		return MediaDescription{}, input, err
	}
	if md.Connections, rem, err = many0(rem, "c=", TokenizeConnection); err != nil {
		return MediaDescription{}, input, err
	}
	if md.Bandwidths, rem, err = many0(rem, "b=", keyValue('b')); err != nil {
		return MediaDescription{}, input, err
	}
	if md.Key, rem, err = optional(rem, "k=", keyOptValue('k')); err != nil {
		return MediaDescription{}, input, err
	}
	if md.Attributes, rem, err = many0(rem, "a=", keyOptValue('a')); err != nil {
		return MediaDescription{}, input, err
	}
	return md, rem, nil
}

// Session is a whole session description. Times is never empty.
type Session struct {
	Version           Value
	Origin            Origin
	SessionName       Value
	Information       *Value
	URI               *Value
	Emails            []Value
	Phones            []Value
	Connection        *Connection
	Bandwidths        []KeyValue
	Times             []Time
	Key               *KeyOptValue
	Attributes        []KeyOptValue
	MediaDescriptions []MediaDescription
}

// TokenizeSession consumes the session-level lines, the time blocks and the
// media descriptions in their fixed order. The unconsumed rest is returned.
func TokenizeSession(input string) (Session, string, error) {
	var (
		s   Session
		rem string
		err error
	)
	if s.Version, rem, err = TokenizeValue(input, 'v'); err != nil {
		return Session{}, input, err
	}
	if s.Origin, rem, err = TokenizeOrigin(rem); err != nil {
		return Session{}, input, err
	}
	if s.SessionName, rem, err = TokenizeValue(rem, 's'); err != nil {
		return Session{}, input, err
	}
	if s.Information, rem, err = optional(rem, "i=", value('i')); err != nil {
		return Session{}, input, err
	}
	if s.URI, rem, err = optional(rem, "u=", value('u')); err != nil {
		return Session{}, input, err
	}
	if s.Emails, rem, err = many0(rem, "e=", value('e')); err != nil {
		return Session{}, input, err
	}
	if s.Phones, rem, err = many0(rem, "p=", value('p')); err != nil {
		return Session{}, input, err
	}
	if s.Connection, rem, err = optional(rem, "c=", TokenizeConnection); err != nil {
		return Session{}, input, err
	}
	if s.Bandwidths, rem, err = many0(rem, "b=", keyValue('b')); err != nil {
		return Session{}, input, err
	}
	if s.Times, rem, err = many1(rem, "t=", TokenizeTime); err != nil {
		return Session{}, input, err
	}
	if s.Key, rem, err = optional(rem, "k=", keyOptValue('k')); err != nil {
		return Session{}, input, err
	}
	if s.Attributes, rem, err = many0(rem, "a=", keyOptValue('a')); err != nil {
		return Session{}, input, err
	}
	if s.MediaDescriptions, rem, err = many0(rem, "m=", TokenizeMediaDescription); err != nil {
		return Session{}, input, err
	}
	return s, rem, nil
}

// TokenizeDocument tokenizes a complete session description. Anything but
// line terminators after the last recognised line is an error.
func TokenizeDocument(input string) (Session, error) {
	s, rem, err := TokenizeSession(input)
	if err != nil {
		return Session{}, err
	}
	if err := End("session description", rem); err != nil {
		return Session{}, err
	}
	return s, nil
}
