package transition

// Payload is the optional extra argument threaded to whichever callback a
// validation call selects. The zero value carries nothing.
type Payload struct {
	value any
	set   bool
}

func NoPayload() Payload {
	return Payload{}
}

// PayloadOf wraps v. A nil v is still a set payload.
func PayloadOf(v any) Payload {
	return Payload{value: v, set: true}
}

func (p Payload) Value() (any, bool) {
	return p.value, p.set
}

func (p Payload) IsSet() bool {
	return p.set
}
