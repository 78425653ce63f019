package types

// Tag identifies which variant of the tagged-union value a node currently
// holds. A value may be converted in place from one tag to another; the
// tag set is mutually exclusive at any point in time.
type Tag uint8

const (
	Null Tag = iota
	Bool
	Int
	Float
	String
	Array
	Map
)

// String returns the tag's name.
func (t Tag) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Map:
		return "map"
	default:
		return "unknown"
	}
}

// ParentKind records what kind of container (if any) owns a value, used at
// destruction time to release an interned key back to the key store.
type ParentKind uint8

const (
	ParentNone ParentKind = iota
	ParentCtx
	ParentMap
	ParentArray
)

// Codec identifies a wire encoding. JSON and MsgPack are the two codecs
// this specification requires; CBOR is implemented as a third,
// interchangeable codec switched by this same tag.
type Codec uint8

const (
	CodecJSON Codec = iota
	CodecMsgPack
	CodecCBOR
)

// String returns the codec's name.
func (c Codec) String() string {
	switch c {
	case CodecJSON:
		return "json"
	case CodecMsgPack:
		return "msgpack"
	case CodecCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}
