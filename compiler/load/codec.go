package load

import (
	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML declaration document into a unit.
func Parse(buf []byte) (*Unit, error) {
	u := &Unit{}
	if err := yaml.Unmarshal(buf, u); err != nil {
		return nil, err
	}
	if err := u.sanity(); err != nil {
		return nil, err
	}
	return u, nil
}

// MarshalUnit encodes a unit as JSON.
func MarshalUnit(u *Unit) ([]byte, error) {
	return json.Marshal(u)
}

// UnmarshalUnit decodes a JSON-encoded unit.
func UnmarshalUnit(buf []byte) (*Unit, error) {
	u := &Unit{}
	if err := json.Unmarshal(buf, u); err != nil {
		return nil, err
	}
	if err := u.sanity(); err != nil {
		return nil, err
	}
	return u, nil
}

// EncodeUnit encodes a unit in its compact binary form, suitable for
// embedding in an exporting package.
func EncodeUnit(u *Unit) ([]byte, error) {
	return msgpack.Marshal(u)
}

// DecodeUnit decodes a binary-encoded unit.
func DecodeUnit(buf []byte) (*Unit, error) {
	u := &Unit{}
	if err := msgpack.Unmarshal(buf, u); err != nil {
		return nil, err
	}
	if err := u.sanity(); err != nil {
		return nil, err
	}
	return u, nil
}
