package protocol

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

type Encoder interface {
	Encode(v interface{}) error
}

type Decoder interface {
	Decode(v interface{}) error
}

// Codec frames batches on a stream: newline-delimited JSON or a msgpack stream.
type Codec interface {
	Name() string
	NewEncoder(w io.Writer) Encoder
	NewDecoder(r io.Reader) Decoder
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecJSON }

func (jsonCodec) NewEncoder(w io.Writer) Encoder {
	// json.Encoder terminates every value with a newline
	return json.NewEncoder(w)
}

func (jsonCodec) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return CodecMsgpack }

func (msgpackCodec) NewEncoder(w io.Writer) Encoder {
	return msgpack.NewEncoder(w)
}

func (msgpackCodec) NewDecoder(r io.Reader) Decoder {
	return msgpack.NewDecoder(r)
}

func GetCodec(name string) (Codec, error) {
	switch name {
	case "", CodecJSON:
		return jsonCodec{}, nil
	case CodecMsgpack:
		return msgpackCodec{}, nil
	}

	return nil, errors.Errorf("unknown codec %q", name)
}
