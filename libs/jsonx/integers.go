package jsonx

import (
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

type integerExtension struct {
	jsoniter.DummyExtension
	targets []reflect.Kind
}

func newIntegerExtension(targets ...reflect.Kind) *integerExtension {
	return &integerExtension{
		targets: targets,
	}
}

func (e *integerExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		kind := binding.Field.Type().Kind()
		if !e.isTarget(kind) {
			continue
		}

		tag := binding.Field.Tag().Get("json")
		if tag == "-" || hasStringOption(tag) {
			// `,string` is already handled by jsoniter itself.
			continue
		}

		codec := &integerCodec{kind: kind}
		binding.Encoder = codec
		binding.Decoder = codec
	}
}

func (e *integerExtension) isTarget(kind reflect.Kind) bool {
	for _, t := range e.targets {
		if t == kind {
			return true
		}
	}
	return false
}

func hasStringOption(tag string) bool {
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "string" {
			return true
		}
	}
	return false
}

type integerCodec struct {
	kind reflect.Kind
}

var _ jsoniter.ValEncoder = (*integerCodec)(nil)
var _ jsoniter.ValDecoder = (*integerCodec)(nil)

func (c *integerCodec) IsEmpty(ptr unsafe.Pointer) bool {
	switch c.kind {
	case reflect.Int64:
		return *(*int64)(ptr) == 0
	case reflect.Uint64:
		return *(*uint64)(ptr) == 0
	}
	return false
}

func (c *integerCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	switch c.kind {
	case reflect.Int64:
		stream.WriteString(strconv.FormatInt(*(*int64)(ptr), 10))
	case reflect.Uint64:
		stream.WriteString(strconv.FormatUint(*(*uint64)(ptr), 10))
	}
}

func (c *integerCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		s := iter.ReadString()
		switch c.kind {
		case reflect.Int64:
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				iter.ReportError("decode int64", err.Error())
				return
			}
			*(*int64)(ptr) = v
		case reflect.Uint64:
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				iter.ReportError("decode uint64", err.Error())
				return
			}
			*(*uint64)(ptr) = v
		}
	case jsoniter.NumberValue:
		switch c.kind {
		case reflect.Int64:
			*(*int64)(ptr) = iter.ReadInt64()
		case reflect.Uint64:
			*(*uint64)(ptr) = iter.ReadUint64()
		}
	case jsoniter.NilValue:
		iter.Skip()
	default:
		iter.ReportError("decode integer", "unexpected json type")
	}
}
