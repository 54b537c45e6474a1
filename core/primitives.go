/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package core defines the PDF object model and the external collaborator
// interfaces the content-stream interpreter depends on. It deliberately
// does not parse bytes into these objects, recover damaged cross-reference
// tables, or decrypt streams — that machinery lives in the PDF object
// parser named in §1 as an external collaborator. What core does own is the
// tagged-object surface the collaborator hands back, because the
// interpreter needs concrete types to type-switch on.
package core

import "fmt"

// Object is the interface every primitive PDF object value implements.
type Object interface {
	// String returns a debug representation, e.g. for interpreter logging.
	String() string
}

// Bool is a PDF boolean.
type Bool bool

func (b Bool) String() string { return fmt.Sprintf("%t", bool(b)) }

// Integer is a PDF integer numeric object.
type Integer int64

func (i Integer) String() string { return fmt.Sprintf("%d", int64(i)) }

// Real is a PDF real numeric object.
type Real float64

func (r Real) String() string { return fmt.Sprintf("%g", float64(r)) }

// String is a PDF string object (the bytes between '(' ')' or '<' '>').
// Text-showing operands arrive as Strings; their bytes are not yet decoded
// through any font encoding.
type String struct {
	Bytes []byte
}

// MakeString wraps raw bytes as a PDF string object.
func MakeString(b []byte) *String { return &String{Bytes: b} }

func (s *String) String() string { return fmt.Sprintf("(%s)", string(s.Bytes)) }

// Name is a PDF name object, e.g. /F1 or /DeviceRGB.
type Name string

func (n Name) String() string { return "/" + string(n) }

// Array is a PDF array object.
type Array struct {
	Elements []Object
}

// MakeArray builds an Array from elements.
func MakeArray(elems ...Object) *Array { return &Array{Elements: elems} }

func (a *Array) Len() int { return len(a.Elements) }

func (a *Array) String() string { return fmt.Sprintf("%v", a.Elements) }

// ToFloat64Array converts every element to a float64, failing if any
// element is not a numeric object.
func (a *Array) ToFloat64Array() ([]float64, error) {
	out := make([]float64, len(a.Elements))
	for i, e := range a.Elements {
		f, ok := GetNumberAsFloat(e)
		if !ok {
			return nil, fmt.Errorf("core: array element %d is not a number: %v", i, e)
		}
		out[i] = f
	}
	return out, nil
}

// Dictionary is a PDF dictionary object. Keys are kept in insertion order
// because PDF Differences-style arrays and some resource lookups are more
// debuggable with stable iteration, mirroring how PDF tooling usually
// preserves source order for round-tripping.
type Dictionary struct {
	keys   []Name
	values map[Name]Object
}

// MakeDict returns an empty dictionary.
func MakeDict() *Dictionary {
	return &Dictionary{values: map[Name]Object{}}
}

// Set installs key->val, appending key to the iteration order if new.
func (d *Dictionary) Set(key Name, val Object) {
	if d.values == nil {
		d.values = map[Name]Object{}
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = val
}

// Get returns the object stored at key as is: a stored Reference is not
// resolved, so callers chase it via Document.Resolve. Returns nil if absent.
func (d *Dictionary) Get(key Name) Object {
	if d == nil || d.values == nil {
		return nil
	}
	return d.values[key]
}

// Keys returns the dictionary's keys in insertion order.
func (d *Dictionary) Keys() []Name {
	if d == nil {
		return nil
	}
	return d.keys
}

func (d *Dictionary) String() string {
	return fmt.Sprintf("<<%v>>", d.keys)
}

// Stream is a PDF stream object: its dictionary plus already-decoded bytes.
// Decoding filters (FlateDecode etc.) is the parser collaborator's job;
// by the time the interpreter sees a Stream, Bytes holds plaintext content.
type Stream struct {
	*Dictionary
	Bytes []byte
}

// Reference is an indirect reference, identified by (object number,
// generation). Document.Resolve turns these into concrete Objects.
type Reference struct {
	ObjectNumber     int64
	GenerationNumber int64
}

func (r Reference) String() string { return fmt.Sprintf("%d %d R", r.ObjectNumber, r.GenerationNumber) }

// Null is the PDF null object.
type Null struct{}

func (Null) String() string { return "null" }

// GetNumberAsFloat extracts a float64 from an Integer or Real object.
func GetNumberAsFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Integer:
		return float64(v), true
	case Real:
		return float64(v), true
	case *Integer:
		return float64(*v), true
	case *Real:
		return float64(*v), true
	}
	return 0, false
}

// GetNumbersAsFloat extracts a []float64 from a slice of numeric objects,
// failing if any element is not numeric. Used to validate operator arity
// for operators like `cm` that require all-numeric operands.
func GetNumbersAsFloat(objs []Object) ([]float64, error) {
	out := make([]float64, len(objs))
	for i, o := range objs {
		f, ok := GetNumberAsFloat(o)
		if !ok {
			return nil, fmt.Errorf("core: operand %d is not a number: %v", i, o)
		}
		out[i] = f
	}
	return out, nil
}

// GetIntVal extracts an int from an Integer object.
func GetIntVal(obj Object) (int64, bool) {
	switch v := obj.(type) {
	case Integer:
		return int64(v), true
	case *Integer:
		return int64(*v), true
	}
	return 0, false
}

// GetNameVal extracts a string from a Name object.
func GetNameVal(obj Object) (string, bool) {
	switch v := obj.(type) {
	case Name:
		return string(v), true
	case *Name:
		return string(*v), true
	}
	return "", false
}

// GetStringBytes extracts the raw bytes from a String object.
func GetStringBytes(obj Object) ([]byte, bool) {
	if s, ok := obj.(*String); ok {
		return s.Bytes, true
	}
	return nil, false
}

// GetArray type-asserts obj as an *Array.
func GetArray(obj Object) (*Array, bool) {
	a, ok := obj.(*Array)
	return a, ok
}

// GetDict type-asserts obj as a *Dictionary, unwrapping a *Stream.
func GetDict(obj Object) (*Dictionary, bool) {
	switch v := obj.(type) {
	case *Dictionary:
		return v, true
	case *Stream:
		return v.Dictionary, true
	}
	return nil, false
}

// GetStream type-asserts obj as a *Stream.
func GetStream(obj Object) (*Stream, bool) {
	s, ok := obj.(*Stream)
	return s, ok
}
