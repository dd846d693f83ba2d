//  Copyright (C) 2021-2023 Chronicle Labs, Inc.
//
//  This program is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Affero General Public License as
//  published by the Free Software Foundation, either version 3 of the
//  License, or (at your option) any later version.
//
//  This program is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Affero General Public License for more details.
//
//  You should have received a copy of the GNU Affero General Public License
//  along with this program.  If not, see <http://www.gnu.org/licenses/>.

package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ResultKind string

const (
	KindNull   ResultKind = "null"
	KindBool   ResultKind = "bool"
	KindNumber ResultKind = "number"
	KindString ResultKind = "string"
	KindArray  ResultKind = "array"
	KindObject ResultKind = "object"
)

// Result holds the raw `result` field of a JSON-RPC response.
// A missing result is treated as null.
type Result json.RawMessage

// Kind returns the JSON type of the result.
func (r Result) Kind() ResultKind {
	b := bytes.TrimSpace(r)
	if len(b) == 0 {
		return KindNull
	}
	switch b[0] {
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case '[':
		return KindArray
	case '{':
		return KindObject
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

// AsString decodes the result as a string.
func (r Result) AsString(method string) (string, error) {
	var s string
	if err := r.decode(method, KindString, &s); err != nil {
		return "", err
	}
	return s, nil
}

// AsBool decodes the result as a boolean.
func (r Result) AsBool(method string) (bool, error) {
	var v bool
	if err := r.decode(method, KindBool, &v); err != nil {
		return false, err
	}
	return v, nil
}

// AsStrings decodes the result as an array of strings.
func (r Result) AsStrings(method string) ([]string, error) {
	var v []string
	if err := r.decode(method, KindArray, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r Result) decode(method string, expected ResultKind, v any) error {
	actual := r.Kind()
	if actual != expected {
		return &UnexpectedResultTypeError{Method: method, Expected: string(expected), Actual: string(actual)}
	}
	if err := json.Unmarshal(r, v); err != nil {
		// e.g. an array holding something other than strings
		return &UnexpectedResultTypeError{
			Method:   method,
			Expected: string(expected),
			Actual:   fmt.Sprintf("%s (%v)", actual, err),
		}
	}
	return nil
}
