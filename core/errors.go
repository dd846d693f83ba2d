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
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned when an address does not match the expected hex format.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned when an amount or gas value is malformed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidData is returned when transaction call data is not valid hex.
	ErrInvalidData = errors.New("invalid data")
)

// UnexpectedResultTypeError is returned when the `result` field of an RPC
// response is missing or does not have the type the called method expects.
type UnexpectedResultTypeError struct {
	Method   string
	Expected string
	Actual   string
}

func (e *UnexpectedResultTypeError) Error() string {
	return fmt.Sprintf("method %s: expected result of type %s, got %s", e.Method, e.Expected, e.Actual)
}

// ConnectionError wraps any failure reported by the transport.
type ConnectionError struct {
	Method string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to call %s with error: %v", e.Method, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RawTransactionError is returned when building a RawTransaction fails.
// Err wraps ErrInvalidAddress, ErrInvalidAmount or ErrInvalidData.
type RawTransactionError struct {
	Field string
	Err   error
}

func (e *RawTransactionError) Error() string {
	return fmt.Sprintf("raw transaction: invalid %s: %v", e.Field, e.Err)
}

func (e *RawTransactionError) Unwrap() error {
	return e.Err
}
