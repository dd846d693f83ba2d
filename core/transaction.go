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
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var addressRegexp = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{40}$`)

// TransactionArgs is the transaction object sent as the first parameter of
// `personal_sendTransaction`. Optional fields are omitted when unset, so the
// node fills in its own defaults.
type TransactionArgs struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Gas      string `json:"gas,omitempty"`
	GasPrice string `json:"gasPrice,omitempty"`
	Nonce    string `json:"nonce,omitempty"`
	Data     string `json:"data,omitempty"`
}

// RawTransaction accumulates the fields of a transaction that is signed by
// the node with an account password. It must not be mutated concurrently.
type RawTransaction struct {
	from     string
	to       string
	value    string
	gas      *uint64
	gasPrice *string
	nonce    *uint64
	data     []byte
}

// NewRawTransaction creates a transaction from `from` to `to` with zero value.
func NewRawTransaction(from, to string) (*RawTransaction, error) {
	f, err := normalizeAddress(from)
	if err != nil {
		return nil, &RawTransactionError{Field: "from", Err: err}
	}
	t, err := normalizeAddress(to)
	if err != nil {
		return nil, &RawTransactionError{Field: "to", Err: err}
	}
	return &RawTransaction{
		from:  f,
		to:    t,
		value: "0x0",
	}, nil
}

func (tx *RawTransaction) From() string {
	return tx.from
}

func (tx *RawTransaction) To() string {
	return tx.to
}

// Value returns the hex encoded amount in Wei.
func (tx *RawTransaction) Value() string {
	return tx.value
}

// SetAmount sets the transferred value, given in ETH.
func (tx *RawTransaction) SetAmount(eth string) error {
	value, err := EthToWeiHex(eth)
	if err != nil {
		return &RawTransactionError{Field: "value", Err: err}
	}
	tx.value = value
	return nil
}

// SetGas sets the gas limit. Zero is rejected, leave it unset to let the node estimate.
func (tx *RawTransaction) SetGas(units uint64) error {
	if units == 0 {
		return &RawTransactionError{Field: "gas", Err: fmt.Errorf("%w: gas must be greater than zero", ErrInvalidAmount)}
	}
	tx.gas = &units
	return nil
}

// SetGasPrice sets the gas price, given in Gwei.
func (tx *RawTransaction) SetGasPrice(gwei string) error {
	if err := ValidateAmount(gwei); err != nil {
		return &RawTransactionError{Field: "gasPrice", Err: err}
	}
	tx.gasPrice = &gwei
	return nil
}

// SetNonce sets the account nonce. Zero is a valid nonce and is sent as `0x0`.
func (tx *RawTransaction) SetNonce(nonce uint64) {
	tx.nonce = &nonce
}

// SetData sets the call data, a `0x` prefixed hex string.
func (tx *RawTransaction) SetData(data string) error {
	b, err := hexutil.Decode(data)
	if err != nil {
		return &RawTransactionError{Field: "data", Err: fmt.Errorf("%w: %v", ErrInvalidData, err)}
	}
	tx.data = b
	return nil
}

// Serialize returns the wire representation of the transaction. It does not
// modify the transaction, so calling it repeatedly yields the same result.
func (tx *RawTransaction) Serialize() (*TransactionArgs, error) {
	args := &TransactionArgs{
		From:  tx.from,
		To:    tx.to,
		Value: tx.value,
	}
	if tx.gas != nil {
		args.Gas = ToHex(new(big.Int).SetUint64(*tx.gas))
	}
	if tx.gasPrice != nil {
		gasPrice, err := GweiToWeiHex(*tx.gasPrice)
		if err != nil {
			return nil, &RawTransactionError{Field: "gasPrice", Err: err}
		}
		args.GasPrice = gasPrice
	}
	if tx.nonce != nil {
		args.Nonce = ToHex(new(big.Int).SetUint64(*tx.nonce))
	}
	if len(tx.data) > 0 {
		args.Data = hexutil.Encode(tx.data)
	}
	return args, nil
}

func normalizeAddress(address string) (string, error) {
	if !addressRegexp.MatchString(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if !strings.HasPrefix(address, "0x") {
		address = "0x" + address
	}
	return address, nil
}
