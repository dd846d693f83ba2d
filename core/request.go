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

import "fmt"

// SendRequest describes a plain ETH transfer in human units.
type SendRequest struct {
	From string
	To   string
	// Amount in ETH, e.g. "1.5". Required, use "0" for a plain contract call.
	Amount string
	// Gas limit, zero lets the node estimate it.
	Gas uint64
	// GasPrice in Gwei, empty lets the node pick it.
	GasPrice string
	Nonce    *uint64
}

// Transaction builds a RawTransaction from the request.
func (r SendRequest) Transaction() (*RawTransaction, error) {
	tx, err := NewRawTransaction(r.From, r.To)
	if err != nil {
		return nil, err
	}
	if r.Amount == "" {
		return nil, &RawTransactionError{Field: "value", Err: fmt.Errorf("%w: amount is required", ErrInvalidAmount)}
	}
	if err := tx.SetAmount(r.Amount); err != nil {
		return nil, err
	}
	if r.Gas != 0 {
		if err := tx.SetGas(r.Gas); err != nil {
			return nil, err
		}
	}
	if r.GasPrice != "" {
		if err := tx.SetGasPrice(r.GasPrice); err != nil {
			return nil, err
		}
	}
	if r.Nonce != nil {
		tx.SetNonce(*r.Nonce)
	}
	return tx, nil
}
