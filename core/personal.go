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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
)

const (
	MethodNewAccount      = "personal_newAccount"
	MethodImportRawKey    = "personal_importRawKey"
	MethodSendTransaction = "personal_sendTransaction"
	MethodUnlockAccount   = "personal_unlockAccount"
	MethodLockAccount     = "personal_lockAccount"
	MethodListAccounts    = "personal_listAccounts"
)

// New account addresses are checked against a looser pattern than
// transaction addresses: 40 to 42 lowercase hex characters.
var newAccountRegexp = regexp.MustCompile(`^(0x)?[a-f0-9]{40,42}$`)

// Personal is a client for the `personal` RPC namespace. It holds no state
// besides the transport and is safe for concurrent use if the transport is.
type Personal struct {
	transport Transport
}

func NewPersonal(transport Transport) *Personal {
	return &Personal{transport: transport}
}

// NewAccount creates a new account protected by password and returns its address.
func (p *Personal) NewAccount(ctx context.Context, password string) (string, error) {
	res, err := p.call(ctx, MethodNewAccount, password)
	if err != nil {
		return "", err
	}
	account, err := res.AsString(MethodNewAccount)
	if err != nil {
		return "", p.track(MethodNewAccount, err)
	}
	if !newAccountRegexp.MatchString(account) {
		return "", p.track(MethodNewAccount, fmt.Errorf("%w: invalid newly created account address %q", ErrInvalidAddress, account))
	}
	return account, nil
}

// ImportRawKey imports a hex encoded private key into the node keystore and
// returns the address of the imported account.
func (p *Personal) ImportRawKey(ctx context.Context, privateKey, password string) (string, error) {
	res, err := p.call(ctx, MethodImportRawKey, privateKey, password)
	if err != nil {
		return "", err
	}
	address, err := res.AsString(MethodImportRawKey)
	if err != nil {
		return "", p.track(MethodImportRawKey, err)
	}
	return address, nil
}

// Transaction starts building a transaction from `from` to `to`.
func (p *Personal) Transaction(from, to string) (*RawTransaction, error) {
	return NewRawTransaction(from, to)
}

// SendEthereum builds a transaction from the request and sends it, see Send.
func (p *Personal) SendEthereum(ctx context.Context, req SendRequest, password string) (string, error) {
	tx, err := req.Transaction()
	if err != nil {
		return "", p.track(MethodSendTransaction, err)
	}
	return p.Send(ctx, tx, password)
}

// Send asks the node to sign tx with the key of its `from` account, unlocked
// by password, and submit it. Returns the transaction hash.
func (p *Personal) Send(ctx context.Context, tx *RawTransaction, password string) (string, error) {
	if tx == nil {
		return "", p.track(MethodSendTransaction, &RawTransactionError{Field: "transaction", Err: errors.New("transaction is nil")})
	}
	args, err := tx.Serialize()
	if err != nil {
		return "", p.track(MethodSendTransaction, err)
	}
	res, err := p.call(ctx, MethodSendTransaction, args, password)
	if err != nil {
		return "", err
	}
	hash, err := res.AsString(MethodSendTransaction)
	if err != nil {
		return "", p.track(MethodSendTransaction, err)
	}
	logger.WithField("from", args.From).Infof("Transaction sent: %s", hash)
	return hash, nil
}

// Unlock unlocks address with password for the node's default duration.
func (p *Personal) Unlock(ctx context.Context, address, password string) (bool, error) {
	return p.unlock(ctx, address, password)
}

// UnlockFor unlocks address for the given duration, rounded up to whole
// seconds. The node keeps an account unlocked indefinitely for a zero
// duration, so only an explicit zero is sent as 0.
func (p *Personal) UnlockFor(ctx context.Context, address, password string, duration time.Duration) (bool, error) {
	if duration < 0 {
		return false, fmt.Errorf("unlock duration must not be negative")
	}
	seconds := uint64(duration / time.Second)
	if duration%time.Second != 0 {
		seconds++
	}
	return p.unlock(ctx, address, password, seconds)
}

func (p *Personal) unlock(ctx context.Context, address, password string, extra ...any) (bool, error) {
	res, err := p.call(ctx, MethodUnlockAccount, append([]any{address, password}, extra...)...)
	if err != nil {
		return false, err
	}
	unlocked, err := res.AsBool(MethodUnlockAccount)
	if err != nil {
		return false, p.track(MethodUnlockAccount, err)
	}
	return unlocked, nil
}

// LockAccount removes the private key of address from memory.
func (p *Personal) LockAccount(ctx context.Context, address string) (bool, error) {
	res, err := p.call(ctx, MethodLockAccount, address)
	if err != nil {
		return false, err
	}
	locked, err := res.AsBool(MethodLockAccount)
	if err != nil {
		return false, p.track(MethodLockAccount, err)
	}
	return locked, nil
}

// ListAccounts returns the addresses of all accounts in the node keystore.
func (p *Personal) ListAccounts(ctx context.Context) ([]string, error) {
	res, err := p.call(ctx, MethodListAccounts)
	if err != nil {
		return nil, err
	}
	accounts, err := res.AsStrings(MethodListAccounts)
	if err != nil {
		return nil, p.track(MethodListAccounts, err)
	}
	for _, account := range accounts {
		if !addressRegexp.MatchString(account) {
			return nil, p.track(MethodListAccounts, fmt.Errorf("%w: node returned %q", ErrInvalidAddress, account))
		}
	}
	return accounts, nil
}

func (p *Personal) call(ctx context.Context, method string, params ...any) (Result, error) {
	logger.WithField("method", method).Debugf("Calling RPC method")

	var raw json.RawMessage
	err := p.transport.Call(ctx, &raw, method, params...)
	if err != nil {
		RpcCallsCounter.WithLabelValues(method, "error").Inc()
		return nil, p.track(method, &ConnectionError{Method: method, Err: err})
	}
	RpcCallsCounter.WithLabelValues(method, "ok").Inc()
	return Result(raw), nil
}

// track logs and counts err, returning it unchanged.
func (p *Personal) track(method string, err error) error {
	label := errorLabel(err)
	ErrorsCounter.WithLabelValues(method, label).Inc()
	logger.WithField("method", method).WithField("error", label).Debugf("RPC method failed: %v", err)
	return err
}

func errorLabel(err error) string {
	var connErr *ConnectionError
	var resultErr *UnexpectedResultTypeError
	switch {
	case errors.As(err, &connErr):
		return "connection"
	case errors.As(err, &resultErr):
		return "unexpected_result_type"
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidData):
		return "invalid_data"
	default:
		return "unknown"
	}
}
