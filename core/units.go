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

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	EthDecimals  = 18
	GweiDecimals = 9

	// Upper bound for the integer digits of a Wei amount. Keeps LegacyDec
	// multiplication below its bit length limit.
	maxWeiDigits = 77
)

var amountRegexp = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ValidateAmount checks that the given string is a non-negative decimal number
// like `1`, `0.5` or `20.000000001`.
func ValidateAmount(amount string) error {
	if !amountRegexp.MatchString(amount) {
		return fmt.Errorf("%w: %q is not a non-negative decimal", ErrInvalidAmount, amount)
	}
	return nil
}

// EthToWei converts an ETH amount to Wei (amount * 10^18), truncating anything below 1 Wei.
func EthToWei(amount string) (*big.Int, error) {
	return toWei(amount, EthDecimals)
}

// GweiToWei converts a Gwei amount to Wei (amount * 10^9), truncating anything below 1 Wei.
func GweiToWei(amount string) (*big.Int, error) {
	return toWei(amount, GweiDecimals)
}

// ToHex encodes n as a lowercase `0x` prefixed hex string without leading zeros.
func ToHex(n *big.Int) string {
	if n == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(n)
}

// EthToWeiHex is EthToWei followed by ToHex.
func EthToWeiHex(amount string) (string, error) {
	wei, err := EthToWei(amount)
	if err != nil {
		return "", err
	}
	return ToHex(wei), nil
}

// GweiToWeiHex is GweiToWei followed by ToHex.
func GweiToWeiHex(amount string) (string, error) {
	wei, err := GweiToWei(amount)
	if err != nil {
		return "", err
	}
	return ToHex(wei), nil
}

func toWei(amount string, decimals int) (*big.Int, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	intPart, fracPart, _ := strings.Cut(amount, ".")
	if len(strings.TrimLeft(intPart, "0"))+decimals > maxWeiDigits {
		return nil, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, amount)
	}

	// Digits past the 18th are below 1 Wei for both units and are truncated
	// anyway, LegacyDec keeps the remaining 18 exactly.
	if len(fracPart) > math.LegacyPrecision {
		fracPart = fracPart[:math.LegacyPrecision]
	}
	normalized := intPart
	if fracPart != "" {
		normalized += "." + fracPart
	}

	dec, err := math.LegacyNewDecFromStr(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %q with error: %v", ErrInvalidAmount, amount, err)
	}
	wei := dec.MulInt(math.NewIntWithDecimal(1, decimals)).TruncateInt().BigInt()
	if wei.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %q overflows uint256", ErrInvalidAmount, amount)
	}
	return wei, nil
}
