package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequestTransaction(t *testing.T) {
	nonce := uint64(3)
	req := SendRequest{
		From:     testFrom,
		To:       testTo,
		Amount:   "0.5",
		Gas:      21000,
		GasPrice: "20",
		Nonce:    &nonce,
	}
	tx, err := req.Transaction()
	require.NoError(t, err)

	args, err := tx.Serialize()
	require.NoError(t, err)
	assert.Equal(t, &TransactionArgs{
		From:     testFrom,
		To:       testTo,
		Value:    "0x6f05b59d3b20000",
		Gas:      "0x5208",
		GasPrice: "0x4a817c800",
		Nonce:    "0x3",
	}, args)
}

func TestSendRequestDefaults(t *testing.T) {
	tx, err := SendRequest{From: testFrom, To: testTo, Amount: "0"}.Transaction()
	require.NoError(t, err)

	args, err := tx.Serialize()
	require.NoError(t, err)
	assert.Equal(t, &TransactionArgs{From: testFrom, To: testTo, Value: "0x0"}, args)
}

func TestSendRequestFailsFast(t *testing.T) {
	_, err := SendRequest{From: "0x1", To: testTo}.Transaction()
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = SendRequest{From: testFrom, To: testTo, Amount: "1.2.3"}.Transaction()
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = SendRequest{From: testFrom, To: testTo, Amount: "1", GasPrice: "-1"}.Transaction()
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSendRequestRequiresAmount(t *testing.T) {
	_, err := SendRequest{From: testFrom, To: testTo, Gas: 21000}.Transaction()
	assert.ErrorIs(t, err, ErrInvalidAmount)

	var txErr *RawTransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "value", txErr.Field)
}
