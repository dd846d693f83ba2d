package main

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chronicleprotocol/personal/core"
)

type clientFactory func(ctx context.Context) (*core.Personal, core.Transport, error)

func newAccountCmd(opts *options, client clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "new-account",
		Short: "Create a new account in the node keystore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := opts.getPassword()
			if err != nil {
				return err
			}
			p, _, err := client(cmd.Context())
			if err != nil {
				return err
			}
			address, err := p.NewAccount(cmd.Context(), password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}
}

func importRawKeyCmd(opts *options, client clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "import-raw-key <private-key>",
		Short: "Import a hex encoded private key into the node keystore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := opts.getPassword()
			if err != nil {
				return err
			}
			p, _, err := client(cmd.Context())
			if err != nil {
				return err
			}
			address, err := p.ImportRawKey(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}
}

func unlockCmd(opts *options, client clientFactory) *cobra.Command {
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "unlock <address>",
		Short: "Unlock an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := opts.getPassword()
			if err != nil {
				return err
			}
			p, _, err := client(cmd.Context())
			if err != nil {
				return err
			}
			var unlocked bool
			if duration > 0 {
				unlocked, err = p.UnlockFor(cmd.Context(), args[0], password, duration)
			} else {
				unlocked, err = p.Unlock(cmd.Context(), args[0], password)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), unlocked)
			return nil
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 0, "[Optional] How long the account stays unlocked, node default if not set")
	return cmd
}

func lockCmd(client clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "lock <address>",
		Short: "Lock an unlocked account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := client(cmd.Context())
			if err != nil {
				return err
			}
			locked, err := p.LockAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), locked)
			return nil
		},
	}
}

func listAccountsCmd(client clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list-accounts",
		Short: "List accounts in the node keystore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := client(cmd.Context())
			if err != nil {
				return err
			}
			accounts, err := p.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			for _, account := range accounts {
				fmt.Fprintln(cmd.OutOrStdout(), account)
			}
			return nil
		},
	}
}

func sendCmd(opts *options, client clientFactory) *cobra.Command {
	var req core.SendRequest
	var nonce uint64
	var data string
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send ETH, signed by the node with the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("nonce") {
				req.Nonce = &nonce
			}
			tx, err := req.Transaction()
			if err != nil {
				return err
			}
			if data != "" {
				if err := tx.SetData(data); err != nil {
					return err
				}
			}

			password, err := opts.getPassword()
			if err != nil {
				return err
			}
			p, t, err := client(cmd.Context())
			if err != nil {
				return err
			}
			hash, err := p.Send(cmd.Context(), tx, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)

			if wait == 0 {
				return nil
			}
			receipt, err := core.WaitForReceipt(cmd.Context(), t, hash, time.Second, wait)
			if err != nil {
				return err
			}
			logger.WithField("txHash", hash).Infof("Transaction mined in block %v", receipt.BlockNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.From, "from", "", "Sender address, must be an account of the node")
	cmd.Flags().StringVar(&req.To, "to", "", "Recipient address")
	cmd.Flags().StringVar(&req.Amount, "amount", "0", "Amount in ETH, e.g. `1.5`")
	cmd.Flags().Uint64Var(&req.Gas, "gas", 0, "[Optional] Gas limit, estimated by the node if not set")
	cmd.Flags().StringVar(&req.GasPrice, "gas-price", "", "[Optional] Gas price in Gwei, e.g. `20`")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "[Optional] Account nonce, picked by the node if not set")
	cmd.Flags().StringVar(&data, "data", "", "[Optional] Call data, `0x` prefixed hex")
	cmd.Flags().DurationVar(&wait, "wait", 0, "[Optional] Wait up to this long for the transaction receipt")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
