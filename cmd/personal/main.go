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

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chronicleprotocol/personal/core"
)

type options struct {
	RpcURL       string
	Backend      string
	Password     string
	PasswordFile string
	LogLevel     string
	MetricsFile  string
}

// Checks and returns account password based on given options
func (o *options) getPassword() (string, error) {
	if o.Password != "" {
		return o.Password, nil
	}
	if o.PasswordFile == "" {
		return "", fmt.Errorf("please provide password using `--password` or `--password-file` flag")
	}
	p, err := os.ReadFile(o.PasswordFile)
	if err != nil {
		return "", fmt.Errorf("failed to read password file: %v", err)
	}
	return strings.TrimRight(string(p), "\r\n"), nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var opts options
	var closeTransport func()
	registry := prometheus.NewRegistry()
	registry.MustRegister(core.RpcCallsCounter, core.ErrorsCounter)

	cmd := &cobra.Command{
		Use:           "personal",
		Short:         "Manage node accounts and send node-signed transactions using the personal RPC namespace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %v", opts.LogLevel, err)
			}
			logger.SetLevel(level)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeTransport != nil {
				closeTransport()
			}
			if opts.MetricsFile == "" {
				return nil
			}
			return prometheus.WriteToTextfile(opts.MetricsFile, registry)
		},
	}

	// Lazily builds the client, so `--help` works without an RPC URL.
	client := func(ctx context.Context) (*core.Personal, core.Transport, error) {
		if opts.RpcURL == "" {
			return nil, nil, fmt.Errorf("please provide RPC URL using `--rpc-url` flag or PERSONAL_RPC_URL env variable")
		}
		t, closer, err := newTransport(ctx, opts.Backend, opts.RpcURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create transport: %v", err)
		}
		closeTransport = closer
		return core.NewPersonal(t), t, nil
	}

	cmd.PersistentFlags().StringVar(&opts.RpcURL, "rpc-url", os.Getenv("PERSONAL_RPC_URL"), "Node RPC URL, normally starts with http://**** or ws://****")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", backendGoEth, "RPC client implementation: `go-eth` or `geth`")
	cmd.PersistentFlags().StringVar(&opts.Password, "password", os.Getenv("PERSONAL_PASSWORD"), "Account password as text")
	cmd.PersistentFlags().StringVar(&opts.PasswordFile, "password-file", "", "Path to account password file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.MetricsFile, "metrics-file", "", "[Optional] Write prometheus metrics to this file on exit")

	cmd.AddCommand(
		newAccountCmd(&opts, client),
		importRawKeyCmd(&opts, client),
		unlockCmd(&opts, client),
		lockCmd(client),
		listAccountsCmd(client),
		sendCmd(&opts, client),
	)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
