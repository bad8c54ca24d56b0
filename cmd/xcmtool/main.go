// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/parallel-finance/precompile-utils/internal/log"
	"github.com/parallel-finance/precompile-utils/lib/xcm"
	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
)

var logger = log.NewFromGlobal(
	log.SetLevel(log.Info),
	log.AddContext("pkg", "xcmtool"))

var verboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "log at the debug level",
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "xcmtool"
	app.Usage = "inspect EVM calldata multilocations"
	app.Flags = []cli.Flag{verboseFlag}
	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool(verboseFlag.Name) {
			logger = log.NewFromGlobal(
				log.SetLevel(log.Debug),
				log.AddContext("pkg", "xcmtool"))
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode ABI encoded multilocation hex to a readable form",
			ArgsUsage: "<hex>",
			Action:    decodeAction,
		},
		{
			Name:      "transcode",
			Usage:     "transcode ABI encoded multilocation hex to its SCALE hex form",
			ArgsUsage: "<hex>",
			Action:    transcodeAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func decodeArg(ctx *cli.Context) (xcm.MultiLocation, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return xcm.MultiLocation{}, fmt.Errorf("missing hex argument")
	}

	data, err := hexutil.Decode(arg)
	if err != nil {
		return xcm.MultiLocation{}, fmt.Errorf("parsing hex argument: %w", err)
	}
	logger.Debug(fmt.Sprintf("decoding %d bytes of calldata", len(data)))

	location, err := xcm.DecodeMultiLocation(evmabi.NewReader(data))
	if err != nil {
		return xcm.MultiLocation{}, fmt.Errorf("decoding multilocation: %w", err)
	}
	return location, nil
}

func decodeAction(ctx *cli.Context) error {
	location, err := decodeArg(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, location)
	return nil
}

func transcodeAction(ctx *cli.Context) error {
	location, err := decodeArg(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := location.Encode(*scale.NewEncoder(&buf)); err != nil {
		return fmt.Errorf("scale encoding multilocation: %w", err)
	}

	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(buf.Bytes()))
	return nil
}
