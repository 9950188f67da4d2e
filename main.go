/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command bruecke builds DTCG design tokens exported by Tokens Bruecke.
package main

import (
	"context"
	"os"
	"os/signal"

	"bennypowers.dev/bruecke/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
