// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/cmd/registry-resolver/app"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()

	if err := app.Command(logger).Execute(); err != nil {
		logger.Sync()
		log.Fatalln(err)
	}
}
