// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fugue/checksum/checksum"
	"github.com/fugue/checksum/format"
	"github.com/fugue/checksum/hash"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

type checksumOptions struct {
	Algorithm  hash.Algorithm
	Region     string
	Debug      bool
	OutputMode string
	LogFormat  string
}

func getOptions() (checksumOptions, error) {
	alg, err := hash.ParseAlgorithm(viper.GetString("algorithm"))
	if err != nil {
		return checksumOptions{}, err
	}
	opts := checksumOptions{
		Algorithm:  alg,
		Region:     viper.GetString("region"),
		Debug:      viper.GetBool("debug"),
		OutputMode: viper.GetString("output"),
		LogFormat:  viper.GetString("log-format"),
	}
	switch opts.OutputMode {
	case format.Text, format.JSON:
	case "":
		opts.OutputMode = format.Text
	default:
		return opts, fmt.Errorf("Unknown output mode: %s", opts.OutputMode)
	}
	return opts, nil
}

func mustOptions() checksumOptions {
	opts, err := getOptions()
	if err != nil {
		fatal(err)
	}
	return opts
}

func newLogger(opts checksumOptions) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if opts.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if opts.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func newChecksummer(opts checksumOptions, logger logrus.FieldLogger) *checksum.Checksummer {
	return checksum.New(checksum.Options{
		Algorithm: opts.Algorithm,
		Logger:    logger,
	})
}

// closeHandler cancels the context on interrupt
func closeHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()
}

// reporter prints results and collects failures
type reporter struct {
	mode   string
	alg    hash.Algorithm
	stdout io.Writer
	stderr io.Writer
	errors *multierror.Error
}

func newReporter(opts checksumOptions) *reporter {
	return &reporter{
		mode:   opts.OutputMode,
		alg:    opts.Algorithm,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (r *reporter) report(name, sum string, err error) {
	result := format.Result{Name: name, Algorithm: r.alg.String(), Checksum: sum}
	w := r.stdout
	if err != nil {
		r.errors = multierror.Append(r.errors, fmt.Errorf("%s: %w", name, err))
		result.Checksum = ""
		result.Error = err.Error()
		if r.mode == format.Text {
			w = r.stderr
		}
	}
	if werr := format.Write(w, r.mode, result); werr != nil {
		r.errors = multierror.Append(r.errors, werr)
	}
}

// err returns the aggregate of all reported failures, or nil
func (r *reporter) err() error {
	return r.errors.ErrorOrNil()
}

// finish exits with a non-zero status if anything failed. Failures were
// already printed as they were reported.
func (r *reporter) finish() {
	if r.err() != nil {
		os.Exit(1)
	}
}

func algorithmNames() []string {
	var names []string
	for _, alg := range hash.Algorithms() {
		names = append(names, alg.String())
	}
	return names
}
