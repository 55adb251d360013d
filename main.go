/*
 * udp4 - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/udp4/command/parser"
	"github.com/rcornwell/udp4/command/reader"
	"github.com/rcornwell/udp4/config/udpconfig"
	"github.com/rcornwell/udp4/udp"
	"github.com/rcornwell/udp4/util/logger"
	"github.com/rcornwell/udp4/util/trace"
)

var Logger *slog.Logger

func main() {
	optLibrary := getopt.StringLong("library", 'c', "", "UDP library file to preload")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optTrace := getopt.StringLong("trace", 't', "0", "Row-match trace mask")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start the interactive console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if optLogFile != nil && *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)

	mask, err := strconv.ParseInt(*optTrace, 0, 64)
	if err != nil {
		mask = 0
	}
	live := mask != 0
	handler := logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &live)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("udp4 started")

	if mask != 0 {
		trace.SetEnabled(trace.Mask(mask))
	}

	sess := parser.NewSession()
	sess.Log = handler

	if optLibrary != nil && *optLibrary != "" {
		lib, err := udpconfig.Load(*optLibrary)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		for _, label := range lib.Registry.Labels() {
			def, _ := lib.Registry.Lookup(label)
			if err := sess.Registry.Register(def); err != nil {
				Logger.Error(err.Error())
				os.Exit(1)
			}
		}
		for _, spec := range lib.Instances {
			def, err := sess.Registry.Lookup(spec.Label)
			if err != nil {
				Logger.Error(err.Error())
				os.Exit(1)
			}
			sess.Instances[spec.Name] = udp.NewInstance(def)
		}
		Logger.Info("loaded UDP library", "path", *optLibrary, "definitions", len(lib.Registry.Labels()), "instances", len(lib.Instances))
	}

	if !*optInteractive {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		Logger.Info("Got quit signal")
		return
	}

	reader.ConsoleReader(sess)
	Logger.Info("Shutting down")
}
