//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package main implements the golil shell, a host around the lil
// interpreter: an interactive REPL, a script runner, and the glue
// commands that connect the language core to the outside world.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlfiedler/golil/config"
	"github.com/nlfiedler/golil/lil"
)

// interrupted is raised by the SIGINT handler and polled by the
// interpreter between commands.
var interrupted atomic.Bool

var (
	flagExpr     string
	flagConfig   string
	flagVerbose  bool
	flagEnvStore bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "golil [script]",
		Short:         "golil is a shell for the lil scripting language",
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().StringVarP(&flagExpr, "expr", "e", "", "evaluate the given code and exit")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to the config file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&flagEnvStore, "env-store", false, "mirror rooted globals into LIL_ environment variables")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	interp := newInterp(cfg)

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT)
	go func() {
		for range sigch {
			interrupted.Store(true)
		}
	}()

	if flagExpr != "" {
		return evalAndPrint(interp, flagExpr)
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "os.ReadFile")
		}
		return evalAndPrint(interp, string(data))
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		repl(interp, cfg)
		return nil
	}
	// input is piped in; run it as one script
	data, err := readAll(os.Stdin)
	if err != nil {
		return err
	}
	return evalAndPrint(interp, data)
}

// loadConfig resolves and loads the configuration file.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			logrus.WithError(err).Warn("cannot locate config file, using defaults")
			return config.DefaultConfig(), nil
		}
	}
	return config.Load(path)
}

// setupLogging configures the shell's logger and writes the session
// banner.
func setupLogging(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	home, _ := os.UserHomeDir()
	logrus.WithFields(logrus.Fields{
		"version":   lil.Version,
		"goVersion": runtime.Version(),
		"home":      home,
	}).Debug("session start")
}

// newInterp builds the interpreter with the host commands and hooks
// in place.
func newInterp(cfg config.Config) *lil.Interp {
	interp := lil.New()
	interp.SetMaxParseDepth(cfg.MaxParseDepth)
	interp.SetDollarPrefix(cfg.DollarPrefix)
	interp.SetInterrupt(func() bool {
		return interrupted.Swap(false)
	})
	if flagEnvStore {
		interp.SetEnvStore(&processStore{prefix: "LIL_"})
	}
	interp.Register("write", func(i *lil.Interp, args []*lil.Value) *lil.Value {
		writeArgs(args, false)
		return nil
	})
	interp.Register("print", func(i *lil.Interp, args []*lil.Value) *lil.Value {
		writeArgs(args, true)
		return nil
	})
	return interp
}

// writeArgs prints the arguments joined by spaces.
func writeArgs(args []*lil.Value, newline bool) {
	for k, a := range args {
		if k > 0 {
			fmt.Print(" ")
		}
		fmt.Print(a.String())
	}
	if newline {
		fmt.Println()
	}
}

// processStore mirrors rooted globals into the process environment
// under a fixed prefix.
type processStore struct {
	prefix string
}

func (s *processStore) Get(name string) (string, bool) {
	return os.LookupEnv(s.prefix + name)
}

func (s *processStore) Set(name, value string) {
	if err := os.Setenv(s.prefix+name, value); err != nil {
		logrus.WithError(err).WithField("name", name).Warn("cannot mirror variable")
	}
}

// evalAndPrint runs the code and prints the result, or reports the
// error with its source position.
func evalAndPrint(interp *lil.Interp, code string) error {
	res, err := interp.Run(code)
	if err != nil {
		if lerr, ok := err.(*lil.Error); ok {
			return errors.Errorf("error at %d: %s", lerr.Pos, lerr.Msg)
		}
		return err
	}
	if res.Len() > 0 {
		fmt.Println(res.String())
	}
	return nil
}

// readAll slurps the reader.
func readAll(f *os.File) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "reading input")
	}
	return sb.String(), nil
}

// repl implements the read-eval-print-loop in which commands are
// read from standard input, processed by the interpreter, and the
// results are displayed to standard output. Lines starting with a
// colon are shell meta-commands.
func repl(interp *lil.Interp, cfg config.Config) {
	fmt.Println("Welcome to golil! Use ':exit' to leave, ':help' for help.")
	stdin := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(cfg.Prompt)
		input, err := stdin.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			if metaCommand(interp, input) {
				return
			}
			continue
		}
		res, err := interp.Run(input)
		if err != nil {
			if lerr, ok := err.(*lil.Error); ok {
				fmt.Printf("error at %d: %s\n", lerr.Pos, lerr.Msg)
			} else {
				fmt.Println(err)
			}
			continue
		}
		if res.Len() > 0 {
			fmt.Println(res.String())
		}
	}
}

// metaCommand handles a ':' shell command, returning true when the
// REPL should exit.
func metaCommand(interp *lil.Interp, input string) bool {
	parts, err := shlex.Split(input)
	if err != nil {
		fmt.Println(err)
		return false
	}
	switch parts[0] {
	case ":exit", ":quit":
		fmt.Println("Goodbye")
		return true
	case ":help":
		fmt.Println("Use :exit to leave the shell")
		fmt.Println("Use :load <path> to run a script file")
		fmt.Println("Use :log <level> to change the log level")
	case ":load":
		if len(parts) != 2 {
			fmt.Println("usage: :load <path>")
			break
		}
		data, err := os.ReadFile(parts[1])
		if err != nil {
			fmt.Println(err)
			break
		}
		if err := evalAndPrint(interp, string(data)); err != nil {
			fmt.Println(err)
		}
	case ":log":
		if len(parts) != 2 {
			fmt.Println("usage: :log <level>")
			break
		}
		level, err := logrus.ParseLevel(parts[1])
		if err != nil {
			fmt.Println(err)
			break
		}
		logrus.SetLevel(level)
	default:
		fmt.Println("I did not understand that command, try :help")
	}
	return false
}
