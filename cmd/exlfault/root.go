package main

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ib-77/exl/pkg/exl"
	"github.com/ib-77/exl/pkg/exl/fault"
	"github.com/ib-77/exl/pkg/exl/match"
	"github.com/spf13/cobra"
)

var signalsByName = map[string]syscall.Signal{
	"segv": syscall.SIGSEGV,
	"ill":  syscall.SIGILL,
	"fpe":  syscall.SIGFPE,
	"abrt": syscall.SIGABRT,
	"bus":  syscall.SIGBUS,
}

const raiseTimeout = 10 * time.Second

var sink int

func newRootCmd() *cobra.Command {
	var depth int
	var title string

	root := &cobra.Command{
		Use:           "exlfault",
		Short:         "Exercise the exl fault reporter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			fault.Configure(
				fault.WithOutput(cmd.ErrOrStderr()),
				fault.WithDepth(depth),
				fault.WithTitle(title),
			)
			fault.Register()
		},
	}
	root.PersistentFlags().IntVar(&depth, "depth", fault.DefaultDepth,
		fmt.Sprintf("backtrace depth, clamped to [%d, %d]", fault.MinDepth, fault.MaxDepth))
	root.PersistentFlags().StringVar(&title, "title", fault.DefaultTitle, "title above the backtrace block")

	root.AddCommand(
		newPanicCmd(),
		newSegvCmd(),
		newRaiseCmd(),
		newUnwrapCmd(),
		newDemoCmd(),
	)
	return root
}

func newPanicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panic [message]",
		Short: "Report message with a backtrace and abort",
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			msg := "boom"
			if len(args) == 1 {
				msg = args[0]
			}
			fault.Panic(msg)
		},
	}
}

func newSegvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segv",
		Short: "Dereference a nil pointer under fault.Guard",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fault.Guard(func() {
				var p *int
				sink = *p
			})
		},
	}
}

func newRaiseCmd() *cobra.Command {
	names := make([]string, 0, len(signalsByName))
	for name := range signalsByName {
		names = append(names, name)
	}

	return &cobra.Command{
		Use:       "raise <signal>",
		Short:     "Send a fatal signal to this process",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(_ *cobra.Command, args []string) error {
			sig, err := parseSignal(args[0])
			if err != nil {
				return err
			}
			if err := raise(sig); err != nil {
				return err
			}
			time.Sleep(raiseTimeout)
			return fmt.Errorf("%v was not handled within %v", sig, raiseTimeout)
		},
	}
}

func parseSignal(name string) (syscall.Signal, error) {
	sig, ok := signalsByName[strings.TrimPrefix(strings.ToLower(name), "sig")]
	if !ok {
		return 0, fmt.Errorf("unknown fatal signal %q", name)
	}
	return sig, nil
}

func newUnwrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unwrap <number>",
		Short: "Parse a number and unwrap the outcome; bad input is fatal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			v := exl.FromPair(n, err).Expect("unwrap: not a number: " + args[0])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [number...]",
		Short: "Match parse outcomes without faulting",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				line := match.Outcome(exl.FromPair(n, err),
					func(n int) string { return "ok:" + strconv.Itoa(n) },
					func(err error) string { return "err:" + arg })
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
