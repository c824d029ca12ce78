package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryandholt/rrule"
	"github.com/ryandholt/rrule/ical"
)

var (
	rootCmd = &cobra.Command{
		Use:   "rrulecat [RRULE]",
		Short: "rrulecat prints the occurrences an RFC 5545 RRULE value denotes",
		Long: "rrulecat takes an RRULE value (as an argument, or read from the first\n" +
			"VEVENT/VTODO carrying an RRULE in an .ics file via --ics) and prints its occurrences,\n" +
			"one RFC3339 timestamp per line.",
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	fDtstart string
	fCount   int
	fUntil   string
	fICS     string
)

func init() {
	rootCmd.Flags().StringVar(&fDtstart, "dtstart", "", "anchor date-time (RFC3339); required unless --ics is given")
	rootCmd.Flags().IntVar(&fCount, "count", 20, "maximum number of occurrences to print")
	rootCmd.Flags().StringVar(&fUntil, "until", "", "stop printing occurrences after this RFC3339 instant")
	rootCmd.Flags().StringVar(&fICS, "ics", "", "read the RRULE and anchor from the first VEVENT/VTODO with an RRULE in this .ics file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ruleText, dtstart, err := resolveInput(args)
	if err != nil {
		return err
	}

	rule, err := rrule.Parse(ruleText)
	if err != nil {
		return fmt.Errorf("rrulecat: %w", err)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()

	var until time.Time
	if fUntil != "" {
		until, err = time.Parse(time.RFC3339, fUntil)
		if err != nil {
			return fmt.Errorf("rrulecat: invalid --until: %w", err)
		}
	}

	n := 0
	for occ := range rule.All(dtstart) {
		if !until.IsZero() && occ.After(until) {
			break
		}
		fmt.Fprintln(w, occ.Format(time.RFC3339))
		n++
		if n >= fCount {
			break
		}
	}
	return nil
}

func resolveInput(args []string) (ruleText string, dtstart time.Time, err error) {
	if fICS != "" {
		f, err := os.Open(fICS)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("rrulecat: opening %s: %w", fICS, err)
		}
		defer f.Close()

		components, err := ical.ScanReader(f)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("rrulecat: scanning %s: %w", fICS, err)
		}
		for _, c := range components {
			if c.RRule != "" {
				return c.RRule, c.Anchor, nil
			}
		}
		return "", time.Time{}, fmt.Errorf("rrulecat: no component with an RRULE found in %s", fICS)
	}

	if len(args) == 0 {
		return "", time.Time{}, fmt.Errorf("rrulecat: an RRULE argument or --ics is required")
	}
	if fDtstart == "" {
		return "", time.Time{}, fmt.Errorf("rrulecat: --dtstart is required unless --ics is given")
	}
	dtstart, err = time.Parse(time.RFC3339, fDtstart)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("rrulecat: invalid --dtstart: %w", err)
	}
	return args[0], dtstart, nil
}
