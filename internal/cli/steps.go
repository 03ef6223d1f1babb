package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stride/internal/core/stepsignal"
	"github.com/example/stride/internal/ports/primary"
	"github.com/example/stride/internal/wire"
)

// StepsCmd returns the steps command
func StepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Record steps from counters or raw motion data",
	}

	cmd.AddCommand(stepsAddCmd())
	cmd.AddCommand(stepsSyncCmd())
	cmd.AddCommand(stepsFeedCmd())

	return cmd
}

func stepsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [count]",
		Short: "Add steps detected outside stride (relative increment)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[0], err)
			}

			snap, err := wire.TrackingService().AddSteps(context.Background(), primary.AddStepsRequest{
				Count: count,
			})
			if err != nil {
				return fmt.Errorf("failed to add steps: %w", err)
			}

			fmt.Printf("✓ Steps today: %s\n", color.New(color.FgHiGreen).Sprintf("%d", snap.StepsToday))
			return nil
		},
	}
}

func stepsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [total]",
		Short: "Sync a cumulative hardware step-counter reading",
		Long: `Feed a cumulative since-boot total from a hardware step counter.
The first reading anchors the baseline; later readings replace today's
count with the distance walked since the anchor. Re-sending the same
total is harmless.

Examples:
  stride steps sync 18250`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid counter total %q: %w", args[0], err)
			}

			snap, err := wire.TrackingService().ObserveStepTotal(context.Background(), primary.ObserveStepTotalRequest{
				Total: total,
			})
			if err != nil {
				return fmt.Errorf("failed to sync step counter: %w", err)
			}

			fmt.Printf("✓ Steps today: %s\n", color.New(color.FgHiGreen).Sprintf("%d", snap.StepsToday))
			return nil
		},
	}
}

func stepsFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed [file]",
		Short: "Detect steps from raw accelerometer samples",
		Long: `Run the motion heuristic over raw accelerometer samples and record
the detected steps. Each input line is "ax,ay,az,timestamp_ms" with
accelerations in m/s². Reads stdin when the file is "-" or omitted.

Examples:
  stride steps feed walk.csv
  sensor-dump | stride steps feed -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) > 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open samples file: %w", err)
				}
				defer f.Close()
				in = f
			}

			detected, skipped, err := detectSteps(in, wire.MotionConfig())
			if err != nil {
				return err
			}

			if detected == 0 {
				fmt.Printf("No steps detected (%d samples skipped).\n", skipped)
				return nil
			}

			snap, err := wire.TrackingService().AddSteps(context.Background(), primary.AddStepsRequest{
				Count: detected,
			})
			if err != nil {
				return fmt.Errorf("failed to add detected steps: %w", err)
			}

			fmt.Printf("✓ Detected %d steps (%d samples skipped). Steps today: %s\n",
				detected,
				skipped,
				color.New(color.FgHiGreen).Sprintf("%d", snap.StepsToday),
			)
			return nil
		},
	}
}

// detectSteps replays a sample stream through the motion detector and
// returns the number of detected steps plus the count of unparseable lines.
func detectSteps(in io.Reader, cfg stepsignal.MotionConfig) (detected, skipped int, err error) {
	detector := stepsignal.NewMotionDetector(cfg)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ax, ay, az, ts, ok := parseSample(line)
		if !ok {
			skipped++
			continue
		}

		if !detector.Started() {
			detector.Start(ts)
		}
		if _, stepped := detector.Sample(ax, ay, az, ts); stepped {
			detected++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("failed to read samples: %w", err)
	}

	return detected, skipped, nil
}

func parseSample(line string) (ax, ay, az float64, ts time.Time, ok bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return 0, 0, 0, time.Time{}, false
	}

	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return 0, 0, 0, time.Time{}, false
		}
		vals[i] = v
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(parts[3]), 10, 64)
	if err != nil {
		return 0, 0, 0, time.Time{}, false
	}

	return vals[0], vals[1], vals[2], time.UnixMilli(ms), true
}
