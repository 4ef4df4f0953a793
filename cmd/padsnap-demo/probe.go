package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/padsnap/padsnap/pkg/padsnap"
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
	"github.com/padsnap/padsnap/pkg/padsnap/evdevinput"
)

func newProbeCommand() *cobra.Command {
	var follow string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "List evdev gamepads and their matched profiles",
		Long: "probe scans /dev/input for gamepads and prints the controller profile\n" +
			"each one matched. With --follow it streams sampled input frames from one\n" +
			"device, which is the fastest way to check a new profile's mappings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if follow != "" {
				return followDevice(follow)
			}
			return listDevices()
		},
	}
	cmd.Flags().StringVar(&follow, "follow", "", "stream input frames from a device path, e.g. /dev/input/event3")
	return cmd
}

func listDevices() error {
	devices, err := evdevinput.Scan()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("no gamepads found")
		return nil
	}
	for _, d := range devices {
		fmt.Printf("%-20s %-40s profile=%s score=%.2f\n", d.Path, d.Name, d.Profile, d.Score)
	}
	return nil
}

func followDevice(path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pad, err := evdevinput.Open(path)
	if err != nil {
		return err
	}
	defer pad.Close()

	fmt.Printf("following %s (%s), profile %s; press buttons, Ctrl-C to stop\n",
		pad.Name(), path, pad.Profile().Name)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !pad.Alive() {
				return fmt.Errorf("device %s went away", path)
			}
			if line := describeFrame(pad.Sample()); line != "" {
				fmt.Println(line)
			}
		}
	}
}

// describeFrame renders a non-idle frame as one line, or "" for idle ones.
func describeFrame(frame padsnap.InputFrame) string {
	var parts []string
	if names := maskNames(frame.Pressed); len(names) > 0 {
		parts = append(parts, "pressed="+strings.Join(names, ","))
	}
	if names := maskNames(frame.Released); len(names) > 0 {
		parts = append(parts, "released="+strings.Join(names, ","))
	}
	if names := maskNames(frame.Held); len(names) > 0 {
		parts = append(parts, "held="+strings.Join(names, ","))
	}
	if deflected(frame.Primary) {
		parts = append(parts, fmt.Sprintf("primary=%+.2f,%+.2f", frame.Primary.X, frame.Primary.Y))
	}
	if deflected(frame.Secondary) {
		parts = append(parts, fmt.Sprintf("secondary=%+.2f,%+.2f", frame.Secondary.X, frame.Secondary.Y))
	}
	return strings.Join(parts, "  ")
}

func maskNames(mask constants.ButtonMask) []string {
	var names []string
	for b := constants.VirtualButtonUp; b < constants.VirtualButtonCount; b++ {
		if mask.Has(b) {
			names = append(names, b.GetName())
		}
	}
	return names
}

func deflected(axis padsnap.AxisPair) bool {
	return axis.X > 0.2 || axis.X < -0.2 || axis.Y > 0.2 || axis.Y < -0.2
}
