package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"neurograph/internal/model"
	"neurograph/internal/server"
	"neurograph/internal/storage"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Build the 2-3-1 sample network and print its snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			e.network.BuildSample()
			return printSnapshot(cmd, e.network.Snapshot())
		},
	}
}

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict [input...]",
		Short: "Run one forward pass over the sample network",
		Example: `  neurographctl predict 0.5 0.8
  neurographctl predict --seed 42 --json 1 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]float64, 0, len(args))
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid input %q: %w", arg, err)
				}
				inputs = append(inputs, v)
			}

			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			e.network.BuildSample()
			outputs := e.network.Predict(inputs)

			if jsonOutput(cmd) {
				return writeJSON(cmd, map[string]any{"inputs": inputs, "outputs": outputs})
			}
			for i, v := range outputs {
				fmt.Fprintf(cmd.OutOrStdout(), "output[%d] = %.6f\n", i, v)
			}
			return nil
		},
	}
}

func newAnimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Step the activity animation over the sample network and record frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("frames") {
				e.cfg.Animation.Frames, _ = cmd.Flags().GetInt("frames")
			}
			if cmd.Flags().Changed("delta") {
				e.cfg.Animation.Delta, _ = cmd.Flags().GetFloat64("delta")
			}
			if err := e.cfg.Validate(); err != nil {
				return err
			}

			rec, err := e.openRecorder(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = storage.CloseIfSupported(rec)
			}()

			e.network.BuildSample()
			session := storage.NewSession(rec)
			var last model.Frame
			for i := 0; i < e.cfg.Animation.Frames; i++ {
				e.network.Step(e.cfg.Animation.Delta)
				last, err = session.Record(cmd.Context(), e.network.AnimationTime(), e.network.Snapshot())
				if err != nil {
					return err
				}
			}
			e.logger.Info("animation recorded", "session", session.ID, "frames", session.Frames(), "recorder", e.cfg.Recorder.Kind)

			if jsonOutput(cmd) {
				return writeJSON(cmd, last)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session=%s frames=%d clock=%.3f average_activation=%.6f\n",
				session.ID, session.Frames(), last.Clock, last.Snapshot.Stats.AverageActivation)
			return nil
		},
	}
	cmd.Flags().Int("frames", 0, "number of animation steps (default from config)")
	cmd.Flags().Float64("delta", 0, "clock increment per step (default from config)")
	return cmd
}

func newOrbitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Lay the sample network out on a circle",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			at, _ := cmd.Flags().GetFloat64("time")
			e.network.BuildSample()
			e.network.Orbit(at)
			return printSnapshot(cmd, e.network.Snapshot())
		},
	}
	cmd.Flags().Float64("time", 0, "orbit time in milliseconds")
	return cmd
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the console dump of the sample network",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			steps, _ := cmd.Flags().GetInt("steps")
			out, _ := cmd.Flags().GetString("out")

			e.network.BuildSample()
			for i := 0; i < steps; i++ {
				e.network.Step(e.cfg.Animation.Delta)
			}

			if out == "" {
				return e.network.Dump(cmd.OutOrStdout())
			}
			if err := os.WriteFile(out, []byte(e.network.DumpString()), 0o644); err != nil {
				return fmt.Errorf("save dump: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dump saved to %s\n", out)
			return nil
		},
	}
	cmd.Flags().Int("steps", 0, "animation steps to run before dumping")
	cmd.Flags().String("out", "", "write the dump to this file instead of stdout")
	return cmd
}

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render the sample network as Graphviz DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			steps, _ := cmd.Flags().GetInt("steps")
			e.network.BuildSample()
			for i := 0; i < steps; i++ {
				e.network.Step(e.cfg.Animation.Delta)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), e.network.DOT())
			return err
		},
	}
	cmd.Flags().Int("steps", 0, "animation steps to run before rendering")
	return cmd
}

func newFramesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames [session]",
		Short: "List recorder sessions, or the frames of one session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			rec, err := e.openRecorder(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = storage.CloseIfSupported(rec)
			}()

			if len(args) == 0 {
				ids, err := rec.Sessions(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd, ids)
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}

			frames, err := rec.ListFrames(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd, frames)
			}
			for _, f := range frames {
				fmt.Fprintf(cmd.OutOrStdout(), "frame=%d clock=%.3f neurons=%d average_activation=%.6f\n",
					f.Index, f.Clock, f.Snapshot.Stats.TotalNeurons, f.Snapshot.Stats.AverageActivation)
			}
			return nil
		},
	}
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one network over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				e.cfg.Server.Addr = addr
			}

			rec, err := e.openRecorder(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = storage.CloseIfSupported(rec)
			}()

			reg := prometheus.NewRegistry()
			if err := e.metrics.Register(reg); err != nil {
				return err
			}

			if sample, _ := cmd.Flags().GetBool("sample"); sample {
				e.network.BuildSample()
			}

			srv := &http.Server{
				Addr: e.cfg.Server.Addr,
				Handler: server.NewHandler(server.Config{
					Network:  e.network,
					Recorder: rec,
					Gatherer: reg,
					Logger:   e.logger,
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				e.logger.Info("serving", "addr", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				e.logger.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config)")
	cmd.Flags().Bool("sample", true, "start with the sample network")
	return cmd
}

func printSnapshot(cmd *cobra.Command, snap model.Snapshot) error {
	if jsonOutput(cmd) {
		return writeJSON(cmd, snap)
	}
	w := cmd.OutOrStdout()
	s := snap.Stats
	fmt.Fprintf(w, "neurons=%d (input=%d hidden=%d output=%d) connections=%d average_activation=%.6f\n",
		s.TotalNeurons, s.InputNeurons, s.HiddenNeurons, s.OutputNeurons, s.TotalConnections, s.AverageActivation)
	for _, n := range snap.Neurons {
		fmt.Fprintf(w, "  %s%d %-6s pos=(%.1f, %.1f) activation=%.3f bias=%.3f\n",
			n.Symbol, n.ID, n.Type, n.Position.X, n.Position.Y, n.Activation, n.Bias)
	}
	for _, c := range snap.Connections {
		fmt.Fprintf(w, "  %d -> %d weight=%.3f active=%t\n", c.From, c.To, c.Weight, c.Active)
	}
	return nil
}
