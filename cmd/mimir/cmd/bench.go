/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/mimirdb/pkg/codec"
	"github.com/ssargent/mimirdb/pkg/rowlog"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Write synthetic rows through the row buffer into the log",
	Long: `Write synthetic rows through a single reused row buffer into the
append-only row log and report throughput.

Each row has the schema (id int64, score float64, payload bytes); the
payload size is configurable so the buffer's growth behavior can be
observed via the reported allocation count.

Example:
  mimir bench --rows 100000 --payload 256`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, _ := cmd.Flags().GetInt("rows")
		payloadSize, _ := cmd.Flags().GetInt("payload")

		fsync, err := time.ParseDuration(cfg.Writer.FsyncInterval)
		if err != nil {
			fsync = time.Second
		}

		logWriter, err := rowlog.NewWriter(rowlog.WriterConfig{
			Dir:           filepath.Join(cfg.DataDir, "rows"),
			FsyncInterval: fsync,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to open row log: %w", err)
		}
		defer logWriter.Close()

		w, err := codec.NewRowWriter(3, cfg.Writer.InitialExtra)
		if err != nil {
			return fmt.Errorf("failed to create row writer: %w", err)
		}

		payload := make([]byte, payloadSize)
		for i := range payload {
			payload[i] = byte(i)
		}

		start := time.Now()
		for i := 0; i < rows; i++ {
			w.Reset()
			w.WriteInt64(0, int64(i))
			w.WriteFloat64(1, float64(i)*0.5)
			if err := w.WriteBytes(2, payload); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			if _, err := logWriter.Append(1, w.Finish()); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
		}
		if err := logWriter.Sync(); err != nil {
			return err
		}
		elapsed := time.Since(start)

		log.WithFields(log.Fields{
			"rows":        rows,
			"allocations": w.Buffer().Allocations(),
		}).Debug("bench complete")

		fmt.Printf("Wrote %d rows in %s (%.0f rows/s)\n", rows, elapsed, float64(rows)/elapsed.Seconds())
		fmt.Printf("Row log size: %d bytes, buffer allocations: %d\n",
			logWriter.Size(), w.Buffer().Allocations())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Int("rows", 100000, "Number of rows to write")
	benchCmd.Flags().Int("payload", 128, "Variable-length payload size per row")
}
