package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/winshred/internal/logging"
	"github.com/lakshaymaurya-felt/winshred/internal/progressui"
	"github.com/lakshaymaurya-felt/winshred/internal/ui"
	"github.com/lakshaymaurya-felt/winshred/internal/volume"
	"github.com/lakshaymaurya-felt/winshred/internal/wipe"
)

var freespaceCmd = &cobra.Command{
	Use:   "freespace <volume>",
	Short: "Overwrite the free space on a volume",
	Long: `Fill all currently-free space on a volume with the selected wipe
pattern, so remnants of previously deleted files cannot be recovered. The
fill file is temporary and is removed automatically, even on cancellation.`,
	Args: cobra.ExactArgs(1),
	RunE: runFreespace,
}

func init() {
	freespaceCmd.Flags().StringVarP(&wipeMethod, "method", "m", "", "Wipe method: single, dod3, dod7, gutmann (overrides profile)")
	freespaceCmd.Flags().StringVarP(&wipeProfile, "profile", "p", "", "Named profile from the config file")
	freespaceCmd.Flags().Float64Var(&wipeThrottle, "throttle", 0, "Max write speed in MB/s (0 = unthrottled)")
	freespaceCmd.Flags().BoolVarP(&wipeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runFreespace(cmd *cobra.Command, args []string) error {
	log := logging.New(debug)
	defer log.Sync() //nolint:errcheck

	root, err := volume.Resolve(args[0])
	if err != nil {
		return err
	}
	method, opts, err := resolveEngineSettings()
	if err != nil {
		return err
	}

	free, err := volume.FreeBytes(root)
	if err != nil {
		return err
	}
	if !wipeYes && !confirm(fmt.Sprintf("Overwrite %s of free space on %s with %s (%d passes)?",
		ui.HumanBytes(free), root, method, method.Passes())) {
		fmt.Println("Aborted.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opID := uuid.NewString()
	log.Info("free-space wipe started",
		zap.String("op_id", opID),
		zap.String("volume", root),
		zap.String("method", method.String()),
		zap.Uint64("free_bytes", free))

	eraser := wipe.NewEraser(append(opts, wipe.WithLogger(log))...)
	title := fmt.Sprintf("Wiping free space on %s (%s, %d passes)", root, method, method.Passes())
	res := progressui.Run(ctx, title, func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result {
		return eraser.WipeFreeSpace(ctx, root, method, onProgress)
	})

	log.Info("free-space wipe finished",
		zap.String("op_id", opID),
		zap.Bool("success", res.Success),
		zap.Uint64("bytes_wiped", res.BytesWiped),
		zap.Int("passes_completed", res.PassesCompleted),
		zap.Duration("duration", res.Duration))

	return printSummary(res)
}
