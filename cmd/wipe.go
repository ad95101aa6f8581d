package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/winshred/internal/config"
	"github.com/lakshaymaurya-felt/winshred/internal/logging"
	"github.com/lakshaymaurya-felt/winshred/internal/progressui"
	"github.com/lakshaymaurya-felt/winshred/internal/ui"
	"github.com/lakshaymaurya-felt/winshred/internal/wipe"
)

var (
	wipeMethod   string
	wipeProfile  string
	wipeThrottle float64
	wipeYes      bool
)

var wipeCmd = &cobra.Command{
	Use:   "wipe <path>",
	Short: "Securely delete a file or folder",
	Long: `Overwrite the target's content with the selected wipe method, then
remove it. Folders are wiped file by file; their now-empty directories are
removed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runWipe,
}

func init() {
	wipeCmd.Flags().StringVarP(&wipeMethod, "method", "m", "", "Wipe method: single, dod3, dod7, gutmann (overrides profile)")
	wipeCmd.Flags().StringVarP(&wipeProfile, "profile", "p", "", "Named profile from the config file")
	wipeCmd.Flags().Float64Var(&wipeThrottle, "throttle", 0, "Max write speed in MB/s (0 = unthrottled)")
	wipeCmd.Flags().BoolVarP(&wipeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	log := logging.New(debug)
	defer log.Sync() //nolint:errcheck

	target := args[0]
	method, opts, err := resolveEngineSettings()
	if err != nil {
		return err
	}

	info, err := os.Lstat(target)
	if err != nil {
		return errors.Wrap(err, "target")
	}

	if !wipeYes && !confirm(fmt.Sprintf("Permanently destroy %q with %s (%d passes)?", target, method, method.Passes())) {
		fmt.Println("Aborted.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opID := uuid.NewString()
	log.Info("wipe operation started",
		zap.String("op_id", opID),
		zap.String("target", target),
		zap.String("method", method.String()))

	eraser := wipe.NewEraser(append(opts, wipe.WithLogger(log))...)
	title := fmt.Sprintf("Wiping %s (%s, %d passes)", target, method, method.Passes())
	res := progressui.Run(ctx, title, func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result {
		if info.IsDir() {
			return eraser.DeleteDirectory(ctx, target, method, onProgress)
		}
		return eraser.DeleteFile(ctx, target, method, onProgress)
	})

	log.Info("wipe operation finished",
		zap.String("op_id", opID),
		zap.Bool("success", res.Success),
		zap.Uint64("bytes_wiped", res.BytesWiped),
		zap.Int("passes_completed", res.PassesCompleted),
		zap.Duration("duration", res.Duration))

	return printSummary(res)
}

// resolveEngineSettings merges config profile and flags into the method and
// engine options for this invocation. The --method flag wins over the
// profile's method; --throttle wins over the profile's speed cap.
func resolveEngineSettings() (wipe.Method, []wipe.Option, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", nil, err
	}
	profile, err := cfg.Profile(wipeProfile)
	if err != nil {
		return "", nil, err
	}

	methodName := profile.Method
	if wipeMethod != "" {
		methodName = wipeMethod
	}
	method, err := wipe.ParseMethod(methodName)
	if err != nil {
		return "", nil, err
	}

	opts := profile.Options()
	if wipeThrottle > 0 {
		opts = append(opts, wipe.WithMaxSpeedMBps(wipeThrottle))
	}
	return method, opts, nil
}

// confirm asks for an explicit yes on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printSummary renders the operation result and converts failures into a
// command error.
func printSummary(res *wipe.Result) error {
	switch {
	case res.Success:
		fmt.Println(ui.SuccessStyle.Render("Done.") + " " + ui.MutedStyle.Render(
			fmt.Sprintf("%s wiped, %d passes, %s",
				ui.HumanBytes(res.BytesWiped), res.PassesCompleted, ui.HumanDuration(res.Duration))))
		return nil
	case res.Cancelled:
		fmt.Println(ui.WarningStyle.Render("Cancelled.") + " " + ui.MutedStyle.Render(
			fmt.Sprintf("%s wiped across %d completed passes",
				ui.HumanBytes(res.BytesWiped), res.PassesCompleted)))
		return errors.New("operation cancelled")
	default:
		fmt.Println(ui.ErrorStyle.Render("Failed.") + " " + ui.MutedStyle.Render(
			fmt.Sprintf("%s wiped, %d passes completed",
				ui.HumanBytes(res.BytesWiped), res.PassesCompleted)))
		return errors.Newf("wipe failed: %s", res.ErrorMessage())
	}
}
