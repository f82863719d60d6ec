// Package cli is the command-line front-end of Solitude. It stands in for
// the page layer of the storefront: every command maps onto the store
// operations the corresponding page would drive, and all state lives in the
// injected app composition; the commands themselves hold nothing.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syedOmegaPrime/SolitudeFinalProject/app"
	"github.com/syedOmegaPrime/SolitudeFinalProject/notify"
)

// New builds the root command over a wired application. Commands are
// constructed as closures over the app rather than package globals, so two
// CLIs over two apps never share state.
func New(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:   "solitude",
		Short: "Solitude – creative asset storefront and community",
		Long: `Solitude – browse, upload and purchase creative digital assets,
and discuss asset requests in the community forum.

All state is kept locally under the configured data directory and
survives across runs; there is no server behind this tool.`,
		SilenceUsage: true,
	}

	// Toast rendering: subscribe to the broadcaster (when present) and
	// flush whatever the executed command emitted once it finishes.
	var toasts <-chan notify.Notification
	if a.Broadcaster != nil {
		var id string
		id, toasts = a.Broadcaster.Subscribe()
		cobra.OnFinalize(func() { a.Broadcaster.Unsubscribe(id) })
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		flushToasts(cmd, toasts)
	}

	root.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newMarketplaceCmd(a),
		newUploadCmd(a),
		newCategoriesCmd(),
		newCartCmd(a),
		newCheckoutCmd(a),
		newForumCmd(a),
	)
	return root
}

// flushToasts drains pending notifications without blocking and renders
// them the way the toast surface of the storefront would.
func flushToasts(cmd *cobra.Command, toasts <-chan notify.Notification) {
	if toasts == nil {
		return
	}
	for {
		select {
		case n, ok := <-toasts:
			if !ok {
				return
			}
			style := successStyle
			if n.Variant == notify.VariantDestructive {
				style = dangerStyle
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", style.Render(n.Title+":"), n.Description)
		default:
			return
		}
	}
}
