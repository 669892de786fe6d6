package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/render"
	"github.com/Belphemur/ShowSearch/internal/search"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search once and print the result cards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			cfg, api := newClient()
			defer api.Close()

			view := search.NewView()
			ctrl := search.NewController(api, render.NewCardRenderer(cfg.PlaceholderImageURL), view)
			defer ctrl.Close()

			err := ctrl.Submit(cmd.Context(), strings.Join(args, " "))
			snap := view.Snapshot()
			if err != nil && !errors.Is(err, search.ErrSuperseded) {
				return errors.New(snap.ErrorMessage)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), snap.Cards)
			}
			return writeCards(cmd.OutOrStdout(), snap)
		},
	}
	cmd.Flags().Bool("json", false, "Print the cards as JSON")
	return cmd
}

func writeJSON(w io.Writer, cards []render.Card) error {
	if cards == nil {
		cards = []render.Card{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}

func writeCards(w io.Writer, snap search.Snapshot) error {
	if snap.NoResults {
		_, err := fmt.Fprintln(w, "No shows found. Try a different search term.")
		return err
	}
	for i, card := range snap.Cards {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s  ★ %s\n%s\n%s\n%s\n", card.Name, card.Rating, card.Genres, card.Summary, card.ImageURL); err != nil {
			return err
		}
	}
	return nil
}
