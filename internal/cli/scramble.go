package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedrag"
)

var scrambleLen int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble sequence",
	Long: `Generate a random scramble sequence in standard notation.

The sequence avoids turning the same face twice in a row and avoids three
consecutive turns on the same axis.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLen, "length", "n", 25, "Number of moves")
}

func runScramble(cmd *cobra.Command, args []string) error {
	moves, err := cubedrag.NewScramble(scrambleLen, nil)
	if err != nil {
		return err
	}

	fmt.Println(cubedrag.FormatMoves(moves))

	if verbose {
		state, err := cubedrag.NewSolvedState().Scramble(moves)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(state.String())
	}

	return nil
}
