package main

import (
	"github.com/spf13/cobra"
)

var verbCmd = &cobra.Command{
	Use:   "verb",
	Short: "Manage verbs and their conjugations",
}

var verbDownloadCmd = &cobra.Command{
	Use:   "download <infinitive>",
	Short: "Fetch a verb's conjugations from the language model and store them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		verb, err := a.verbs.Download(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(verb)
	},
}

var verbGetCmd = &cobra.Command{
	Use:   "get <infinitive>",
	Short: "Look up a stored verb and its conjugations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		verb, err := a.verbs.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		conjugations, err := a.verbs.Conjugations(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(map[string]interface{}{
			"verb":         verb,
			"conjugations": conjugations,
		})
	},
}

var verbRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random stored verb",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		verb, err := a.verbs.Random(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(verb)
	},
}

func init() {
	verbCmd.AddCommand(verbDownloadCmd, verbGetCmd, verbRandomCmd)
	rootCmd.AddCommand(verbCmd)
}
