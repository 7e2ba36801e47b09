package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aperrault/phraseur/internal/service"
)

// sentenceFlags collects the generation options shared by the sentence and
// problem subcommands.
type sentenceFlags struct {
	infinitive      string
	pronoun         string
	tense           string
	directObject    string
	indirectPronoun string
	negation        string
	random          bool
	incorrect       bool
}

func (f *sentenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.infinitive, "infinitive", "", "verb to practice (random stored verb when empty)")
	cmd.Flags().StringVar(&f.pronoun, "pronoun", "", "subject pronoun (random when empty)")
	cmd.Flags().StringVar(&f.tense, "tense", "", "tense (random when empty)")
	cmd.Flags().StringVar(&f.directObject, "direct-object", "", "direct object feature member")
	cmd.Flags().StringVar(&f.indirectPronoun, "indirect-pronoun", "", "indirect pronoun feature member")
	cmd.Flags().StringVar(&f.negation, "negation", "", "negation feature member")
	cmd.Flags().BoolVar(&f.random, "random", false, "let the model choose the feature values")
	cmd.Flags().BoolVar(&f.incorrect, "incorrect", false, "request a deliberately incorrect sentence")
}

func (f *sentenceFlags) toRequest() service.GenerateSentenceRequest {
	return service.GenerateSentenceRequest{
		Infinitive:      f.infinitive,
		Pronoun:         f.pronoun,
		Tense:           f.tense,
		DirectObject:    service.FeatureOption{Name: f.directObject, Incorrect: f.incorrect, Random: f.random},
		IndirectPronoun: service.FeatureOption{Name: f.indirectPronoun, Incorrect: f.incorrect, Random: f.random},
		Negation:        service.FeatureOption{Name: f.negation, Incorrect: f.incorrect, Random: f.random},
		IsCorrect:       !f.incorrect,
	}
}

var sentenceCmd = &cobra.Command{
	Use:   "sentence",
	Short: "Generate and retrieve practice sentences",
}

var newSentenceFlags sentenceFlags

var sentenceNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a sentence and store it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		sentence, err := a.sentences.Generate(cmd.Context(), newSentenceFlags.toRequest())
		if err != nil {
			return err
		}
		return printJSON(sentence)
	},
}

var sentenceGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Look up a stored sentence by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		sentence, err := a.sentences.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(sentence)
	},
}

var sentenceRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random stored sentence",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		sentence, err := a.sentences.Random(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(sentence)
	},
}

var sentenceValidateCmd = &cobra.Command{
	Use:   "validate <sentence>",
	Short: "Ask the model to judge a sentence's grammatical correctness",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		reply, err := a.sentences.Validate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var sentenceCorrectCmd = &cobra.Command{
	Use:   "correct <sentence>",
	Short: "Ask the model for a corrected version of a sentence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		reply, err := a.sentences.Correct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

func init() {
	newSentenceFlags.register(sentenceNewCmd)
	sentenceCmd.AddCommand(sentenceNewCmd, sentenceGetCmd, sentenceRandomCmd,
		sentenceValidateCmd, sentenceCorrectCmd)
	rootCmd.AddCommand(sentenceCmd)
}
