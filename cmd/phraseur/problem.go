package main

import (
	"github.com/spf13/cobra"

	"github.com/aperrault/phraseur/internal/service"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Generate practice problems",
	Long: `Problems are sentences generated for drilling: the verb defaults to a
random stored one and correctness can be randomized so the learner has to
judge each sentence.`,
}

var (
	problemFlags             sentenceFlags
	problemRandomCorrectness bool
	batchWorkers             int
	batchQuantity            int
)

func problemRequest() service.ProblemRequest {
	return service.ProblemRequest{
		GenerateSentenceRequest: problemFlags.toRequest(),
		RandomCorrectness:       problemRandomCorrectness,
	}
}

var problemRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a single practice problem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		sentence, err := a.problems.Random(cmd.Context(), problemRequest())
		if err != nil {
			return err
		}
		return printJSON(sentence)
	},
}

var problemBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a batch of practice problems concurrently",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		sentences, err := a.problems.Batch(cmd.Context(), batchWorkers, batchQuantity, problemRequest())
		if err != nil {
			return err
		}
		return printJSON(sentences)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{problemRandomCmd, problemBatchCmd} {
		problemFlags.register(cmd)
		cmd.Flags().BoolVar(&problemRandomCorrectness, "random-correctness", false, "randomize whether each sentence is correct")
	}
	problemBatchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of concurrent workers")
	problemBatchCmd.Flags().IntVar(&batchQuantity, "quantity", 10, "number of problems to generate")

	problemCmd.AddCommand(problemRandomCmd, problemBatchCmd)
	rootCmd.AddCommand(problemCmd)
}
