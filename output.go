package b32

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type result struct {
	Alphabet string `bson:"alphabet"`
	Input    string `bson:"input"`
	Output   string `bson:"output"`
}

func writeResult(cmd *cobra.Command, cfg *config, r *result) error {
	w := cmd.OutOrStdout()
	if !cfg.JSON {
		_, err := fmt.Fprintln(w, r.Output)
		return err
	}
	b, err := bson.MarshalExtJSON(r, false, false)
	if err != nil {
		return fmt.Errorf("error during marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
