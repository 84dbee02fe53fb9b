package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteCmd deletes a single object.
var deleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete an object from the bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.service().Delete(cmd.Context(), key, ""); err != nil {
			return err
		}

		rt.logger.Info("Object deleted", zap.String("key", key))
		fmt.Printf("Deleted s3://%s/%s\n", rt.client.Bucket(), key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}
