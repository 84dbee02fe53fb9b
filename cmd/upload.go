package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// uploadCmd uploads a local file with a public-read ACL.
var uploadCmd = &cobra.Command{
	Use:   "upload [file] [key]",
	Short: "Upload a file to the bucket",
	Long:  `Reads a local file and stores it under the given key with a public-read ACL.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, key := args[0], args[1]

		payload, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.service().Upload(cmd.Context(), payload, key, ""); err != nil {
			return err
		}

		rt.logger.Info("Object uploaded", zap.String("key", key), zap.Int("size", len(payload)))
		fmt.Printf("Uploaded %s to s3://%s/%s\n", path, rt.client.Bucket(), key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
