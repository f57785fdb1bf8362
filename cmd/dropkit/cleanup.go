package main

import (
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/dropkit-ui/dropkit/pkg/upload"
)

func cleanupCmd() *cobra.Command {
	var (
		storeDir string
		s3Bucket string
		s3Prefix string
		maxAge   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Sweep unclaimed temp files",
		Long: `Delete temp files older than the given age from a disk or S3
store. The serve command sweeps its own store; this command is for
stores shared between processes or left behind by a crash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var store upload.Store
			switch {
			case s3Bucket != "":
				cfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
				if err != nil {
					return fmt.Errorf("load aws config: %w", err)
				}
				store = upload.NewS3Store(s3.NewFromConfig(cfg), s3Bucket, s3Prefix, 0)
			case storeDir != "":
				var err error
				store, err = upload.NewDiskStore(storeDir, 0)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("one of --store-dir or --s3-bucket is required")
			}

			if err := store.Cleanup(maxAge); err != nil {
				return err
			}
			fmt.Printf("swept entries older than %s\n", maxAge)
			return nil
		},
	}

	cmd.Flags().StringVar(&storeDir, "store-dir", "", "Temp store directory")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket holding the temp store")
	cmd.Flags().StringVar(&s3Prefix, "s3-prefix", "dropkit-tmp/", "Key prefix inside the S3 bucket")
	cmd.Flags().DurationVar(&maxAge, "max-age", 30*time.Minute, "Entries older than this are deleted")

	return cmd
}
