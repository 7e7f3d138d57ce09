package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		name   string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a gallery snapshot to S3",
		Long: `Render the widget gallery and upload the HTML snapshot to an
S3 bucket. Credentials come from the standard AWS environment.

Examples:
  lumen publish --bucket=my-previews
  lumen publish --bucket=my-previews --prefix=snapshots/ --name=crust`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				return fmt.Errorf("publish: --bucket is required")
			}

			client := s3.New(s3.Options{Region: region})
			p := publish.New(client, bucket, publish.WithPrefix(prefix))

			key, err := p.Publish(cmd.Context(), name, newCrustPicker())
			if err != nil {
				return err
			}
			fmt.Printf("published s3://%s/%s\n", bucket, key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (required)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "snapshots/", "Key prefix")
	cmd.Flags().StringVarP(&name, "name", "n", "gallery", "Snapshot name")
	cmd.Flags().StringVarP(&region, "region", "r", "us-east-1", "AWS region")

	return cmd
}
