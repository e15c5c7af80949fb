package cmd

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/export"
	"github.com/integra/explorer/internal/storage"
)

var (
	exportFilter struct {
		chainId         uint64
		contractType    string
		contractAddress string
		integraHash     string
		documentHash    string
		method          string
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export filtered transactions to parquet",
		Long:  "Write every transaction matching the filters to a parquet file and upload it to S3 when export.s3.bucket is configured.",
		Run: func(cmd *cobra.Command, args []string) {
			RunExport(cmd, args)
		},
	}
)

func init() {
	exportCmd.Flags().Uint64Var(&exportFilter.chainId, "chain-id", 0, "Only export this chain")
	exportCmd.Flags().StringVar(&exportFilter.contractType, "contract-type", "", "Only export this contract type")
	exportCmd.Flags().StringVar(&exportFilter.contractAddress, "contract-address", "", "Only export this contract address")
	exportCmd.Flags().StringVar(&exportFilter.integraHash, "integra-hash", "", "Only export this Integra hash")
	exportCmd.Flags().StringVar(&exportFilter.documentHash, "document-hash", "", "Only export this document hash")
	exportCmd.Flags().StringVar(&exportFilter.method, "method", "", "Only export this document method")
}

func RunExport(cmd *cobra.Command, args []string) {
	st, err := storage.NewStorageConnector(&config.Cfg.Storage, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer st.MainStorage.Close()

	var uploader export.Uploader
	if s3cfg := config.Cfg.Export.S3; s3cfg != nil && s3cfg.Bucket != "" {
		s3Uploader, err := export.NewS3Uploader(cmd.Context(), s3cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 uploader")
		}
		uploader = s3Uploader
	}

	filter := storage.QueryFilter{
		ContractType:    exportFilter.contractType,
		ContractAddress: exportFilter.contractAddress,
		IntegraHash:     exportFilter.integraHash,
		DocumentHash:    exportFilter.documentHash,
		Method:          exportFilter.method,
	}
	if cmd.Flags().Changed("chain-id") {
		filter.ChainId = &exportFilter.chainId
	}

	exporter := export.NewExporter(st, config.Cfg.Export.Dir, config.Cfg.Export.BatchSize, uploader)
	result, err := exporter.Export(cmd.Context(), filter)
	if err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	encoder.Encode(result)
}
