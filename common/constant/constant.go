package constant

const (
	ReadBatchSize         = 1024
	ParquetDataFileSuffix = ".parquet"
	EndpointOverride      = "endpoint-override"
)
