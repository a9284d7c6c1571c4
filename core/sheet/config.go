package sheet

// Config holds configuration for the spreadsheet snapshot storage.
type Config struct {
	// Endpoint is the URL of the object storage service holding the workbook.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding the workbook snapshot.
	Bucket string `mapstructure:"bucket" default:"survey"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Object is the object name of the workbook inside the bucket.
	Object string `mapstructure:"object" default:"snapshots/survey.xlsx"`
	// CaseSheet is the worksheet holding master/detail case rows.
	CaseSheet string `mapstructure:"case_sheet" default:"Detail"`
	// SummarySheet is the worksheet holding contract summary rows.
	SummarySheet string `mapstructure:"summary_sheet" default:"Summary"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
