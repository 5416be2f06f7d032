package storage

// Config holds configuration for the blob storage backend.
type Config struct {
	// Type is the storage backend discriminator (currently only azure).
	Type string `mapstructure:"type" default:"azure"`
	// Container is the name of the blob container.
	Container string `mapstructure:"container" default:""`
	// SASURL is the shared-access-signature URL of the container, query string included.
	SASURL string `mapstructure:"sas_url" default:""`
	// SASToken is the shared-access-signature token appended to blob URLs.
	SASToken string `mapstructure:"sas_token" default:""`
}

// TypeAzure is the storage backend type for Azure Blob Storage.
const TypeAzure = "azure"

// IsValidType checks if the configured storage type is supported.
func (c Config) IsValidType() bool {
	switch c.Type {
	case TypeAzure:
		return true
	default:
		return false
	}
}
