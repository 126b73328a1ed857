package banner

const (
	// AppName is the name of the node software.
	AppName = "migration-address"

	// AppVersion is the version of the node software.
	AppVersion = "v0.1.0"
)
