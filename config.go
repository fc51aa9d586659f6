package blogcheck

import "github.com/goliatone/go-blogcheck/internal/runtimeconfig"

var (
	ErrPostsDirRequired        = runtimeconfig.ErrPostsDirRequired
	ErrReferenceFileRequired   = runtimeconfig.ErrReferenceFileRequired
	ErrImagesDirRequired       = runtimeconfig.ErrImagesDirRequired
	ErrDescriptionLimitInvalid = runtimeconfig.ErrDescriptionLimitInvalid
	ErrImageLimitInvalid       = runtimeconfig.ErrImageLimitInvalid
	ErrPostFormatUnknown       = runtimeconfig.ErrPostFormatUnknown
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	PathsConfig       = runtimeconfig.PathsConfig
	DescriptionConfig = runtimeconfig.DescriptionConfig
	ImagesConfig      = runtimeconfig.ImagesConfig
	PostsConfig       = runtimeconfig.PostsConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig overlays the YAML file at path onto DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
