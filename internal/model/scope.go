package model

// Scope identifies the caller of a use case. It is filled by the auth middleware.
type Scope struct {
	UserID string
}

// Environment names accepted in config.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
