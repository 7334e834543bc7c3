// Package domain contains the core business entities for mediq.
// It has no dependencies on infrastructure or external services.
package domain
