// Package services implements the core use cases: query classification,
// context selection, prompt building, the query pipeline and ingestion.
package services
