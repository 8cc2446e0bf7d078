// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (frames, year records) and contracts (interfaces) only.
package domain
