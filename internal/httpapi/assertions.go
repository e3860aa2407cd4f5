package httpapi

import (
	"github.com/rgavilanes/contable/internal/storage/memory"
	"github.com/rgavilanes/contable/internal/storage/postgres"
)

// Compile-time interface assertions for the storage backends against the HTTP API Store.
var (
	_ Store        = (*memory.Store)(nil)
	_ Store        = (*postgres.Store)(nil)
	_ ReadyChecker = (*postgres.Store)(nil)
)
