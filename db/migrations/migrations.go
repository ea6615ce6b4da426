package migrations

import "embed"

// FS embeds the ledger schema. golang-migrate reads these files through the
// iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
