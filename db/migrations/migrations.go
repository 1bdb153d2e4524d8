package migrations

import "embed"

// FS holds the ledger schema: users, ads, views, transactions, referrals
// and withdraw requests. It is read through the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to. Bump it
// together with every new pair of up/down files.
const Version = 1
