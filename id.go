package tokenledger

import "github.com/xraph/tokenledger/id"

// ID is the TypeID-based account address identifier.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
