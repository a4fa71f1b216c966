// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package agentx

import (
	"context"

	"github.com/agentx-go/agentx/pdu"
	"github.com/agentx-go/agentx/value"
)

// Handler supplies the MIB values behind get and get-next queries. It is
// implemented by the application layer; the session calls it while serving
// requests from the master agent.
type Handler interface {
	// Get returns the value at the provided oid, or a nil oid if there
	// is no object at that location.
	Get(ctx context.Context, oid value.OID) (value.OID, pdu.VariableType, any, error)

	// GetNext returns the first value after from (or at from, if
	// includeFrom is set) and below to, or a nil oid if the view is
	// exhausted.
	GetNext(ctx context.Context, from value.OID, includeFrom bool, to value.OID) (value.OID, pdu.VariableType, any, error)
}
