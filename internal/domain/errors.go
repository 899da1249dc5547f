package domain

import "errors"

var (
	// ErrGameNotFound signals a name that does not resolve in the catalog.
	ErrGameNotFound = errors.New("game not found")
	// ErrNotReady signals that the dataset has not finished loading.
	ErrNotReady = errors.New("dataset not ready")
	// ErrNoSelection signals that no search has been run in this session yet.
	ErrNoSelection = errors.New("no current selection")
	// ErrNoCandidates signals that discovery found nothing to pick from.
	ErrNoCandidates = errors.New("no candidate games")
	// ErrUnknownFacet signals an unsupported facet name.
	ErrUnknownFacet = errors.New("unknown facet")
)
