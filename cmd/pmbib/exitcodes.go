package main

// Exit codes returned by pmbib commands.
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error (invalid arguments, runtime failure)
	ExitNotFound  = 2 // PMID has no matching PubMed record
	ExitDataError = 3 // Record could not be rendered (missing year, unusable author)
)
