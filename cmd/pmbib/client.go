package main

import (
	"os"

	"github.com/joho/godotenv"

	"pmbib/internal/config"
	"pmbib/internal/pubmed"
)

// newPubMedClient builds a Citation Exporter client from the environment
// and the global config file. NCBI_API_KEY in the environment (or a .env
// file) takes precedence over ncbi_api_key in config.yml.
func newPubMedClient() *pubmed.Client {
	_ = godotenv.Load()

	var opts []pubmed.ClientOption
	if key := resolveAPIKey(); key != "" {
		opts = append(opts, pubmed.WithAPIKey(key))
	}
	if tool := config.GetTool(); tool != "" {
		opts = append(opts, pubmed.WithTool(tool))
	}
	if email := config.GetEmail(); email != "" {
		opts = append(opts, pubmed.WithEmail(email))
	}
	return pubmed.NewClient(opts...)
}

// resolveAPIKey returns the NCBI API key, environment first.
func resolveAPIKey() string {
	if key := os.Getenv("NCBI_API_KEY"); key != "" {
		return key
	}
	return config.GetNCBIAPIKey()
}
