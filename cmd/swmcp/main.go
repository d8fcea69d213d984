// Command swmcp serves the Synergy Wholesale reseller API as MCP tools,
// over stdio by default or streamable HTTP with --http.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/domainward/swmcp/internal/config"
	"github.com/domainward/swmcp/internal/creds"
	"github.com/domainward/swmcp/internal/server"
	"github.com/domainward/swmcp/internal/swapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "swmcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file path (default: XDG config dir)")
	groupsFlag := flag.String("groups", "", "comma-separated tool groups to enable (default: all)")
	httpAddr := flag.String("http", "", "serve streamable HTTP on this address instead of stdio")
	verbose := flag.Bool("verbose", false, "log startup details to stderr")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if *groupsFlag != "" {
		cfg.Groups = strings.Split(*groupsFlag, ",")
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *verbose {
		cfg.Verbose = true
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	resolver := creds.NewResolver(creds.Credentials{
		ResellerID: cfg.ResellerID,
		APIKey:     cfg.APIKey,
	})
	dispatcher := swapi.NewDispatcher(swapi.NewClient(cfg.Endpoint, cfg.ParseTimeout()))

	s, err := server.New(resolver, dispatcher, cfg.Groups)
	if err != nil {
		return err
	}

	if !cfg.HasDefaultCredentials() {
		fmt.Fprintln(os.Stderr, "swmcp: no default credentials configured; tool calls must supply reseller_id and api_key")
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "swmcp: endpoint %s, timeout %s\n", cfg.Endpoint, cfg.ParseTimeout())
	}

	if cfg.HTTPAddr != "" {
		fmt.Fprintf(os.Stderr, "swmcp: serving streamable HTTP on %s\n", cfg.HTTPAddr)
		return mcpserver.NewStreamableHTTPServer(s).Start(cfg.HTTPAddr)
	}
	return mcpserver.ServeStdio(s)
}
