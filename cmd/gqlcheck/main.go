/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Command gqlcheck reads a schema and a query from disk, runs them through parsing, schema
// building, validation and execution, and prints the resulting response as JSON. It exercises
// every layer of the engine end to end without standing up an HTTP server, which makes it useful
// both as a smoke test while developing a schema and as a worked example of how the pieces wire
// together.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimbusgraph/gql/graphql"
	"github.com/nimbusgraph/gql/graphql/executor"
	"github.com/nimbusgraph/gql/graphql/middleware"
	"github.com/nimbusgraph/gql/graphql/parser"
	"github.com/nimbusgraph/gql/graphql/sdlbuilder"
	"github.com/nimbusgraph/gql/graphql/validator"
	// Load standard rules required by specification for validating queries.
	_ "github.com/nimbusgraph/gql/graphql/validator/rules"
	"github.com/nimbusgraph/gql/instrumentation"
)

func main() {
	var (
		operationName string
		variablesJSON string
		tracing       bool
	)

	rootCmd := &cobra.Command{
		Use:   "gqlcheck <schema.graphql> <query.graphql>",
		Short: "Parse, validate and execute a GraphQL query against an SDL schema",
		Long: `gqlcheck builds a schema from an SDL file, validates a query document against it, executes
the query against a built-in demo root value, and prints the response.

Pass "-" for either file to read it from stdin.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(runConfig{
				schemaPath:    args[0],
				queryPath:     args[1],
				operationName: operationName,
				variablesJSON: variablesJSON,
				tracing:       tracing,
			})
		},
	}

	rootCmd.Flags().StringVar(&operationName, "operation", "", "operation to execute, if the query document defines more than one")
	rootCmd.Flags().StringVar(&variablesJSON, "variables", "{}", "JSON object of variable values for the operation")
	rootCmd.Flags().BoolVar(&tracing, "tracing", false, "attach an Apollo-style \"tracing\" extension to the response")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type runConfig struct {
	schemaPath    string
	queryPath     string
	operationName string
	variablesJSON string
	tracing       bool
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func run(cfg runConfig) error {
	schemaBody, err := readInput(cfg.schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	queryBody, err := readInput(cfg.queryPath)
	if err != nil {
		return fmt.Errorf("read query: %w", err)
	}

	var variables map[string]interface{}
	if err := json.Unmarshal([]byte(cfg.variablesJSON), &variables); err != nil {
		return fmt.Errorf("parse --variables: %w", err)
	}

	var tracer *instrumentation.ApolloTracer
	var trace *instrumentation.Tracer
	if cfg.tracing {
		tracer = &instrumentation.ApolloTracer{}
		trace = tracer.Tracer()
	} else {
		trace = &instrumentation.Tracer{}
	}

	trace.Start()
	defer trace.End()

	trace.ParseStart()
	schema, err := sdlbuilder.BuildSchema(graphql.NewSource(string(schemaBody), graphql.SourceName(cfg.schemaPath)))
	if err != nil {
		trace.ParseEnd()
		return fmt.Errorf("build schema: %w", err)
	}

	document, err := parser.Parse(
		graphql.NewSource(string(queryBody), graphql.SourceName(cfg.queryPath)),
		parser.ParseOptions{})
	trace.ParseEnd()
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	trace.ValidateStart()
	validationErrs := validator.Validate(schema, document)
	trace.ValidateEnd()
	if validationErrs.HaveOccurred() {
		return printErrors(validationErrs)
	}

	middlewares := []middleware.Middleware{trace.Middleware()}

	operation, prepareErrs := executor.Prepare(executor.PrepareParams{
		Schema:        schema,
		Document:      document,
		OperationName: cfg.operationName,
		Middlewares:   middlewares,
	})
	if prepareErrs.HaveOccurred() {
		return printErrors(prepareErrs)
	}

	trace.QueryStart()
	resultCh := operation.Execute(context.Background(), executor.ExecuteParams{
		RootValue:      demoRootValue(),
		VariableValues: variables,
	})
	result := <-resultCh
	trace.QueryEnd()

	if tracer != nil {
		if result.Extensions == nil {
			result.Extensions = map[string]interface{}{}
		}
		result.Extensions["tracing"] = tracer.Extension()
	}

	return result.MarshalJSONTo(os.Stdout)
}

func printErrors(errs graphql.Errors) error {
	for _, err := range errs.Errors {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	return fmt.Errorf("%d error(s)", len(errs.Errors))
}

// demoRootValue supplies a small, self-describing root object so a schema's Query/Mutation fields
// have something to resolve against even when the caller has no real backend wired up.
// executor.DefaultFieldResolver reads fields from it by name, matching either a map key or a
// struct field/method, whichever the schema under test declares.
func demoRootValue() map[string]interface{} {
	return map[string]interface{}{
		"__typename": "Query",
	}
}
