package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/gofetch/fetch"
	"github.com/wesleyorama2/gofetch/internal/config"
	"github.com/wesleyorama2/gofetch/internal/output"
	"github.com/wesleyorama2/gofetch/pkg/jsonpath"
	"github.com/wesleyorama2/gofetch/pkg/jsonschema"
)

// addRequestFlags registers the flags shared by all request commands.
func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameters as key=value (can be used multiple times)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("raw", false, "Print the raw transport response without JSON parsing")
	cmd.Flags().String("extract", "", "JSONPath expression to extract from the response body")
	cmd.Flags().String("schema", "", "JSON Schema file to validate the response body against")
	cmd.Flags().String("config", "", "Configuration file with named environments")
	cmd.Flags().StringP("env", "e", "", "Environment name from the configuration file")

	if withBody {
		cmd.Flags().StringP("data", "d", "", "Data to send in the request body (no Content-Type injected)")
		cmd.Flags().StringP("json", "j", "", "JSON data to send in the request body")
	}
}

// runRequest executes one request command: resolve the environment, build
// the client and request from flags, send, and render.
func runRequest(cmd *cobra.Command, method, rawURL string) {
	headers, _ := cmd.Flags().GetStringArray("header")
	queryParams, _ := cmd.Flags().GetStringArray("query")
	verbose, _ := cmd.Flags().GetBool("verbose")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColorFlag, _ := cmd.Flags().GetBool("no-color")
	raw, _ := cmd.Flags().GetBool("raw")
	extract, _ := cmd.Flags().GetString("extract")
	schemaFile, _ := cmd.Flags().GetString("schema")
	configFile, _ := cmd.Flags().GetString("config")
	envName, _ := cmd.Flags().GetString("env")

	noColor := !output.ShouldColor(noColorFlag)

	var env *config.Environment
	if configFile != "" {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if envName == "" {
			fmt.Fprintln(os.Stderr, "Error: --env is required with --config")
			os.Exit(1)
		}
		env, err = cfg.Environment(envName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		timeout, err = env.ParseTimeout(timeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	baseURL, path := resolveTarget(rawURL, env)

	options := []fetch.ClientOption{
		fetch.WithTimeout(timeout),
		fetch.WithBaseURL(baseURL),
	}
	if env != nil {
		for key, value := range env.Headers {
			options = append(options, fetch.WithHeader(key, value))
		}
	}
	client := fetch.NewClient(options...)

	req := fetch.NewRequest(method, path)
	if env != nil {
		for key, value := range env.Query {
			req.WithQueryParam(key, value)
		}
	}
	for _, param := range queryParams {
		parts := strings.SplitN(param, "=", 2)
		if len(parts) == 2 {
			req.WithQueryParam(parts[0], parts[1])
		}
	}
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			req.WithHeader(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}

	if cmd.Flags().Lookup("data") != nil {
		data, _ := cmd.Flags().GetString("data")
		jsonData, _ := cmd.Flags().GetString("json")
		if data != "" {
			req.WithBody(data)
		} else if jsonData != "" {
			req.WithJSON(json.RawMessage(jsonData))
		}
	}

	formatter := output.NewFormatter(verbose, noColor)
	fmt.Print(formatter.FormatRequest(req, baseURL))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if raw {
		httpResp, err := client.DoRaw(ctx, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("◀ RESPONSE: %s\n%s\n", httpResp.Status, string(body))
		return
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(formatter.FormatResponse(resp))

	if extract != "" {
		value, err := jsonpath.Extract(resp.Text, extract)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting %s: %v\n", extract, err)
			os.Exit(1)
		}
		fmt.Printf("  %s = %s\n", extract, value)
	}

	if schemaFile != "" {
		schema, err := os.ReadFile(schemaFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading schema: %v\n", err)
			os.Exit(1)
		}
		valid, errs := jsonschema.ValidateWithErrors(resp.Text, string(schema))
		if !valid {
			fmt.Printf("  %s Schema validation failed: %v\n", output.ErrorIcon(noColor), errs)
			os.Exit(1)
		}
		fmt.Printf("  %s Schema validation passed\n", output.SuccessIcon(noColor))
	}
}

// resolveTarget decides the client base URL and the request URL. With a
// configured environment the argument stays relative to the environment's
// base URL (absolute arguments still win); without one, an absolute argument
// is split into base and path.
func resolveTarget(rawURL string, env *config.Environment) (string, string) {
	if env != nil {
		return env.BaseURL, rawURL
	}
	return parseURL(rawURL)
}

// parseURL splits a URL into base URL and path
func parseURL(fullURL string) (string, string) {
	// Add scheme if missing
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = "http://" + fullURL
	}

	parsedURL, err := url.Parse(fullURL)
	if err != nil {
		return fullURL, "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)

	// Include user info in the base URL if present
	if parsedURL.User != nil {
		baseURL = fmt.Sprintf("%s://%s@%s", parsedURL.Scheme, parsedURL.User.String(), parsedURL.Host)
	}

	path := parsedURL.Path
	if path == "" {
		path = "/"
	}

	// Include query parameters in the path
	if parsedURL.RawQuery != "" {
		path = path + "?" + parsedURL.RawQuery
	}

	return baseURL, path
}
