// Package notion is a thin client for the Notion REST API.
//
// # Overview
//
// Client exposes one method per endpoint. Each method normalizes the
// identifiers it is given (bare IDs or URLs copied from the browser), encodes
// the request body built with the props, block, page and database packages,
// performs a single HTTP request, and returns the status code together with
// the decoded JSON body.
//
// Non-2xx responses are not errors: the Response is returned as-is and the
// caller decides what to do with it. Response.Err converts an error body into
// an *APIError when that is more convenient. The error return of a Client
// method is reserved for invalid input, encoding failures, transport errors
// and response bodies that are not JSON. In the last case the Response is
// returned alongside the error.
//
// The client does not retry, paginate or rate limit.
//
// # Configuration
//
//	client, err := notion.NewClient(&notion.Config{
//	    KeyEnv:  "NOTION_KEY",
//	    Timeout: 30 * time.Second,
//	    Logger:  logger,
//	})
//
// When APIKey is empty the key is read from the environment variable named by
// KeyEnv (NOTION_KEY by default). Construction fails if neither is set.
//
// # Pagination
//
//	opts := notion.DefaultListOptions()
//	for {
//	    resp, err := client.ListBlockChildren(ctx, pageURL, opts)
//	    ...
//	    if opts.StartCursor = resp.NextCursor(); opts.StartCursor == "" {
//	        break
//	    }
//	}
package notion
