package clients

import (
	"net/http"
	"strconv"
	"strings"

	"gopkg.in/h2non/gentleman.v1"
)

// ContentTypeJSON marks a request whose parameters travel as a JSON document
// instead of query/form fields.
const ContentTypeJSON = "json"

// CallOptions carries per-call transport configuration.
type CallOptions struct {
	ContentType string
	Headers     http.Header
}

// JSONContent returns a copy of opts with the content type forced to JSON.
// The input value is never mutated, so callers may reuse it across calls.
func JSONContent(opts *CallOptions) *CallOptions {
	annotated := CallOptions{}
	if opts != nil {
		annotated = *opts
	}
	annotated.ContentType = ContentTypeJSON
	return &annotated
}

// Caller performs one provisioning API request described by an HTTP method,
// ordered URI segments and a parameter mapping, decoding the JSON response
// into result when it is non-nil. The resource clients of this module are all
// built on top of it.
type Caller interface {
	Call(method string, uri []interface{}, params Params, result interface{}, opts *CallOptions) error
}

type caller struct {
	http *gentleman.Client
}

// NewCaller creates a Caller backed by a real HTTP client for the account
// described by config.
func NewCaller(config *Config) Caller {
	return &caller{CreateAccountClient(config)}
}

func (c *caller) Call(method string, uri []interface{}, params Params, result interface{}, opts *CallOptions) error {
	req := c.request(method).AddPath(JoinURI(uri))

	params = PickExisting(params)
	if opts != nil && opts.ContentType == ContentTypeJSON {
		req.JSON(map[string]interface{}(params))
	} else if len(params) > 0 {
		req.SetQueryParams(queryValues(params))
	}
	if opts != nil {
		addHeadersToRequest(req, opts.Headers)
	}

	res, err := req.Send()
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return res.JSON(result)
}

func (c *caller) request(method string) *gentleman.Request {
	switch method {
	case http.MethodPost:
		return c.http.Post()
	case http.MethodPut:
		return c.http.Put()
	case http.MethodDelete:
		return c.http.Delete()
	default:
		return c.http.Get()
	}
}

// JoinURI concatenates path segments into a rooted URI path. Segments may be
// strings or numeric identifiers. The path carries decoded semantics;
// reserved characters are percent-escaped once by the HTTP layer when the
// request is serialized.
func JoinURI(segments []interface{}) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, formatSegment(segment))
	}
	return "/" + strings.Join(parts, "/")
}

func formatSegment(segment interface{}) string {
	switch s := segment.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return queryValue(segment)
	}
}

func addHeadersToRequest(request *gentleman.Request, headers http.Header) {
	for k, vs := range headers {
		for _, v := range vs {
			request.AddHeader(k, v)
		}
	}
}
